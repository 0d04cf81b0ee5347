/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split into two files:
 * players and matches. Each of these files contain methods for interacting with that part of the database
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections holds the mongo collections used by the store
type Collections struct {
	Players  *mongo.Collection
	Matches  *mongo.Collection
	Counters *mongo.Collection
}

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Tournament  string
	Collections Collections
}

// Function for initialising Store. Sets the tournament scope and initialises db connection
// Preconditions: Receives strings containing the following: dbName, mongoURI and tournament
// Postconditions: Sets collection values and returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string, tournament string) (*Store, error) {
	if tournament == "" {
		return nil, fmt.Errorf("tournament cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	return &Store{
		Client:     client,
		Database:   db,
		Tournament: tournament,
		Collections: Collections{
			Players:  db.Collection("players"),
			Matches:  db.Collection("matches"),
			Counters: db.Collection("counters"),
		},
	}, nil
}

// EnsureIndexes creates the indexes used by the standings queries. Safe to call on every start up
// Preconditions: Receives receiver pointer for Store
// Postconditions: Indexes exist on the players and matches collections, or an error is returned
func (s *Store) EnsureIndexes() error {
	_, err := s.Collections.Players.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{{Key: "tournament", Value: 1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create players index: %w", err)
	}

	_, err = s.Collections.Matches.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{{Key: "tournament", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create matches index: %w", err)
	}

	log.Println("indexes ensured for tournament", s.Tournament)
	return nil
}
