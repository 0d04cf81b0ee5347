/* players.go
 * Contains the methods for interacting with the players and counters collections
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"
	"log"
	"strings"
	"swiss-tournament/api/shared"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const playerSequence = "player_id"

// RegisterPlayer adds a player to the tournament. The id is taken from a counter so ids increase in registration order
// Preconditions: Receives receiver pointer for Store and the player's full name (need not be unique)
// Postconditions: Inserts the player into the players collection and returns it, or returns an error if it occurs
func (s *Store) RegisterPlayer(name string) (shared.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.Player{}, fmt.Errorf("player name cannot be empty")
	}

	id, err := s.nextPlayerID()
	if err != nil {
		return shared.Player{}, err
	}

	doc := PlayerDoc{
		ID:           id,
		Tournament:   s.Tournament,
		Name:         name,
		RegisteredAt: time.Now().UTC(),
	}
	if _, err := s.Collections.Players.InsertOne(context.TODO(), doc); err != nil {
		return shared.Player{}, fmt.Errorf("player insert failed: %w", err)
	}

	log.Printf("registered player %d (%s) in %s\n", id, name, s.Tournament)
	return doc.toPlayer(), nil
}

// nextPlayerID increments the player sequence and returns the new value
func (s *Store) nextPlayerID() (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter counterDoc
	err := s.Collections.Counters.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": playerSequence},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate player id: %w", err)
	}
	return counter.Seq, nil
}

// FetchAllPlayers returns every player registered in the tournament
// Preconditions: Receives receiver pointer for Store
// Postconditions: Returns players in registration order, or an error wrapping ErrDataUnavailable if the read fails
func (s *Store) FetchAllPlayers() ([]shared.Player, error) {
	filter := bson.D{{Key: "tournament", Value: s.Tournament}}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.Collections.Players.Find(context.TODO(), filter, opts)
	if err != nil {
		return nil, unavailable("failed to fetch players from database", err)
	}

	var docs []PlayerDoc
	if err = cursor.All(context.TODO(), &docs); err != nil {
		return nil, unavailable("error unpacking cursor into slice of players", err)
	}

	players := make([]shared.Player, 0, len(docs))
	for _, doc := range docs {
		players = append(players, doc.toPlayer())
	}
	return players, nil
}

// CountPlayers returns the number of players currently registered
func (s *Store) CountPlayers() (int64, error) {
	n, err := s.Collections.Players.CountDocuments(context.TODO(), bson.M{"tournament": s.Tournament})
	if err != nil {
		return 0, unavailable("failed to count players", err)
	}
	return n, nil
}

// DeletePlayers removes all the player records of the tournament
func (s *Store) DeletePlayers() error {
	res, err := s.Collections.Players.DeleteMany(context.TODO(), bson.M{"tournament": s.Tournament})
	if err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}
	log.Printf("deleted %d players from %s\n", res.DeletedCount, s.Tournament)
	return nil
}
