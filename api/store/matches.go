/* matches.go
 * Contains the methods for interacting with the matches collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"
	"log"
	"swiss-tournament/api/shared"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportMatch records the outcome of a single match between two players. Results are append only
// Preconditions: Receives receiver pointer for Store and the match containing winner and loser ids
// Postconditions: Inserts the match into the matches collection, or returns an error if it occurs
func (s *Store) ReportMatch(match shared.Match) error {
	if match.WinnerID == match.LoserID {
		return fmt.Errorf("player %d cannot play against themselves", match.WinnerID)
	}

	doc := MatchDoc{
		Tournament: s.Tournament,
		Winner:     match.WinnerID,
		Loser:      match.LoserID,
		ReportedAt: time.Now().UTC(),
	}
	if _, err := s.Collections.Matches.InsertOne(context.TODO(), doc); err != nil {
		return fmt.Errorf("match insert failed: %w", err)
	}

	log.Printf("reported match %d beat %d in %s\n", match.WinnerID, match.LoserID, s.Tournament)
	return nil
}

// FetchAllMatches returns the full match log of the tournament
// Preconditions: Receives receiver pointer for Store
// Postconditions: Returns matches in the order they were reported, or an error wrapping ErrDataUnavailable if the read fails
func (s *Store) FetchAllMatches() ([]shared.Match, error) {
	filter := bson.D{{Key: "tournament", Value: s.Tournament}}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.Collections.Matches.Find(context.TODO(), filter, opts)
	if err != nil {
		return nil, unavailable("failed to fetch matches from database", err)
	}

	var docs []MatchDoc
	if err = cursor.All(context.TODO(), &docs); err != nil {
		return nil, unavailable("error unpacking cursor into slice of matches", err)
	}

	matches := make([]shared.Match, 0, len(docs))
	for _, doc := range docs {
		matches = append(matches, doc.toMatch())
	}
	return matches, nil
}

// DeleteMatches removes all the match records of the tournament
func (s *Store) DeleteMatches() error {
	res, err := s.Collections.Matches.DeleteMany(context.TODO(), bson.M{"tournament": s.Tournament})
	if err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	log.Printf("deleted %d matches from %s\n", res.DeletedCount, s.Tournament)
	return nil
}
