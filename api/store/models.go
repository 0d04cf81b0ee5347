/* models.go
 * This file contain the structs, errors and helper functions that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"errors"
	"fmt"
	"swiss-tournament/api/shared"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrDataUnavailable is returned when a read from the database fails
var ErrDataUnavailable = errors.New("data unavailable")

// PlayerDoc is the way a player is stored in the players collection
type PlayerDoc struct {
	ID           int64     `bson:"_id"`
	Tournament   string    `bson:"tournament"`
	Name         string    `bson:"name"`
	RegisteredAt time.Time `bson:"registered_at,omitempty"`
}

// MatchDoc is the way a match result is stored in the matches collection
type MatchDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Tournament string             `bson:"tournament"`
	Winner     int64              `bson:"winner"`
	Loser      int64              `bson:"loser"`
	ReportedAt time.Time          `bson:"reported_at,omitempty"`
}

// counterDoc holds the last id handed out for a sequence
type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func (p PlayerDoc) toPlayer() shared.Player {
	return shared.Player{ID: p.ID, Name: p.Name}
}

func (m MatchDoc) toMatch() shared.Match {
	return shared.Match{WinnerID: m.Winner, LoserID: m.Loser}
}

// unavailable wraps a failed read so callers can check for ErrDataUnavailable and still see the driver error
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDataUnavailable, err)
}
