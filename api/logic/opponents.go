/* opponents.go
 * Contains the opponent history lookup used to avoid rematches
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"maps"
	"swiss-tournament/api/shared"
)

// OpponentIndex maps each registered player to the set of players they have already faced.
// It is built once from a snapshot of the players and matches and is not updated afterwards
type OpponentIndex struct {
	opponents map[int64]map[int64]struct{}
}

// NewOpponentIndex builds the index from a snapshot of players and matches.
// Both the winner and loser side of a match count as having played the other
func NewOpponentIndex(players []shared.Player, matches []shared.Match) *OpponentIndex {
	idx := &OpponentIndex{opponents: make(map[int64]map[int64]struct{}, len(players))}
	for _, p := range players {
		idx.opponents[p.ID] = make(map[int64]struct{})
	}

	for _, m := range matches {
		if set, ok := idx.opponents[m.WinnerID]; ok {
			set[m.LoserID] = struct{}{}
		}
		if set, ok := idx.opponents[m.LoserID]; ok {
			set[m.WinnerID] = struct{}{}
		}
	}
	return idx
}

// Opponents returns the set of players the given player has already played
// Preconditions: Receives a player id
// Postconditions: Returns a copy of the opponent set (empty if the player has no matches), or ErrUnknownCompetitor
// if the id is not registered
func (idx *OpponentIndex) Opponents(id int64) (map[int64]struct{}, error) {
	set, ok := idx.opponents[id]
	if !ok {
		return nil, fmt.Errorf("player %d: %w", id, ErrUnknownCompetitor)
	}
	return maps.Clone(set), nil
}

// Has reports whether id is a registered player in the snapshot
func (idx *OpponentIndex) Has(id int64) bool {
	_, ok := idx.opponents[id]
	return ok
}
