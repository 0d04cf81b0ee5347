/* standings.go
 * Contains the logic for ranking players by their win record
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"sort"
	"swiss-tournament/api/shared"
)

var (
	// ErrUnknownCompetitor is returned when a player id is not registered in the tournament
	ErrUnknownCompetitor = errors.New("unknown competitor")
	// ErrOddPlayerCount is returned when adjacent pairing is asked to pair an odd number of players
	ErrOddPlayerCount = errors.New("odd number of players")
)

// ComputeStandings builds the standings table from the players and the full match log.
// Preconditions: Receives players in registration order and every reported match
// Postconditions: Returns one Standing per player, sorted by wins descending. Players with equal wins keep their
// registration order. Matches referencing unregistered players are ignored
func ComputeStandings(players []shared.Player, matches []shared.Match) []shared.Standing {
	standings := make([]shared.Standing, len(players))
	index := make(map[int64]int, len(players))
	for i, p := range players {
		standings[i] = shared.Standing{ID: p.ID, Name: p.Name}
		index[p.ID] = i
	}

	for _, m := range matches {
		if i, ok := index[m.WinnerID]; ok {
			standings[i].Wins++
			standings[i].Matches++
		}
		if i, ok := index[m.LoserID]; ok {
			standings[i].Matches++
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Wins > standings[j].Wins
	})
	return standings
}
