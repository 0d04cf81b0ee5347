/* pairing.go
 * Contains the two Swiss pairing strategies: adjacent pairing and greedy rematch avoiding pairing
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"swiss-tournament/api/shared"
)

// OpponentLookup returns the set of players a player has already faced
type OpponentLookup func(id int64) (map[int64]struct{}, error)

// SwissPairings pairs each player with the player directly below them in the standings.
// Preconditions: Receives standings as produced by ComputeStandings
// Postconditions: Returns len/2 pairings in rank order, or ErrOddPlayerCount if there is an odd number of players
func SwissPairings(standings []shared.Standing) ([]shared.Pairing, error) {
	if len(standings)%2 != 0 {
		return nil, fmt.Errorf("cannot pair %d players: %w", len(standings), ErrOddPlayerCount)
	}

	pairs := make([]shared.Pairing, 0, len(standings)/2)
	for i := 0; i < len(standings); i += 2 {
		pairs = append(pairs, newPairing(standings[i], standings[i+1]))
	}
	return pairs, nil
}

// SwissPairingsNoRematch walks the standings once from the top. Each player not yet matched is paired with the
// highest ranked player below them who is also unmatched and who they have not already played. There is no
// backtracking, so an early choice can leave a later player without a legal opponent. Such players are left out
// of the result instead of returning an error.
// Preconditions: Receives standings as produced by ComputeStandings and a lookup for opponent history
// Postconditions: Returns the pairings found in rank order, or an error if an opponent lookup fails
func SwissPairingsNoRematch(standings []shared.Standing, lookup OpponentLookup) ([]shared.Pairing, error) {
	matched := make(map[int64]bool, len(standings))
	var pairs []shared.Pairing

	for i, p := range standings {
		if matched[p.ID] {
			continue
		}

		played, err := lookup(p.ID)
		if err != nil {
			return nil, err
		}

		for _, q := range standings[i+1:] {
			if matched[q.ID] {
				continue
			}
			if _, ok := played[q.ID]; ok {
				continue
			}
			pairs = append(pairs, newPairing(p, q))
			matched[p.ID] = true
			matched[q.ID] = true
			break
		}
	}
	return pairs, nil
}

// Unmatched returns the players in standings that do not appear in any pairing, in rank order
func Unmatched(standings []shared.Standing, pairs []shared.Pairing) []shared.Standing {
	seen := make(map[int64]bool, len(pairs)*2)
	for _, p := range pairs {
		seen[p.ID1] = true
		seen[p.ID2] = true
	}

	var rest []shared.Standing
	for _, s := range standings {
		if !seen[s.ID] {
			rest = append(rest, s)
		}
	}
	return rest
}

func newPairing(a, b shared.Standing) shared.Pairing {
	return shared.Pairing{ID1: a.ID, Name1: a.Name, ID2: b.ID, Name2: b.Name}
}
