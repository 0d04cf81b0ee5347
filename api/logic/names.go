/* names.go
 * Contains the logic for matching player names typed by users against registered players
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"sort"
	"strings"
	"swiss-tournament/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolvePlayerName finds the registered player best matching a name typed by a user.
// Preconditions: Receives the user input and the registered players
// Postconditions: Returns the matching player. An exact (case insensitive) match wins over fuzzy matches, otherwise
// the best ranked fuzzy match is used. Returns ErrUnknownCompetitor if nothing matches, or an error if the input is
// ambiguous between players with the same name
func ResolvePlayerName(input string, players []shared.Player) (shared.Player, error) {
	lowerInput := strings.ToLower(strings.TrimSpace(input))
	if lowerInput == "" {
		return shared.Player{}, fmt.Errorf("player name cannot be empty")
	}

	lookup := make(map[string][]shared.Player)
	var names []string
	for _, p := range players {
		lower := strings.ToLower(p.Name)
		if _, ok := lookup[lower]; !ok {
			names = append(names, lower)
		}
		lookup[lower] = append(lookup[lower], p)
	}

	target := ""
	if _, ok := lookup[lowerInput]; ok {
		target = lowerInput
	} else {
		fuzzyResults := fuzzy.RankFind(lowerInput, names)
		if len(fuzzyResults) == 0 {
			return shared.Player{}, fmt.Errorf("'%s': %w", input, ErrUnknownCompetitor)
		}
		sort.Stable(fuzzyResults)
		target = fuzzyResults[0].Target
	}

	candidates := lookup[target]
	if len(candidates) > 1 {
		return shared.Player{}, fmt.Errorf("'%s' matches %d players with the same name, use their id instead", input, len(candidates))
	}
	return candidates[0], nil
}
