/* format_test.go
 * Contains unit tests for format.go
 * Authors: Zachary Bower
 */

package api

import (
	"swiss-tournament/api/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStandings(t *testing.T) {
	res := FormatStandings([]shared.Standing{
		{ID: 2, Name: "B", Wins: 2, Matches: 3},
		{ID: 1, Name: "A", Wins: 0, Matches: 3},
	})

	assert.Equal(t, "Standings:\n1. B (#2): 2-1\n2. A (#1): 0-3\n", res)
}

func TestFormatStandings_Empty(t *testing.T) {
	assert.Equal(t, "No players registered", FormatStandings(nil))
}

func TestFormatPairings_Complete(t *testing.T) {
	res := FormatPairings(PairingReport{Pairings: []shared.Pairing{
		{ID1: 1, Name1: "A", ID2: 2, Name2: "B"},
	}})

	assert.Equal(t, "Next round:\nTable 1: A (#1) vs B (#2)\n", res)
}

func TestFormatPairings_Incomplete(t *testing.T) {
	res := FormatPairings(PairingReport{
		Unmatched: []shared.Standing{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
	})

	assert.Contains(t, res, "No pairings could be made")
	assert.Contains(t, res, "No legal opponent for: 'A' 'B'")
}

func TestFormatOpponents(t *testing.T) {
	p := shared.Player{ID: 1, Name: "A"}

	assert.Equal(t, "A has not played anyone yet", FormatOpponents(p, nil))
	assert.Equal(t, "A has played: B, C", FormatOpponents(p, []shared.Player{{ID: 2, Name: "B"}, {ID: 3, Name: "C"}}))
}
