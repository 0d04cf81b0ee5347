/* standings_test.go
 * Contains unit tests for standings.go
 * Authors: Zachary Bower
 */

package logic

import (
	"math/rand"
	"swiss-tournament/api/shared"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlayers(names ...string) []shared.Player {
	players := make([]shared.Player, len(names))
	for i, n := range names {
		players[i] = shared.Player{ID: int64(i + 1), Name: n}
	}
	return players
}

// randomMatches reports n matches between random distinct players using a fixed seed
func randomMatches(r *rand.Rand, players []shared.Player, n int) []shared.Match {
	matches := make([]shared.Match, 0, n)
	for len(matches) < n {
		a := players[r.Intn(len(players))].ID
		b := players[r.Intn(len(players))].ID
		if a == b {
			continue
		}
		matches = append(matches, shared.Match{WinnerID: a, LoserID: b})
	}
	return matches
}

func TestComputeStandings_NoMatchesKeepsRegistrationOrder(t *testing.T) {
	players := samplePlayers("Melpomene Murray", "Randy Schwartz", "Chandra Nalaar", "Markov Chaney")

	standings := ComputeStandings(players, nil)

	require.Len(t, standings, 4)
	for i, s := range standings {
		assert.Equal(t, players[i].ID, s.ID)
		assert.Equal(t, players[i].Name, s.Name)
		assert.Zero(t, s.Wins)
		assert.Zero(t, s.Matches)
	}
}

func TestComputeStandings_OrdersByWins(t *testing.T) {
	players := samplePlayers("A", "B", "C", "D")
	matches := []shared.Match{
		{WinnerID: 4, LoserID: 1},
		{WinnerID: 3, LoserID: 2},
		{WinnerID: 4, LoserID: 3},
	}

	standings := ComputeStandings(players, matches)

	assert.Equal(t, []shared.Standing{
		{ID: 4, Name: "D", Wins: 2, Matches: 2},
		{ID: 3, Name: "C", Wins: 1, Matches: 2},
		{ID: 1, Name: "A", Wins: 0, Matches: 1},
		{ID: 2, Name: "B", Wins: 0, Matches: 1},
	}, standings)
}

func TestComputeStandings_TiesKeepRegistrationOrder(t *testing.T) {
	players := samplePlayers("A", "B", "C", "D")
	matches := []shared.Match{
		{WinnerID: 2, LoserID: 1},
		{WinnerID: 4, LoserID: 3},
	}

	standings := ComputeStandings(players, matches)

	ids := []int64{standings[0].ID, standings[1].ID, standings[2].ID, standings[3].ID}
	assert.Equal(t, []int64{2, 4, 1, 3}, ids)
}

func TestComputeStandings_IgnoresUnknownPlayers(t *testing.T) {
	players := samplePlayers("A", "B")
	matches := []shared.Match{
		{WinnerID: 1, LoserID: 99},
		{WinnerID: 98, LoserID: 2},
	}

	standings := ComputeStandings(players, matches)

	assert.Equal(t, []shared.Standing{
		{ID: 1, Name: "A", Wins: 1, Matches: 1},
		{ID: 2, Name: "B", Wins: 0, Matches: 1},
	}, standings)
}

func TestComputeStandings_Empty(t *testing.T) {
	assert.Empty(t, ComputeStandings(nil, nil))
}

func TestComputeStandings_WinsSumToMatchCount(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 2; n <= 12; n++ {
		players := samplePlayers(make([]string, n)...)
		matches := randomMatches(r, players, r.Intn(30))

		standings := ComputeStandings(players, matches)

		wins, played := 0, 0
		for _, s := range standings {
			assert.LessOrEqual(t, s.Wins, s.Matches)
			wins += s.Wins
			played += s.Matches
		}
		assert.Equal(t, len(matches), wins)
		assert.Equal(t, 2*len(matches), played)
		for i := 1; i < len(standings); i++ {
			assert.GreaterOrEqual(t, standings[i-1].Wins, standings[i].Wins)
		}
	}
}
