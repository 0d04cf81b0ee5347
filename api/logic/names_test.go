/* names_test.go
 * Contains unit tests for names.go
 * Authors: Zachary Bower
 */

package logic

import (
	"swiss-tournament/api/shared"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePlayerName_Exact(t *testing.T) {
	players := samplePlayers("Bruno Walton", "Bruno", "Cathy Burton")

	p, err := ResolvePlayerName("bruno", players)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
}

func TestResolvePlayerName_Fuzzy(t *testing.T) {
	players := samplePlayers("Bruno Walton", "Cathy Burton")

	p, err := ResolvePlayerName("cathy", players)
	require.NoError(t, err)
	assert.Equal(t, "Cathy Burton", p.Name)
}

func TestResolvePlayerName_NoMatch(t *testing.T) {
	_, err := ResolvePlayerName("zelda", samplePlayers("Bruno Walton"))
	assert.ErrorIs(t, err, ErrUnknownCompetitor)
}

func TestResolvePlayerName_Empty(t *testing.T) {
	_, err := ResolvePlayerName("  ", samplePlayers("Bruno Walton"))
	assert.Error(t, err)
}

func TestResolvePlayerName_DuplicateNames(t *testing.T) {
	players := []shared.Player{{ID: 1, Name: "Sam"}, {ID: 2, Name: "sam"}}

	_, err := ResolvePlayerName("Sam", players)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "same name")
}
