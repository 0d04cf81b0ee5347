/* handlers_test.go
 * Contains unit tests for the HTTP handlers
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"swiss-tournament/api/api"
	"swiss-tournament/api/logic"
	"swiss-tournament/api/shared"
	"swiss-tournament/api/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer creates a server over four players where 1 and 2 have already played
func newTestServer() (*Server, *api.MockStore) {
	mockStore := api.NewMockStore("test_tournament")
	mockStore.SetPlayers("A", "B", "C", "D")
	mockStore.SetMatches([]shared.Match{
		{WinnerID: 1, LoserID: 2},
		{WinnerID: 3, LoserID: 4},
		{WinnerID: 2, LoserID: 3},
	})
	return NewServer(Config{API: &api.API{Store: mockStore}, RequestsPerSecond: 1000, Burst: 1000}), mockStore
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestStandingsHandler(t *testing.T) {
	s, _ := newTestServer()

	rec := get(t, s, "/standings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var standings []shared.Standing
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&standings))
	assert.Equal(t, []shared.Standing{
		{ID: 1, Name: "A", Wins: 1, Matches: 1},
		{ID: 2, Name: "B", Wins: 1, Matches: 2},
		{ID: 3, Name: "C", Wins: 1, Matches: 2},
		{ID: 4, Name: "D", Wins: 0, Matches: 1},
	}, standings)
}

func TestStandingsHandler_DataUnavailable(t *testing.T) {
	s, mockStore := newTestServer()
	mockStore.FetchAllPlayersError = fmt.Errorf("read: %w", store.ErrDataUnavailable)

	rec := get(t, s, "/standings")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "data unavailable")
}

func TestPairingsHandler_Allow(t *testing.T) {
	s, _ := newTestServer()

	rec := get(t, s, "/pairings")
	require.Equal(t, http.StatusOK, rec.Code)

	var report api.PairingReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, []shared.Pairing{
		{ID1: 1, Name1: "A", ID2: 2, Name2: "B"},
		{ID1: 3, Name1: "C", ID2: 4, Name2: "D"},
	}, report.Pairings)
	assert.Empty(t, report.Unmatched)
}

func TestPairingsHandler_Avoid(t *testing.T) {
	s, _ := newTestServer()

	rec := get(t, s, "/pairings?rematch=avoid")
	require.Equal(t, http.StatusOK, rec.Code)

	var report api.PairingReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	// A skips B, B has played C, so B takes D
	assert.Equal(t, []shared.Pairing{
		{ID1: 1, Name1: "A", ID2: 3, Name2: "C"},
		{ID1: 2, Name1: "B", ID2: 4, Name2: "D"},
	}, report.Pairings)
}

func TestPairingsHandler_AvoidIncomplete(t *testing.T) {
	s, mockStore := newTestServer()
	mockStore.SetMatches([]shared.Match{
		{WinnerID: 1, LoserID: 2},
		{WinnerID: 1, LoserID: 3},
		{WinnerID: 1, LoserID: 4},
	})

	rec := get(t, s, "/pairings?rematch=avoid")
	require.Equal(t, http.StatusOK, rec.Code)

	var report api.PairingReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, []shared.Pairing{{ID1: 2, Name1: "B", ID2: 3, Name2: "C"}}, report.Pairings)
	require.Len(t, report.Unmatched, 2)
	assert.Equal(t, int64(1), report.Unmatched[0].ID)
	assert.Equal(t, int64(4), report.Unmatched[1].ID)

	metrics := get(t, s, "/metrics").Body.String()
	assert.Contains(t, metrics, `swiss_pairing_requests_total{mode="avoid",outcome="incomplete"} 1`)
	assert.Contains(t, metrics, `swiss_unmatched_players{mode="avoid"} 2`)
}

func TestPairingsHandler_OddPlayerCount(t *testing.T) {
	s, mockStore := newTestServer()
	mockStore.SetPlayers("E")

	rec := get(t, s, "/pairings?rematch=allow")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "odd number of players")

	metrics := get(t, s, "/metrics").Body.String()
	assert.Contains(t, metrics, `swiss_pairing_requests_total{mode="allow",outcome="error"} 1`)
}

func TestPairingsHandler_EmptyTournament(t *testing.T) {
	s := NewServer(Config{API: &api.API{Store: api.NewMockStore("test_tournament")}})

	rec := get(t, s, "/pairings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pairings":[]`)
}

func TestPairingsHandler_InvalidMode(t *testing.T) {
	s, _ := newTestServer()

	rec := get(t, s, "/pairings?rematch=sometimes")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpponentsHandler(t *testing.T) {
	s, _ := newTestServer()

	rec := get(t, s, "/players/2/opponents")
	require.Equal(t, http.StatusOK, rec.Code)

	var res opponentsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, int64(2), res.ID)
	assert.Equal(t, []int64{1, 3}, res.Opponents)
	assert.Equal(t, []string{"A", "C"}, res.Names)
}

func TestOpponentsHandler_Errors(t *testing.T) {
	s, _ := newTestServer()

	assert.Equal(t, http.StatusNotFound, get(t, s, "/players/99/opponents").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/players/abc/opponents").Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("x: %w", logic.ErrUnknownCompetitor)))
	assert.Equal(t, http.StatusConflict, statusFor(fmt.Errorf("x: %w", logic.ErrOddPlayerCount)))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(fmt.Errorf("x: %w", store.ErrDataUnavailable)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("x")))
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer()

	rec := get(t, s, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "swiss_pairing_requests_total{")
}
