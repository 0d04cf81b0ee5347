/* test_mocks.go
 * Contains mock structures for testing the API package and its consumers
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"
	"strings"
	"swiss-tournament/api/shared"
	"swiss-tournament/api/store"
	"sync"
)

// Ensure MockStore implements the store Interface
var _ store.Interface = (*MockStore)(nil)

// MockStore implements the store Interface in memory for testing
type MockStore struct {
	mu sync.Mutex

	// Storage for mock data
	Players []shared.Player
	Matches []shared.Match
	NextID  int64

	// Error injection for testing error paths
	RegisterPlayerError  error
	ReportMatchError     error
	FetchAllPlayersError error
	FetchAllMatchesError error
	CountPlayersError    error
	DeletePlayersError   error
	DeleteMatchesError   error

	// Call counters used to check a request reads each collection once
	FetchAllPlayersCalls int
	FetchAllMatchesCalls int

	Tournament string
	Database   interface{ Name() string }
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// mockClient implements the minimal Client interface needed for tests
type mockClient struct{}

func (m *mockClient) Disconnect(context.Context) error {
	return nil
}

// NewMockStore creates a new MockStore with no players
func NewMockStore(tournament string) *MockStore {
	return &MockStore{
		NextID:     1,
		Tournament: tournament,
		Database:   &mockDatabase{name: "test_db"},
	}
}

// RegisterPlayer mock implementation
func (m *MockStore) RegisterPlayer(name string) (shared.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RegisterPlayerError != nil {
		return shared.Player{}, m.RegisterPlayerError
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.Player{}, fmt.Errorf("player name cannot be empty")
	}
	p := shared.Player{ID: m.NextID, Name: name}
	m.NextID++
	m.Players = append(m.Players, p)
	return p, nil
}

// ReportMatch mock implementation
func (m *MockStore) ReportMatch(match shared.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReportMatchError != nil {
		return m.ReportMatchError
	}
	m.Matches = append(m.Matches, match)
	return nil
}

// FetchAllPlayers mock implementation
func (m *MockStore) FetchAllPlayers() ([]shared.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchAllPlayersCalls++
	if m.FetchAllPlayersError != nil {
		return nil, m.FetchAllPlayersError
	}
	return append([]shared.Player(nil), m.Players...), nil
}

// FetchAllMatches mock implementation
func (m *MockStore) FetchAllMatches() ([]shared.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchAllMatchesCalls++
	if m.FetchAllMatchesError != nil {
		return nil, m.FetchAllMatchesError
	}
	return append([]shared.Match(nil), m.Matches...), nil
}

// CountPlayers mock implementation
func (m *MockStore) CountPlayers() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountPlayersError != nil {
		return 0, m.CountPlayersError
	}
	return int64(len(m.Players)), nil
}

// DeletePlayers mock implementation
func (m *MockStore) DeletePlayers() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeletePlayersError != nil {
		return m.DeletePlayersError
	}
	m.Players = nil
	return nil
}

// DeleteMatches mock implementation
func (m *MockStore) DeleteMatches() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteMatchesError != nil {
		return m.DeleteMatchesError
	}
	m.Matches = nil
	return nil
}

// GetDatabase mock implementation
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return m.Database
}

// GetTournament mock implementation
func (m *MockStore) GetTournament() string {
	return m.Tournament
}

// GetClient mock implementation
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// SetPlayers registers players with the given names in order
func (m *MockStore) SetPlayers(names ...string) {
	for _, n := range names {
		m.RegisterPlayer(n)
	}
}

// SetMatches replaces the match log
func (m *MockStore) SetMatches(matches []shared.Match) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Matches = matches
}
