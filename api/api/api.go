/* api.go
 * This file contains the public methods for interacting with this package. For consistent results, functions should
 * only be called from this file, not the sub packages for store and logic.
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"sort"
	"swiss-tournament/api/logic"
	"swiss-tournament/api/shared"
	"swiss-tournament/api/store"

	"golang.org/x/sync/errgroup"
)

// API provides methods for interacting with the tournament data layer
type API struct {
	Store store.Interface
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, tournament string) (*API, error) {
	if dbName == "" || tournament == "" {
		return nil, fmt.Errorf("dbName and tournament are required")
	}

	s, err := store.NewStore(dbName, mongoURI, tournament)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store: s,
	}, nil
}

// snapshot is a single read of the players and match log. One pairing or standings request works off one snapshot
type snapshot struct {
	players []shared.Player
	matches []shared.Match
}

// takeSnapshot reads the players and matches concurrently
// Preconditions: Receives receiver pointer to api
// Postconditions: Returns the snapshot, or an error wrapping store.ErrDataUnavailable if either read fails
func (a *API) takeSnapshot() (snapshot, error) {
	var snap snapshot
	var g errgroup.Group
	g.Go(func() error {
		players, err := a.Store.FetchAllPlayers()
		snap.players = players
		return err
	})
	g.Go(func() error {
		matches, err := a.Store.FetchAllMatches()
		snap.matches = matches
		return err
	})
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// RegisterPlayer adds a player to the tournament.
// It returns the registered player with the id assigned by the store, or an error if it occurs.
func (a *API) RegisterPlayer(name string) (shared.Player, error) {
	return a.Store.RegisterPlayer(name)
}

// ReportMatch records the outcome of a match between two registered players.
// It returns logic.ErrUnknownCompetitor if either id is not registered.
func (a *API) ReportMatch(winnerID int64, loserID int64) error {
	if winnerID == loserID {
		return fmt.Errorf("player %d cannot play against themselves", winnerID)
	}

	players, err := a.Store.FetchAllPlayers()
	if err != nil {
		return err
	}
	idx := logic.NewOpponentIndex(players, nil)
	for _, id := range []int64{winnerID, loserID} {
		if !idx.Has(id) {
			return fmt.Errorf("player %d: %w", id, logic.ErrUnknownCompetitor)
		}
	}

	return a.Store.ReportMatch(shared.Match{WinnerID: winnerID, LoserID: loserID})
}

// ReportMatchByName records a match using player names typed by a user. Names are fuzzy matched against the
// registered players.
// It returns the resolved winner and loser, or an error if either name cannot be resolved or the insert fails.
func (a *API) ReportMatchByName(winnerName string, loserName string) (shared.Player, shared.Player, error) {
	players, err := a.Store.FetchAllPlayers()
	if err != nil {
		return shared.Player{}, shared.Player{}, err
	}

	winner, err := logic.ResolvePlayerName(winnerName, players)
	if err != nil {
		return shared.Player{}, shared.Player{}, err
	}
	loser, err := logic.ResolvePlayerName(loserName, players)
	if err != nil {
		return shared.Player{}, shared.Player{}, err
	}
	if winner.ID == loser.ID {
		return shared.Player{}, shared.Player{}, fmt.Errorf("'%s' and '%s' are both %s", winnerName, loserName, winner.Name)
	}

	if err := a.Store.ReportMatch(shared.Match{WinnerID: winner.ID, LoserID: loser.ID}); err != nil {
		return shared.Player{}, shared.Player{}, err
	}
	return winner, loser, nil
}

// TournamentInfo returns information about the tournament this instance serves.
// It returns a slice of "key: value" lines, or an error if the player count cannot be read.
func (a *API) TournamentInfo() ([]string, error) {
	n, err := a.Store.CountPlayers()
	if err != nil {
		return nil, err
	}

	var values []string
	values = append(values, fmt.Sprintf("Tournament: %s", a.Store.GetTournament()))
	values = append(values, fmt.Sprintf("Database: %s", a.Store.GetDatabase().Name()))
	values = append(values, fmt.Sprintf("Players: %d", n))
	return values, nil
}

// CountPlayers returns the number of registered players
func (a *API) CountPlayers() (int64, error) {
	return a.Store.CountPlayers()
}

// ResetTournament removes every match and then every player of the tournament
func (a *API) ResetTournament() error {
	if err := a.Store.DeleteMatches(); err != nil {
		return err
	}
	return a.Store.DeletePlayers()
}

// PlayerStandings returns the players ranked by wins. Ties keep registration order.
// It returns an error wrapping store.ErrDataUnavailable if the data cannot be read.
func (a *API) PlayerStandings() ([]shared.Standing, error) {
	snap, err := a.takeSnapshot()
	if err != nil {
		return nil, err
	}
	return logic.ComputeStandings(snap.players, snap.matches), nil
}

// PlayerOpponents returns the players that the given player has already faced, ordered by id.
// It returns logic.ErrUnknownCompetitor if the id is not registered.
func (a *API) PlayerOpponents(id int64) ([]shared.Player, error) {
	snap, err := a.takeSnapshot()
	if err != nil {
		return nil, err
	}
	return opponentsOf(id, snap)
}

// PlayerOpponentsByName resolves a typed name and returns that player and their opponents
func (a *API) PlayerOpponentsByName(name string) (shared.Player, []shared.Player, error) {
	snap, err := a.takeSnapshot()
	if err != nil {
		return shared.Player{}, nil, err
	}
	player, err := logic.ResolvePlayerName(name, snap.players)
	if err != nil {
		return shared.Player{}, nil, err
	}
	opponents, err := opponentsOf(player.ID, snap)
	if err != nil {
		return shared.Player{}, nil, err
	}
	return player, opponents, nil
}

func opponentsOf(id int64, snap snapshot) ([]shared.Player, error) {
	set, err := logic.NewOpponentIndex(snap.players, snap.matches).Opponents(id)
	if err != nil {
		return nil, err
	}

	opponents := make([]shared.Player, 0, len(set))
	for _, p := range snap.players {
		if _, ok := set[p.ID]; ok {
			opponents = append(opponents, p)
		}
	}
	sort.Slice(opponents, func(i, j int) bool {
		return opponents[i].ID < opponents[j].ID
	})
	return opponents, nil
}

// SwissPairings pairs players adjacent in the standings for the next round.
// It returns logic.ErrOddPlayerCount if an odd number of players is registered.
func (a *API) SwissPairings() (PairingReport, error) {
	snap, err := a.takeSnapshot()
	if err != nil {
		return PairingReport{}, err
	}

	standings := logic.ComputeStandings(snap.players, snap.matches)
	pairs, err := logic.SwissPairings(standings)
	if err != nil {
		return PairingReport{}, err
	}
	return PairingReport{Pairings: pairs}, nil
}

// SwissPairingsNoRematch pairs players for the next round without repeating a previous match.
// Players that cannot be paired are listed in the report's Unmatched field rather than returned as an error.
func (a *API) SwissPairingsNoRematch() (PairingReport, error) {
	snap, err := a.takeSnapshot()
	if err != nil {
		return PairingReport{}, err
	}

	standings := logic.ComputeStandings(snap.players, snap.matches)
	idx := logic.NewOpponentIndex(snap.players, snap.matches)
	pairs, err := logic.SwissPairingsNoRematch(standings, idx.Opponents)
	if err != nil {
		return PairingReport{}, err
	}
	return PairingReport{
		Pairings:  pairs,
		Unmatched: logic.Unmatched(standings, pairs),
	}, nil
}
