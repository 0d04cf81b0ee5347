/* format.go
 * Contains helpers that render standings and pairings as chat messages
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"strings"
	"swiss-tournament/api/shared"
)

// FormatStandings renders the standings table, one line per player
func FormatStandings(standings []shared.Standing) string {
	if len(standings) == 0 {
		return "No players registered"
	}

	var res strings.Builder
	res.WriteString("Standings:\n")
	for i, s := range standings {
		res.WriteString(fmt.Sprintf("%d. %s (#%d): %d-%d\n", i+1, s.Name, s.ID, s.Wins, s.Matches-s.Wins))
	}
	return res.String()
}

// FormatPairings renders the pairings of a report, followed by the players left without an opponent
func FormatPairings(report PairingReport) string {
	var res strings.Builder
	if len(report.Pairings) == 0 {
		res.WriteString("No pairings could be made\n")
	} else {
		res.WriteString("Next round:\n")
		for i, p := range report.Pairings {
			res.WriteString(fmt.Sprintf("Table %d: %s (#%d) vs %s (#%d)\n", i+1, p.Name1, p.ID1, p.Name2, p.ID2))
		}
	}

	if !report.Complete() {
		res.WriteString("No legal opponent for:")
		for _, s := range report.Unmatched {
			res.WriteString(fmt.Sprintf(" '%s'", s.Name))
		}
		res.WriteString("\n")
	}
	return res.String()
}

// FormatOpponents renders the list of players someone has already played
func FormatOpponents(player shared.Player, opponents []shared.Player) string {
	if len(opponents) == 0 {
		return fmt.Sprintf("%s has not played anyone yet", player.Name)
	}

	names := make([]string, len(opponents))
	for i, o := range opponents {
		names[i] = o.Name
	}
	return fmt.Sprintf("%s has played: %s", player.Name, strings.Join(names, ", "))
}
