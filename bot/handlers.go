/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"swiss-tournament/api/api"
	"swiss-tournament/api/shared"

	"github.com/bwmarrin/discordgo"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Swiss Tournament Bot v1.0\n")
	res.WriteString("`$register name`: Registers a player for the tournament. Names that contain two or more words can be encased in \" (e.g. \"Bruno Walton\")\n")
	res.WriteString("`$report winner loser`: Records the result of a match. Players can be given by id or by name, names are fuzzy matched\n")
	res.WriteString("`$standings`: Shows the players ranked by wins. Players with the same number of wins are listed in registration order\n")
	res.WriteString("`$opponents player`: Shows who a player has already played\n")
	res.WriteString("`$pairings`: Pairs each player with the player next to them in the standings. Requires an even number of players\n")
	res.WriteString("`$pairings norematch`: Pairs players without repeating a match. Players without a legal opponent are listed separately\n")
	res.WriteString("`$count`: Shows the number of registered players\n")
	res.WriteString("`$info`: Shows the tournament name, database and player count\n")
	res.WriteString("`$reset`: Removes all players and matches (admins only)\n")
	reply(session, message, res.String())
}

// registerHandler handles the $register command with a DiscordSession interface
func (b *Bot) registerHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	if len(args) == 0 {
		reply(session, message, "Usage: `$register name`")
		return
	}

	player, err := b.APIPtr.RegisterPlayer(strings.Join(args, " "))
	if err != nil {
		log.Println(err)
		reply(session, message, userError(err))
		return
	}
	reply(session, message, fmt.Sprintf("%s has been registered with id %d", player.Name, player.ID))
}

// reportHandler handles the $report command with a DiscordSession interface
func (b *Bot) reportHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	if len(args) != 2 {
		reply(session, message, "Usage: `$report winner loser`")
		return
	}

	var res string
	winnerID, winnerErr := strconv.ParseInt(args[0], 10, 64)
	loserID, loserErr := strconv.ParseInt(args[1], 10, 64)
	if winnerErr == nil && loserErr == nil {
		if err := b.APIPtr.ReportMatch(winnerID, loserID); err != nil {
			log.Println(err)
			reply(session, message, userError(err))
			return
		}
		res = fmt.Sprintf("Recorded win for #%d over #%d", winnerID, loserID)
	} else {
		winner, loser, err := b.APIPtr.ReportMatchByName(args[0], args[1])
		if err != nil {
			log.Println(err)
			reply(session, message, userError(err))
			return
		}
		res = fmt.Sprintf("Recorded win for %s over %s", winner.Name, loser.Name)
	}
	reply(session, message, res)
}

// standingsHandler handles the $standings command with a DiscordSession interface
func (b *Bot) standingsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	standings, err := b.APIPtr.PlayerStandings()
	if err != nil {
		log.Println(err)
		reply(session, message, userError(err))
		return
	}
	reply(session, message, api.FormatStandings(standings))
}

// opponentsHandler handles the $opponents command with a DiscordSession interface
func (b *Bot) opponentsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	if len(args) == 0 {
		reply(session, message, "Usage: `$opponents player`")
		return
	}

	var (
		player    shared.Player
		opponents []shared.Player
		err       error
	)
	if id, parseErr := strconv.ParseInt(args[0], 10, 64); parseErr == nil && len(args) == 1 {
		player = shared.Player{ID: id, Name: fmt.Sprintf("#%d", id)}
		opponents, err = b.APIPtr.PlayerOpponents(id)
	} else {
		player, opponents, err = b.APIPtr.PlayerOpponentsByName(strings.Join(args, " "))
	}
	if err != nil {
		log.Println(err)
		reply(session, message, userError(err))
		return
	}
	reply(session, message, api.FormatOpponents(player, opponents))
}

// pairingsHandler handles the $pairings command with a DiscordSession interface
func (b *Bot) pairingsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	avoidRematches := len(args) > 0 && strings.EqualFold(args[0], "norematch")

	var (
		report api.PairingReport
		err    error
	)
	if avoidRematches {
		report, err = b.APIPtr.SwissPairingsNoRematch()
	} else {
		report, err = b.APIPtr.SwissPairings()
	}
	if err != nil {
		log.Println(err)
		reply(session, message, userError(err))
		return
	}
	reply(session, message, api.FormatPairings(report))
}

// countHandler handles the $count command with a DiscordSession interface
func (b *Bot) countHandler(session DiscordSession, message *discordgo.MessageCreate) {
	n, err := b.APIPtr.CountPlayers()
	if err != nil {
		log.Println(err)
		reply(session, message, userError(err))
		return
	}
	reply(session, message, fmt.Sprintf("%d players registered", n))
}

// infoHandler handles the $info command with a DiscordSession interface
func (b *Bot) infoHandler(session DiscordSession, message *discordgo.MessageCreate) {
	info, err := b.APIPtr.TournamentInfo()
	if err != nil {
		log.Println(err)
		reply(session, message, userError(err))
		return
	}
	reply(session, message, strings.Join(info, "\n"))
}

// resetHandler handles the $reset command with a DiscordSession interface
func (b *Bot) resetHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if !b.isAdmin(message.Author.ID) {
		reply(session, message, "Only tournament admins can reset the tournament")
		return
	}
	if err := b.APIPtr.ResetTournament(); err != nil {
		log.Println(err)
		reply(session, message, userError(err))
		return
	}
	log.Printf("tournament reset by %s\n", message.Author.Username)
	reply(session, message, "All players and matches have been removed")
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	// Route to appropriate handler
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$register"):
		b.registerHandler(session, message)

	case startsWith(message.Content, "$report"):
		b.reportHandler(session, message)

	case startsWith(message.Content, "$standings"):
		b.standingsHandler(session, message)

	case startsWith(message.Content, "$opponents"):
		b.opponentsHandler(session, message)

	case startsWith(message.Content, "$pairings"):
		b.pairingsHandler(session, message)

	case startsWith(message.Content, "$count"):
		b.countHandler(session, message)

	case startsWith(message.Content, "$info"):
		b.infoHandler(session, message)

	case startsWith(message.Content, "$reset"):
		b.resetHandler(session, message)
	}
}
