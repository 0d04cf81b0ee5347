/* bot.go
 * Contains the Bot struct and helpers shared by the command handlers. Requires a discord bot token, and APIPtr both
 * of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"errors"
	"fmt"
	"strings"
	"swiss-tournament/api/api"
	"swiss-tournament/api/logic"
	"swiss-tournament/api/store"

	"github.com/go-andiamo/splitter"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
	// AdminIDs are the discord user ids allowed to run $reset
	AdminIDs []string
}

func NewBot(botToken string, apiPtr *api.API, adminIDs ...string) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		AdminIDs: adminIDs,
	}, nil
}

func (b *Bot) isAdmin(userID string) bool {
	for _, id := range b.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// commandArgs splits a message into its arguments, dropping the command itself. Arguments containing spaces must
// be wrapped in double quotes, which are removed
func commandArgs(content string) []string {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	parts, err := spaceSplitter.Split(content)
	if err != nil || len(parts) == 0 {
		return nil
	}

	var args []string
	for _, part := range parts[1:] {
		part = strings.NewReplacer("\"", "", "“", "", "”", "").Replace(part)
		part = strings.TrimSpace(part)
		if part != "" {
			args = append(args, part)
		}
	}
	return args
}

// userError turns an api error into a message that can be shown in the channel
func userError(err error) string {
	switch {
	case errors.Is(err, logic.ErrUnknownCompetitor):
		return fmt.Sprintf("Unknown player: %s", err)
	case errors.Is(err, logic.ErrOddPlayerCount):
		return "There is an odd number of players so everyone cannot be paired. Use `$pairings norematch` to pair as many players as possible"
	case errors.Is(err, store.ErrDataUnavailable):
		return "The tournament data is unavailable right now, try again later"
	default:
		return fmt.Sprintf("An error occured: %s", err)
	}
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
