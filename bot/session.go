/* session.go
 * Contains the subset of the discord session used by the command handlers, and the helper they reply through
 * Authors: Zachary Bower
 */

package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// DiscordSession is the part of *discordgo.Session the handlers need. Tests swap in MockDiscordSession
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ DiscordSession = (*discordgo.Session)(nil)

// reply sends content to the channel the command came from. A failed send is logged and otherwise dropped, since
// there is nowhere left to report it
func reply(session DiscordSession, message *discordgo.MessageCreate, content string) {
	if _, err := session.ChannelMessageSend(message.ChannelID, content); err != nil {
		log.Printf("failed to send reply to %s in channel %s: %v\n", message.Author.Username, message.ChannelID, err)
	}
}
