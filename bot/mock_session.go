/* mock_session.go
 * Contains an in-memory DiscordSession that records replies for the handler tests
 * Authors: Zachary Bower
 */

package bot

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// MockMessage is one reply captured by MockDiscordSession
type MockMessage struct {
	ChannelID string
	Content   string
}

// MockDiscordSession records every reply. When SendErr is set, sends fail and nothing is recorded
type MockDiscordSession struct {
	mu      sync.Mutex
	sent    []MockMessage
	SendErr error
}

// NewMockDiscordSession creates an empty MockDiscordSession
func NewMockDiscordSession() *MockDiscordSession {
	return &MockDiscordSession{}
}

func (m *MockDiscordSession) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return nil, m.SendErr
	}
	m.sent = append(m.sent, MockMessage{ChannelID: channelID, Content: content})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

// Messages returns the replies in the order they were sent
func (m *MockDiscordSession) Messages() []MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockMessage(nil), m.sent...)
}

// Last returns the most recent reply, or the zero MockMessage if nothing was sent
func (m *MockDiscordSession) Last() MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return MockMessage{}
	}
	return m.sent[len(m.sent)-1]
}
