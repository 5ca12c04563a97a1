package chathub_test

import (
	"sync"

	"givego/backend/internal/models"
)

// MockClient is a test double for the chathub.Client interface. Messages the
// relay sends to it land on RecvChannel.
type MockClient struct {
	userID      string
	mu          sync.Mutex
	closed      bool
	RecvChannel chan models.ChatMessage
}

func newMockClient(userID string) *MockClient {
	return &MockClient{
		userID:      userID,
		RecvChannel: make(chan models.ChatMessage, 10), // Buffered to prevent blocking in tests
	}
}

func (c *MockClient) GetUserID() string {
	return c.userID
}

func (c *MockClient) GetSendChannel() chan<- models.ChatMessage {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// IsClosed is safe to call while the relay loop owns the client.
func (c *MockClient) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
