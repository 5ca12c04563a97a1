package chathub

import "givego/backend/internal/models"

// Client is the interface for any type of connection attached to the relay.
// It abstracts the underlying communication mechanism so the relay and the
// room registry can treat all client types uniformly.
type Client interface {
	// GetUserID returns the verified participant identifier bound to the
	// connection by the identity collaborator.
	GetUserID() string

	// GetSendChannel returns the channel the relay writes outbound messages
	// to. It is a send-only channel; the client's write pump drains it.
	GetSendChannel() chan<- models.ChatMessage

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's connection and associated channels.
	Close()
}
