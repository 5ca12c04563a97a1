package models

// Chat message types carried over the wire.
const (
	MessageTypeText   = "text"
	MessageTypeJoined = "joined"
	MessageTypeLeft   = "left"
	MessageTypeError  = "error"
)

// Client event types accepted by the relay.
const (
	EventJoin    = "join"
	EventMessage = "message"
	EventLeave   = "leave"
)

// ChatMessage is a relayed chat payload. Messages are ephemeral: they are
// fanned out to the room's current members and never persisted here.
type ChatMessage struct {
	RoomID   string `json:"room_id"`
	SenderID string `json:"sender_id"`
	Content  string `json:"content"`
	Type     string `json:"type"`
	// Timestamp is assigned by the relay (unix nanoseconds) and is strictly
	// increasing within a room.
	Timestamp int64 `json:"timestamp,omitempty"`
	// Origin identifies the relay instance that stamped the message, so a
	// Pub/Sub subscriber can skip messages it already delivered locally.
	Origin string `json:"origin,omitempty"`
}

// ClientEvent is an inbound event from a connected client.
type ClientEvent struct {
	Type    string `json:"type"`
	RoomID  string `json:"room_id"`
	Content string `json:"content,omitempty"`
}
