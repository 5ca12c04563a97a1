package chathub

import (
	"encoding/json"
	"errors"
	"log"

	"givego/backend/internal/models"
	"givego/backend/internal/storage"

	"github.com/google/uuid"
)

// Relay-level failures reported back to the originating connection only.
var (
	ErrNotEligible         = errors.New("you are not eligible to chat")
	ErrNotAllowed          = errors.New("you are not allowed to send a message")
	ErrParticipantNotFound = errors.New("user not found")
)

// Eligibility is the evaluator the relay consults on every join and every
// send. Standing is never cached on the connection.
type Eligibility interface {
	IsEligible(participantID string) (bool, error)
}

// Relay consumes inbound client events, re-validates eligibility, stamps and
// orders messages, and fans them out through the room registry. No failure
// here is fatal to the process: errors go to the sender's connection and the
// connection stays open.
type Relay struct {
	Registry    *Registry
	Eligibility Eligibility
	Storage     storage.Storage

	RegisterCh   chan Client
	UnregisterCh chan Client

	// origin distinguishes this relay instance on the Pub/Sub channel so it
	// does not re-deliver its own broadcasts.
	origin string

	clients map[string]Client // owned by the Run goroutine
}

// NewRelay creates the relay; call Run in its own goroutine afterwards.
func NewRelay(reg *Registry, ev Eligibility, s storage.Storage) *Relay {
	return &Relay{
		Registry:     reg,
		Eligibility:  ev,
		Storage:      s,
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		origin:       uuid.New().String(),
		clients:      make(map[string]Client),
	}
}

// Run is the relay's dispatcher loop: it owns the client set and handles
// register/unregister plus messages arriving from other instances over
// Redis Pub/Sub.
func (r *Relay) Run() {
	pubSubCh := r.startPubSubListener()

	for {
		select {
		case client := <-r.RegisterCh:
			r.clients[client.GetUserID()] = client

		case client := <-r.UnregisterCh:
			if cur, ok := r.clients[client.GetUserID()]; ok && cur == client {
				delete(r.clients, client.GetUserID())
			}
			left := r.Registry.RemoveClient(client)
			client.Close()
			log.Printf("Client %s disconnected, left %d room(s)", client.GetUserID(), len(left))

		case msg := <-pubSubCh:
			if msg.Origin == r.origin {
				continue // already delivered locally before publishing
			}
			r.Registry.Deliver(msg.RoomID, msg)
		}
	}
}

// startPubSubListener subscribes to the room channels and feeds foreign
// messages into the returned channel. Without Redis (tests) it returns a
// channel that never yields.
func (r *Relay) startPubSubListener() <-chan models.ChatMessage {
	out := make(chan models.ChatMessage)
	pubsub := r.Storage.SubscribeRooms()
	if pubsub == nil {
		return out
	}

	go func() {
		defer pubsub.Close()
		for msg := range pubsub.Channel() {
			var chatMsg models.ChatMessage
			if err := json.Unmarshal([]byte(msg.Payload), &chatMsg); err != nil {
				log.Printf("Error unmarshalling Pub/Sub message: %v", err)
				continue
			}
			out <- chatMsg
		}
	}()
	return out
}

// Dispatch routes one inbound event. It is called concurrently from the
// clients' read pumps; per-room serialization happens inside the registry.
func (r *Relay) Dispatch(client Client, event models.ClientEvent) {
	switch event.Type {
	case models.EventJoin:
		r.handleJoin(client, event.RoomID)
	case models.EventMessage:
		r.handleMessage(client, event.RoomID, event.Content)
	case models.EventLeave:
		r.handleLeave(client, event.RoomID)
	default:
		log.Printf("Unknown event type %q from client %s", event.Type, client.GetUserID())
	}
}

// handleJoin admits the client to the room after re-checking standing. The
// membership set is untouched on rejection.
func (r *Relay) handleJoin(client Client, roomID string) {
	userID := client.GetUserID()

	if _, err := r.Storage.GetUserByID(userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			r.sendError(client, roomID, ErrParticipantNotFound)
			return
		}
		r.reportStoreError(client, roomID, "join", err)
		return
	}

	eligible, err := r.Eligibility.IsEligible(userID)
	if err != nil {
		r.reportStoreError(client, roomID, "join", err)
		return
	}
	if !eligible {
		r.sendError(client, roomID, ErrNotEligible)
		return
	}

	r.Registry.Join(roomID, client)
	log.Printf("%s joined room: %s", userID, roomID)

	ack := models.ChatMessage{
		RoomID:   roomID,
		SenderID: "system",
		Type:     models.MessageTypeJoined,
	}
	r.sendToClient(client, ack)
}

// handleMessage re-checks standing, then stamps and broadcasts. An ineligible
// sender gets the error alone and the room membership is left as-is.
func (r *Relay) handleMessage(client Client, roomID, content string) {
	senderID := client.GetUserID()

	eligible, err := r.Eligibility.IsEligible(senderID)
	if err != nil {
		r.reportStoreError(client, roomID, "send", err)
		return
	}
	if !eligible {
		r.sendError(client, roomID, ErrNotAllowed)
		return
	}

	msg := models.ChatMessage{
		RoomID:   roomID,
		SenderID: senderID,
		Content:  content,
		Type:     models.MessageTypeText,
		Origin:   r.origin,
	}

	stamped, _ := r.Registry.Broadcast(roomID, msg)

	// Local members already have the message; publish for other instances.
	if err := r.Storage.PublishMessage(roomID, stamped); err != nil {
		log.Printf("ERROR: Failed to publish message for room %s: %v", roomID, err)
	}
}

func (r *Relay) handleLeave(client Client, roomID string) {
	r.Registry.Leave(roomID, client.GetUserID())
	r.sendToClient(client, models.ChatMessage{
		RoomID:   roomID,
		SenderID: "system",
		Type:     models.MessageTypeLeft,
	})
}

// sendError reports a failure to the originating connection only.
func (r *Relay) sendError(client Client, roomID string, cause error) {
	r.sendToClient(client, models.ChatMessage{
		RoomID:   roomID,
		SenderID: "system",
		Content:  cause.Error(),
		Type:     models.MessageTypeError,
	})
}

// reportStoreError logs the underlying failure and surfaces a generic error
// to the sender; the connection stays open and nothing is retried here.
func (r *Relay) reportStoreError(client Client, roomID, op string, err error) {
	log.Printf("ERROR: store failure during %s for %s: %v", op, client.GetUserID(), err)
	r.sendToClient(client, models.ChatMessage{
		RoomID:   roomID,
		SenderID: "system",
		Content:  "internal server error",
		Type:     models.MessageTypeError,
	})
}

// sendToClient is fire-and-forget: a client that cannot accept the write is
// left to the unregister path, not waited on.
func (r *Relay) sendToClient(client Client, msg models.ChatMessage) {
	select {
	case client.GetSendChannel() <- msg:
	default:
	}
}
