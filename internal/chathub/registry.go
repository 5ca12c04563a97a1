package chathub

import (
	"sync"
	"time"

	"givego/backend/internal/models"
)

// member ties a participant ID to its live connection inside a room.
type member struct {
	userID string
	client Client
}

// room owns one membership set. All mutations and broadcasts for the room go
// through its mutex, which preserves join order and gives messages a total
// order; different rooms never share a lock.
type room struct {
	mu      sync.Mutex
	members []member // insertion order = join order
	clock   int64    // last stamp handed out, unix nanoseconds
}

// stamp returns a strictly increasing timestamp for the room. Must be called
// with the room lock held; arrival order at the lock breaks ties.
func (r *room) stamp() int64 {
	now := time.Now().UnixNano()
	if now <= r.clock {
		now = r.clock + 1
	}
	r.clock = now
	return now
}

// Registry maps room identifiers to their currently joined connections.
// Rooms are transient: they exist only while someone is connected and are
// dropped as soon as the last member leaves.
type Registry struct {
	mu    sync.Mutex // guards the rooms map only
	rooms map[string]*room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*room)}
}

// Join adds the client's connection to the room, creating the room on first
// join. Rejoining replaces the prior entry for that participant in place, so
// a reconnect does not lose its position in join order. Eligibility is the
// relay's concern; the registry only tracks membership.
func (reg *Registry) Join(roomID string, client Client) {
	// The registry lock is held across the whole join so a concurrent gc of
	// the room cannot strand the new member on a dropped room object.
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.rooms[roomID]
	if !ok {
		r = &room{}
		reg.rooms[roomID] = r
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	userID := client.GetUserID()
	for i := range r.members {
		if r.members[i].userID == userID {
			r.members[i].client = client
			return
		}
	}
	r.members = append(r.members, member{userID: userID, client: client})
}

// Leave removes the participant from the room; a no-op if absent. The room
// itself is dropped once empty.
func (reg *Registry) Leave(roomID, userID string) {
	reg.mu.Lock()
	r, ok := reg.rooms[roomID]
	reg.mu.Unlock()
	if !ok {
		return
	}

	r.mu.Lock()
	for i := range r.members {
		if r.members[i].userID == userID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}
	empty := len(r.members) == 0
	r.mu.Unlock()

	if empty {
		reg.gc(roomID)
	}
}

// RemoveClient sweeps the client out of every room it is a member of and
// returns the affected room IDs. Invoked on connection close; it touches
// nothing but this client's own memberships.
func (reg *Registry) RemoveClient(client Client) []string {
	userID := client.GetUserID()

	reg.mu.Lock()
	ids := make([]string, 0, len(reg.rooms))
	for id := range reg.rooms {
		ids = append(ids, id)
	}
	reg.mu.Unlock()

	var left []string
	for _, id := range ids {
		if reg.isMember(id, userID) {
			reg.Leave(id, userID)
			left = append(left, id)
		}
	}
	return left
}

// Broadcast stamps the message under the room lock and fans it out to every
// current member. Delivery is fire-and-forget per connection: a member whose
// send buffer is full (slow or dead) is dropped from the room rather than
// allowed to stall the others. Returns the stamped message and the number of
// members it was delivered to.
func (reg *Registry) Broadcast(roomID string, msg models.ChatMessage) (models.ChatMessage, int) {
	reg.mu.Lock()
	r, ok := reg.rooms[roomID]
	if !ok {
		// No local members, but the message must still carry a stamp: the
		// caller publishes it to instances that do hold members for this
		// room. The transient room is dropped again right after.
		r = &room{}
		reg.rooms[roomID] = r
	}
	reg.mu.Unlock()

	r.mu.Lock()
	msg.Timestamp = r.stamp()
	delivered, empty := r.fanOut(msg)
	r.mu.Unlock()

	if empty {
		reg.gc(roomID)
	}
	return msg, delivered
}

// Deliver fans out a message that was already stamped by another relay
// instance. The room clock is advanced past the foreign stamp so local
// stamps stay monotonic.
func (reg *Registry) Deliver(roomID string, msg models.ChatMessage) int {
	reg.mu.Lock()
	r, ok := reg.rooms[roomID]
	reg.mu.Unlock()
	if !ok {
		return 0
	}

	r.mu.Lock()
	if msg.Timestamp > r.clock {
		r.clock = msg.Timestamp
	}
	delivered, empty := r.fanOut(msg)
	r.mu.Unlock()

	if empty {
		reg.gc(roomID)
	}
	return delivered
}

// fanOut pushes the message to every member, pruning the ones that cannot
// accept it. Must be called with the room lock held.
func (r *room) fanOut(msg models.ChatMessage) (delivered int, empty bool) {
	kept := r.members[:0]
	for _, m := range r.members {
		select {
		case m.client.GetSendChannel() <- msg:
			delivered++
			kept = append(kept, m)
		default:
			// Slow or closed connection; drop it from the room.
		}
	}
	r.members = kept
	return delivered, len(r.members) == 0
}

// Members returns the participant IDs currently in the room, in join order.
func (reg *Registry) Members(roomID string) []string {
	reg.mu.Lock()
	r, ok := reg.rooms[roomID]
	reg.mu.Unlock()
	if !ok {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.members))
	for i, m := range r.members {
		ids[i] = m.userID
	}
	return ids
}

func (reg *Registry) isMember(roomID, userID string) bool {
	reg.mu.Lock()
	r, ok := reg.rooms[roomID]
	reg.mu.Unlock()
	if !ok {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.userID == userID {
			return true
		}
	}
	return false
}

// gc drops the room if it is still empty. Lock order is registry then room.
func (reg *Registry) gc(roomID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.rooms[roomID]
	if !ok {
		return
	}
	r.mu.Lock()
	if len(r.members) == 0 {
		delete(reg.rooms, roomID)
	}
	r.mu.Unlock()
}
