package domain

// ProviderID identifies a messaging account capable of multi-user chat.
// It is stable for the lifetime of the account and usable as a map key.
type ProviderID string

// RoomKey is the identity of a chat room: the server-side room ID scoped
// to the account that owns it.
type RoomKey struct {
	Provider ProviderID
	RoomID   string
}

type PresenceStatus int

const (
	StatusOffline PresenceStatus = iota
	StatusOnline
)

func (s PresenceStatus) String() string {
	if s == StatusOnline {
		return "online"
	}
	return "offline"
}

// Room is the local wrapper binding a chat room's identity to its owning
// provider and persistence metadata. Session is nil until the room is hooked
// to a live provider session; the join workflow never starts without one.
//
// Status reflects the last completed join/leave outcome, not in-flight
// attempts.
type Room struct {
	Name       string
	ID         string
	Provider   ProviderID
	Persistent bool
	Status     PresenceStatus
	Session    RoomSession
}

func NewRoom(name, id string, provider ProviderID, session RoomSession) *Room {
	return &Room{
		Name:     name,
		ID:       id,
		Provider: provider,
		Session:  session,
	}
}

func (r *Room) Key() RoomKey {
	return RoomKey{Provider: r.Provider, RoomID: r.ID}
}
