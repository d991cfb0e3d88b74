package domain

type RoomListEventKind int

const (
	RoomAdded RoomListEventKind = iota
	RoomRemoved
	RoomStatusChanged
)

func (k RoomListEventKind) String() string {
	switch k {
	case RoomAdded:
		return "added"
	case RoomRemoved:
		return "removed"
	default:
		return "status_changed"
	}
}

// RoomListEvent notifies listeners of a registry mutation. Events are fired
// synchronously from the mutating call; a room's added event is always
// observable before any status change for that room.
type RoomListEvent struct {
	Room *Room
	Kind RoomListEventKind
}
