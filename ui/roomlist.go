package ui

import (
	"github.com/gookit/color"

	"muc-lab/contract"
	"muc-lab/domain"
)

var _ contract.RoomListListener = (*ConsoleRoomList)(nil)

// ConsoleRoomList echoes registry changes to the terminal. Callbacks run on
// the mutating goroutine, so this only prints and returns.
type ConsoleRoomList struct{}

func NewConsoleRoomList() *ConsoleRoomList {
	return &ConsoleRoomList{}
}

func (l *ConsoleRoomList) OnRoomListChanged(event domain.RoomListEvent) {
	switch event.Kind {
	case domain.RoomAdded:
		color.Green.Printf("+ %s (%s)\n", event.Room.Name, event.Room.Provider)
	case domain.RoomRemoved:
		color.Gray.Printf("- %s (%s)\n", event.Room.Name, event.Room.Provider)
	case domain.RoomStatusChanged:
		color.Cyan.Printf("~ %s is now %s\n", event.Room.Name, event.Room.Status)
	}
}
