package runtime

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"muc-lab/domain"
	"muc-lab/mocks"
)

func TestSynchronizer_Registers_Only_Unknown_Remote_Rooms(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := NewRegistry()
	sync := NewSynchronizer(slog.Default(), registry)

	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().ID().Return(domain.ProviderID("jabber:alice")).AnyTimes()
	provider.EXPECT().ListExistingRooms().Return([]string{"lobby", "dev"}, nil)

	// Given lobby is already tracked locally
	lobby := domain.NewRoom("lobby", "lobby", "jabber:alice", nil)
	lobby.Persistent = true
	req.NoError(registry.AddRoom(lobby))

	listener := &recordingListener{}
	registry.AddListener(listener)

	// When synchronizing against the server's room list
	entry := sync.Synchronize(provider)

	// Then exactly one handle appears for dev, lobby is untouched
	req.Equal(2, registry.Size())
	req.Len(listener.events, 1)
	req.Equal(domain.RoomAdded, listener.events[0].Kind)
	req.Equal("dev", listener.events[0].Room.Name)

	dev, ok := registry.FindRoom(domain.RoomKey{Provider: "jabber:alice", RoomID: "dev"})
	req.True(ok)
	req.False(dev.Persistent)
	req.Nil(dev.Session)

	tracked, ok := registry.FindRoom(lobby.Key())
	req.True(ok)
	req.Same(lobby, tracked)
	req.True(tracked.Persistent)
	req.Same(entry, registry.Providers()[0])
}

func TestSynchronizer_Listing_Failure_Leaves_State_Untouched(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := NewRegistry()
	sync := NewSynchronizer(slog.Default(), registry)

	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().ID().Return(domain.ProviderID("jabber:alice")).AnyTimes()
	provider.EXPECT().ListExistingRooms().Return(nil, fmt.Errorf("server timeout"))

	listener := &recordingListener{}
	registry.AddListener(listener)

	// When the server listing fails
	entry := sync.Synchronize(provider)

	// Then the refresh is best-effort: no rooms, no events, entry resolved
	req.NotNil(entry)
	req.Equal(0, registry.Size())
	req.Empty(listener.events)
}

func TestSynchronizer_Does_Not_Autojoin_Discovered_Rooms(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := NewRegistry()
	sync := NewSynchronizer(slog.Default(), registry)

	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().ID().Return(domain.ProviderID("jabber:alice")).AnyTimes()
	provider.EXPECT().ListExistingRooms().Return([]string{"dev"}, nil)

	sync.Synchronize(provider)

	// Then the discovered room stays offline; join is a separate step
	dev, ok := registry.FindRoom(domain.RoomKey{Provider: "jabber:alice", RoomID: "dev"})
	req.True(ok)
	req.Equal(domain.StatusOffline, dev.Status)
}
