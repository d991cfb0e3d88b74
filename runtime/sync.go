package runtime

import (
	"fmt"
	"log/slog"

	"muc-lab/domain"
)

// Synchronizer reconciles the local registry against the room list a
// provider's server reports. It is a best-effort refresh, not a source of
// truth: a listing failure is logged and leaves local state untouched, and
// discovered rooms are registered but never auto-joined.
type Synchronizer struct {
	log      *slog.Logger
	registry *Registry
}

func NewSynchronizer(log *slog.Logger, registry *Registry) *Synchronizer {
	return &Synchronizer{log: log, registry: registry}
}

// Synchronize resolves or creates the provider's entry, then registers a
// non-persistent room wrapper for every server-side room not yet known
// locally. Already tracked rooms are left untouched.
func (s *Synchronizer) Synchronize(provider domain.Provider) *ProviderEntry {
	entry := s.registry.AddProvider(provider)

	names, err := provider.ListExistingRooms()
	if err != nil {
		s.log.Warn("Failed to obtain existing chat rooms for server",
			"provider", provider.ID(), "error", err)
		return entry
	}

	for _, name := range names {
		key := domain.RoomKey{Provider: provider.ID(), RoomID: name}
		if _, ok := s.registry.FindRoom(key); ok {
			continue
		}
		room := domain.NewRoom(name, name, provider.ID(), nil)
		if err := s.registry.AddRoom(room); err != nil {
			s.log.Warn(fmt.Sprintf("Room %s appeared twice during synchronize", name),
				"provider", provider.ID(), "error", err)
		}
	}
	return entry
}
