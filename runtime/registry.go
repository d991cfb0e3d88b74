// Package runtime holds the chat-room registry, the provider synchronizer and
// the join dispatch machinery. It orchestrates membership without containing
// protocol logic: everything network-facing lives behind the domain.Provider
// and domain.RoomSession interfaces.
package runtime

import (
	"sync"

	"github.com/samber/lo"

	"muc-lab/contract"
	"muc-lab/domain"
	"muc-lab/errors"
)

// ProviderEntry tracks one chat-capable account and the rooms it owns,
// in insertion order.
type ProviderEntry struct {
	Provider domain.Provider
	rooms    []*domain.Room
}

// Rooms returns a copy of the provider's rooms in insertion order.
func (e *ProviderEntry) Rooms() []*domain.Room {
	out := make([]*domain.Room, len(e.rooms))
	copy(out, e.rooms)
	return out
}

// Registry is the authoritative in-memory index of all known chat rooms and
// their owning providers.
//
// The mutex guards the maps only; listener callbacks run outside of it, on
// the mutating goroutine. Listeners must not re-enter the registry during a
// callback, this is documented and not enforced.
type Registry struct {
	mu            sync.RWMutex
	rooms         map[domain.RoomKey]*domain.Room
	providers     map[domain.ProviderID]*ProviderEntry
	providerOrder []domain.ProviderID
	listeners     []contract.RoomListListener
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:     make(map[domain.RoomKey]*domain.Room),
		providers: make(map[domain.ProviderID]*ProviderEntry),
	}
}

// AddRoom inserts a room and fires an added event. A second insert for the
// same (room ID, provider) identity fails with ErrDuplicateRoom and leaves
// the registry untouched.
func (r *Registry) AddRoom(room *domain.Room) error {
	r.mu.Lock()
	key := room.Key()
	if _, ok := r.rooms[key]; ok {
		r.mu.Unlock()
		return errors.ErrDuplicateRoom
	}
	r.rooms[key] = room
	if entry, ok := r.providers[room.Provider]; ok {
		entry.rooms = append(entry.rooms, room)
	}
	r.mu.Unlock()

	r.notify(domain.RoomListEvent{Room: room, Kind: domain.RoomAdded})
	return nil
}

// RemoveRoom removes a room and fires a removed event. Removing an unknown
// room is a no-op.
func (r *Registry) RemoveRoom(room *domain.Room) {
	r.mu.Lock()
	key := room.Key()
	if _, ok := r.rooms[key]; !ok {
		r.mu.Unlock()
		return
	}
	delete(r.rooms, key)
	if entry, ok := r.providers[room.Provider]; ok {
		entry.rooms = lo.Reject(entry.rooms, func(item *domain.Room, _ int) bool {
			return item.Key() == key
		})
	}
	r.mu.Unlock()

	r.notify(domain.RoomListEvent{Room: room, Kind: domain.RoomRemoved})
}

func (r *Registry) FindRoom(key domain.RoomKey) (*domain.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[key]
	return room, ok
}

// FindBySession resolves a live provider session back to its tracked wrapper.
// Used when the server hands back a session not yet known locally, so that
// lookups by session and by identity agree on the same wrapper.
func (r *Registry) FindBySession(session domain.RoomSession) (*domain.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.Session == session {
			return room, true
		}
	}
	return nil, false
}

// AddProvider registers a provider and returns its entry. Re-adding an
// already known provider returns the existing entry.
func (r *Registry) AddProvider(provider domain.Provider) *ProviderEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.providers[provider.ID()]; ok {
		return entry
	}
	entry := &ProviderEntry{Provider: provider}
	r.providers[provider.ID()] = entry
	r.providerOrder = append(r.providerOrder, provider.ID())
	return entry
}

func (r *Registry) FindProvider(id domain.ProviderID) (*ProviderEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.providers[id]
	return entry, ok
}

// Providers returns all provider entries in insertion order.
func (r *Registry) Providers() []*ProviderEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.providerOrder, func(id domain.ProviderID, _ int) *ProviderEntry {
		return r.providers[id]
	})
}

// SetStatus records a room's last completed join/leave outcome and fires a
// status-changed event. Concurrent joins of the same room both end up here;
// the last one wins, there is no per-room single flight.
func (r *Registry) SetStatus(room *domain.Room, status domain.PresenceStatus) {
	r.mu.Lock()
	room.Status = status
	r.mu.Unlock()

	r.notify(domain.RoomListEvent{Room: room, Kind: domain.RoomStatusChanged})
}

func (r *Registry) AddListener(l contract.RoomListListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

func (r *Registry) RemoveListener(l contract.RoomListListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = lo.Reject(r.listeners, func(item contract.RoomListListener, _ int) bool {
		return item == l
	})
}

// Size returns the number of tracked rooms.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

func (r *Registry) notify(event domain.RoomListEvent) {
	r.mu.RLock()
	listeners := make([]contract.RoomListListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.RUnlock()

	for _, l := range listeners {
		l.OnRoomListChanged(event)
	}
}
