package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"muc-lab/domain"
)

// StatusRepository persists the last completed presence status for each room
// under "status:{provider}:{room}". This is what the auto-join logic consults
// on the next login, so an explicit leave is remembered even when the leave
// network call never ran.
type StatusRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewStatusRepository(db *badger.DB, log *slog.Logger) *StatusRepository {
	return &StatusRepository{db: db, log: log}
}

func statusKey(key domain.RoomKey) []byte {
	return []byte(fmt.Sprintf("status:%s:%s", key.Provider, key.RoomID))
}

func (r *StatusRepository) SaveStatus(key domain.RoomKey, status domain.PresenceStatus) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(statusKey(key), []byte{byte(status)})
	})
}

// LoadStatus returns (offline, false, nil) when no status was ever persisted
// for the room.
func (r *StatusRepository) LoadStatus(key domain.RoomKey) (domain.PresenceStatus, bool, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(statusKey(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return domain.StatusOffline, false, nil
	}
	if err != nil {
		return domain.StatusOffline, false, err
	}
	if len(raw) != 1 {
		return domain.StatusOffline, false, fmt.Errorf("corrupt status entry for %s", key.RoomID)
	}
	return domain.PresenceStatus(raw[0]), true, nil
}
