package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"muc-lab/domain"
)

func Test_Status_Save_And_Load(t *testing.T) {
	req := require.New(t)
	repo := NewStatusRepository(openTestDB(t), slog.Default())

	room := domain.RoomKey{Provider: "jabber:alice", RoomID: "lobby"}
	req.NoError(repo.SaveStatus(room, domain.StatusOnline))

	status, ok, err := repo.LoadStatus(room)
	req.NoError(err)
	req.True(ok)
	req.Equal(domain.StatusOnline, status)
}

func Test_Status_Load_Absent_Defaults_To_Offline(t *testing.T) {
	req := require.New(t)
	repo := NewStatusRepository(openTestDB(t), slog.Default())

	status, ok, err := repo.LoadStatus(domain.RoomKey{Provider: "jabber:alice", RoomID: "ghost"})
	req.NoError(err)
	req.False(ok)
	req.Equal(domain.StatusOffline, status)
}

func Test_Status_Last_Write_Wins(t *testing.T) {
	req := require.New(t)
	repo := NewStatusRepository(openTestDB(t), slog.Default())

	room := domain.RoomKey{Provider: "jabber:alice", RoomID: "lobby"}
	req.NoError(repo.SaveStatus(room, domain.StatusOnline))
	req.NoError(repo.SaveStatus(room, domain.StatusOffline))

	status, ok, err := repo.LoadStatus(room)
	req.NoError(err)
	req.True(ok)
	req.Equal(domain.StatusOffline, status)
}

func Test_Status_Corrupt_Entry_Is_Reported(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewStatusRepository(db, slog.Default())

	room := domain.RoomKey{Provider: "jabber:alice", RoomID: "lobby"}
	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("status:jabber:alice:lobby"), []byte("bogus"))
	})
	req.NoError(err)

	_, ok, err := repo.LoadStatus(room)
	req.Error(err)
	req.False(ok)
}
