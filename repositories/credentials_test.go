package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"muc-lab/domain"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testKey() [32]byte {
	var key [32]byte
	copy(key[:], "0123456789abcdef0123456789abcdef")
	return key
}

func Test_Credential_Save_And_Load(t *testing.T) {
	req := require.New(t)
	repo := NewCredentialRepository(openTestDB(t), slog.Default(), testKey())

	room := domain.RoomKey{Provider: "jabber:alice", RoomID: "lobby"}
	secret := domain.SecretFromString("s3cr3t")

	req.NoError(repo.Save(room, secret))

	loaded, ok, err := repo.Load(room)
	req.NoError(err)
	req.True(ok)
	req.Equal([]byte("s3cr3t"), loaded.Bytes())
}

func Test_Credential_Load_Absent_Is_Not_An_Error(t *testing.T) {
	req := require.New(t)
	repo := NewCredentialRepository(openTestDB(t), slog.Default(), testKey())

	loaded, ok, err := repo.Load(domain.RoomKey{Provider: "jabber:alice", RoomID: "ghost"})
	req.NoError(err)
	req.False(ok)
	req.True(loaded.IsEmpty())
}

func Test_Credential_Remove_Forgets_The_Secret(t *testing.T) {
	req := require.New(t)
	repo := NewCredentialRepository(openTestDB(t), slog.Default(), testKey())

	room := domain.RoomKey{Provider: "jabber:alice", RoomID: "lobby"}
	req.NoError(repo.Save(room, domain.SecretFromString("s3cr3t")))
	req.NoError(repo.Remove(room))

	_, ok, err := repo.Load(room)
	req.NoError(err)
	req.False(ok)

	// Removing twice is a no-op
	req.NoError(repo.Remove(room))
}

func Test_Credential_Wrong_Key_Fails_To_Decrypt(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	room := domain.RoomKey{Provider: "jabber:alice", RoomID: "lobby"}
	req.NoError(NewCredentialRepository(db, slog.Default(), testKey()).
		Save(room, domain.SecretFromString("s3cr3t")))

	var otherKey [32]byte
	copy(otherKey[:], "ffffffffffffffffffffffffffffffff")

	_, ok, err := NewCredentialRepository(db, slog.Default(), otherKey).Load(room)
	req.Error(err)
	req.False(ok)
}

func Test_Credential_Rooms_Are_Isolated(t *testing.T) {
	req := require.New(t)
	repo := NewCredentialRepository(openTestDB(t), slog.Default(), testKey())

	lobby := domain.RoomKey{Provider: "jabber:alice", RoomID: "lobby"}
	ops := domain.RoomKey{Provider: "jabber:alice", RoomID: "ops"}

	req.NoError(repo.Save(lobby, domain.SecretFromString("one")))
	req.NoError(repo.Save(ops, domain.SecretFromString("two")))
	req.NoError(repo.Remove(lobby))

	loaded, ok, err := repo.Load(ops)
	req.NoError(err)
	req.True(ok)
	req.Equal([]byte("two"), loaded.Bytes())
}
