package repositories

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/crypto/nacl/secretbox"

	"muc-lab/domain"
)

// CredentialRepository persists remembered room passwords in BadgerDB,
// encrypted at rest with nacl/secretbox. The key is formatted as
// "cred:{provider}:{room}" so all secrets of one account share a prefix.
// A fresh random nonce is drawn for every save and stored in front of the
// ciphertext.
type CredentialRepository struct {
	db  *badger.DB
	log *slog.Logger
	key [32]byte
}

func NewCredentialRepository(db *badger.DB, log *slog.Logger, key [32]byte) *CredentialRepository {
	return &CredentialRepository{db: db, log: log, key: key}
}

func credentialKey(key domain.RoomKey) []byte {
	return []byte(fmt.Sprintf("cred:%s:%s", key.Provider, key.RoomID))
}

func (r *CredentialRepository) Save(key domain.RoomKey, secret domain.Secret) error {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], secret.Bytes(), &nonce, &r.key)

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(credentialKey(key), sealed)
	})
}

// Load returns (zero, false, nil) when no secret is remembered for the room.
func (r *CredentialRepository) Load(key domain.RoomKey) (domain.Secret, bool, error) {
	var sealed []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(credentialKey(key))
		if err != nil {
			return err
		}
		sealed, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return domain.Secret{}, false, nil
	}
	if err != nil {
		return domain.Secret{}, false, err
	}
	if len(sealed) < 24 {
		return domain.Secret{}, false, fmt.Errorf("stored credential too short")
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plain, ok := secretbox.Open(nil, sealed[24:], &nonce, &r.key)
	if !ok {
		return domain.Secret{}, false, fmt.Errorf("stored credential cannot be decrypted")
	}
	return domain.NewSecret(plain), true, nil
}

// Remove deletes the stored secret; removing an absent key is a no-op.
func (r *CredentialRepository) Remove(key domain.RoomKey) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(credentialKey(key))
	})
}
