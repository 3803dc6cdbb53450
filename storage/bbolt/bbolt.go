// Package bbolt provides a BBolt-backed keyring with values sealed at rest.
package bbolt

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/hotelsoft/concierge/internal/util"
	"github.com/hotelsoft/concierge/storage"
)

const bucketName = "keyring"

// sealedValue is the JSON envelope stored per key. The salt and KDF
// parameters travel with the ciphertext so values written under old
// defaults stay readable.
type sealedValue struct {
	Salt       []byte              `json:"salt"`
	KDFParams  util.Argon2idParams `json:"kdf_params"`
	Ciphertext []byte              `json:"ciphertext"`
}

// Keyring implements storage.Keyring backed by a BBolt database. Values
// are encrypted with AES-256-GCM under a key derived from the passphrase
// via argon2id, so a stolen database file does not leak the session token.
type Keyring struct {
	db         *bbolt.DB
	passphrase string
}

var _ storage.Keyring = (*Keyring)(nil)

// Open opens (creating if needed) a BBolt keyring at path. The passphrase
// seals all values; opening with a different passphrase makes existing
// values unreadable.
func Open(path, passphrase string, options *bbolt.Options) (*Keyring, error) {
	db, err := bbolt.Open(path, 0600, options)
	if err != nil {
		return nil, fmt.Errorf("opening bbolt db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating keyring bucket: %w", err)
	}
	return &Keyring{db: db, passphrase: util.Normalize(passphrase)}, nil
}

// Close closes the underlying BBolt database.
func (k *Keyring) Close() error {
	return k.db.Close()
}

func (k *Keyring) Set(key, value string) error {
	salt, err := util.RandomBytes(16)
	if err != nil {
		return err
	}
	params := util.DefaultArgon2idParams()
	sealKey, err := util.DeriveArgon2idKey(k.passphrase, salt, params)
	if err != nil {
		return fmt.Errorf("deriving sealing key: %w", err)
	}
	ct, err := util.EncryptAES([]byte(value), sealKey)
	if err != nil {
		return fmt.Errorf("sealing value: %w", err)
	}
	data, err := json.Marshal(sealedValue{Salt: salt, KDFParams: params, Ciphertext: ct})
	if err != nil {
		return err
	}
	return k.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), data)
	})
}

func (k *Keyring) Get(key string) (string, error) {
	var data []byte
	err := k.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%s: %w", key, storage.ErrNotFound)
		}
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return "", err
	}

	var sv sealedValue
	if err := json.Unmarshal(data, &sv); err != nil {
		return "", fmt.Errorf("decoding sealed value: %w", err)
	}
	sealKey, err := util.DeriveArgon2idKey(k.passphrase, sv.Salt, sv.KDFParams)
	if err != nil {
		return "", fmt.Errorf("deriving sealing key: %w", err)
	}
	plain, err := util.DecryptAES(sv.Ciphertext, sealKey)
	if err != nil {
		return "", fmt.Errorf("unsealing %s: %w", key, err)
	}
	return string(plain), nil
}

func (k *Keyring) Delete(key string) error {
	return k.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
}
