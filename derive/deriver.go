// Package derive turns a passphrase into a base key with Argon2id and derives
// domain separated subkeys from it with keyed BLAKE2b.
package derive

import (
	"errors"
	"fmt"
	"github.com/tigerwill90/keyderive/internal/crypto"
	"github.com/tigerwill90/keyderive/keys"
	"golang.org/x/text/unicode/norm"
)

var ErrPassphraseTooShort = fmt.Errorf("passphrase must be at least %d bytes", MinPassphraseLength)

var errNoSubject = errors.New("auth token subject is required")

// Deriver derives keys with Argon2id and BLAKE2b.
type Deriver struct {
	config *config
}

// New returns the deriver identified by version. Only the Argon2id/BLAKE2b
// deriver exists, so every version currently resolves to it.
func New(version keys.VersionToken, opts ...Option) *Deriver {
	switch version.String() {
	default:
		return NewArgonBlake(opts...)
	}
}

func NewArgonBlake(opts ...Option) *Deriver {
	config := defaultConfig()
	for _, opt := range opts {
		opt.apply(config)
	}
	return &Deriver{config: config}
}

// Salt returns the argon2 salt derived from label.
func (d *Deriver) Salt(label string) [crypto.SaltSize]byte {
	return crypto.Salt([]byte(norm.NFKD.String(label)))
}

func (d *Deriver) rawBaseKey(label, passphrase string) (salt, key []byte, err error) {
	passphrase = norm.NFKD.String(passphrase)
	if len(passphrase) < MinPassphraseLength {
		return nil, nil, ErrPassphraseTooShort
	}

	s := d.Salt(label)
	key, err = crypto.DeriveKey([]byte(passphrase), s[:], d.config.params)
	if err != nil {
		return nil, nil, err
	}
	if len(key) != keys.Size {
		return nil, nil, fmt.Errorf("base key must be %d bytes, got %d", keys.Size, len(key))
	}
	return s[:], key, nil
}

// DeriveBaseKey runs Argon2id over the passphrase with a salt derived from
// label.
func (d *Deriver) DeriveBaseKey(label, passphrase string) (keys.BaseKey, error) {
	var bk keys.BaseKey

	_, key, err := d.rawBaseKey(label, passphrase)
	if err != nil {
		return bk, fmt.Errorf("unable to derive base key: %w", err)
	}

	copy(bk[:], key)
	return bk, nil
}

// EncodedBaseKey returns the base key in the PHC string format.
func (d *Deriver) EncodedBaseKey(label, passphrase string) (string, error) {
	salt, key, err := d.rawBaseKey(label, passphrase)
	if err != nil {
		return "", fmt.Errorf("unable to derive base key: %w", err)
	}
	return crypto.EncodeHash(d.config.params, salt, key), nil
}

// DeriveSubkey computes BLAKE2b(key=baseKey, context).
func (d *Deriver) DeriveSubkey(baseKey keys.BaseKey, context []byte) ([keys.Size]byte, error) {
	var out [keys.Size]byte

	sum, err := crypto.Keyed(baseKey[:], context)
	if err != nil {
		return out, err
	}

	copy(out[:], sum)
	return out, nil
}

func (d *Deriver) DeriveAuthKey(baseKey keys.BaseKey) (keys.AuthKey, error) {
	sum, err := d.DeriveSubkey(baseKey, d.config.authInfo)
	if err != nil {
		return keys.AuthKey{}, fmt.Errorf("unable to derive auth key: %w", err)
	}
	return keys.AuthKey(sum), nil
}

// DeriveCryptKey derives an encryption key from salt, or from the encryption
// info string when salt is nil.
func (d *Deriver) DeriveCryptKey(baseKey keys.BaseKey, salt []byte) (keys.CryptKey, error) {
	if salt == nil {
		salt = d.config.cryptInfo
	}

	sum, err := d.DeriveSubkey(baseKey, salt)
	if err != nil {
		return keys.CryptKey{}, fmt.Errorf("unable to derive crypt key: %w", err)
	}
	return keys.CryptKey(sum), nil
}

// DeriveAuthToken derives a token from the textual form of subject, not from
// its raw bytes.
func (d *Deriver) DeriveAuthToken(baseKey keys.BaseKey, subject fmt.Stringer) (keys.AuthToken, error) {
	if subject == nil {
		return keys.AuthToken{}, fmt.Errorf("unable to derive auth token: %w", errNoSubject)
	}

	sum, err := d.DeriveSubkey(baseKey, []byte(subject.String()))
	if err != nil {
		return keys.AuthToken{}, fmt.Errorf("unable to derive auth token: %w", err)
	}
	return keys.AuthToken(sum), nil
}
