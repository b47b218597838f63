package crypto

import (
	"errors"
	"fmt"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
)

const (
	SaltSize = 32
	KeySize  = 32
)

// Params are the Argon2id cost parameters. Memory is in KiB.
type Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// DefaultParams matches the defaults of the reference argon2-cffi
// PasswordHasher. Changing any field changes every derived key.
var DefaultParams = Params{
	Time:    3,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  KeySize,
}

var ErrInvalidParams = errors.New("invalid argon2 parameters")

func (p Params) validate() error {
	switch {
	case p.Time < 1:
		return fmt.Errorf("%w: time must be at least 1", ErrInvalidParams)
	case p.Threads < 1:
		return fmt.Errorf("%w: threads must be at least 1", ErrInvalidParams)
	case p.Memory < 8*uint32(p.Threads):
		return fmt.Errorf("%w: memory must be at least %d KiB", ErrInvalidParams, 8*uint32(p.Threads))
	case p.KeyLen < 4:
		return fmt.Errorf("%w: key length must be at least 4", ErrInvalidParams)
	}
	return nil
}

// Salt hashes label into a fixed size salt.
func Salt(label []byte) [SaltSize]byte {
	return blake2b.Sum256(label)
}

// DeriveKey runs Argon2id and returns the raw digest. The salt is always
// supplied by the caller so the output is reproducible.
func DeriveKey(password, salt []byte, p Params) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(salt) == 0 {
		return nil, errors.New("salt is required")
	}
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen), nil
}

// Keyed returns the 32 bytes BLAKE2b MAC of msg under key.
func Keyed(key, msg []byte) ([]byte, error) {
	h, err := blake2b.New(KeySize, key)
	if err != nil {
		return nil, fmt.Errorf("unable to create keyed hash: %w", err)
	}
	if _, err := h.Write(msg); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
