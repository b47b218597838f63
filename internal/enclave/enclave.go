// Package enclave keeps key material sealed in guarded memory while it is not
// being used.
package enclave

import (
	"errors"
	"fmt"
	"github.com/awnumar/memguard"
)

var ErrEmpty = errors.New("enclave is empty")

type Enclave struct {
	sealed *memguard.Enclave
}

// Seal moves key into an encrypted enclave. The key slice is wiped.
func Seal(key []byte) (*Enclave, error) {
	if len(key) == 0 {
		return nil, ErrEmpty
	}
	return &Enclave{sealed: memguard.NewBufferFromBytes(key).Seal()}, nil
}

// With decrypts the enclave into a locked buffer and calls fn with its
// content. The buffer is destroyed once fn returns, so fn must not retain the
// slice.
func (e *Enclave) With(fn func(key []byte) error) error {
	if e == nil || e.sealed == nil {
		return ErrEmpty
	}

	buf, err := e.sealed.Open()
	if err != nil {
		return fmt.Errorf("unable to open enclave: %w", err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

// Size returns the length of the sealed key.
func (e *Enclave) Size() int {
	if e == nil || e.sealed == nil {
		return 0
	}
	return e.sealed.Size()
}
