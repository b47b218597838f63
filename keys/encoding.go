package keys

import (
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the length in bytes of every key and token.
	Size = 32

	separator = "_"
	padding   = "="
)

var (
	ErrInvalidPrefix   = errors.New("invalid prefix")
	ErrInvalidEncoding = errors.New("invalid base32 payload")
	ErrInvalidLength   = errors.New("invalid length")
)

// Encode returns prefix_base32(b), using the standard base32 alphabet with the
// trailing padding stripped.
func Encode(prefix string, b []byte) string {
	payload := strings.TrimRight(base32.StdEncoding.EncodeToString(b), padding)
	return prefix + separator + payload
}

// Decode reverses Encode. The padding is restored before the payload is
// decoded, so any payload that Encode can produce is accepted.
func Decode(prefix, token string) ([]byte, error) {
	if !strings.HasPrefix(token, prefix+separator) {
		return nil, fmt.Errorf("unable to decode %q token: %w", prefix, ErrInvalidPrefix)
	}

	payload := strings.TrimPrefix(token, prefix+separator)
	if payload == "" || strings.Contains(payload, padding) {
		return nil, fmt.Errorf("unable to decode %q token: %w", prefix, ErrInvalidEncoding)
	}

	padded := payload
	if n := len(padded) % 8; n != 0 {
		padded += strings.Repeat(padding, 8-n)
	}

	data, err := base32.StdEncoding.DecodeString(padded)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %q token: %w: %s", prefix, ErrInvalidEncoding, err)
	}

	// The decoder ignores unused trailing bits, so only the canonical form is
	// accepted. Each key then has exactly one token.
	if strings.TrimRight(base32.StdEncoding.EncodeToString(data), padding) != payload {
		return nil, fmt.Errorf("unable to decode %q token: %w: non canonical payload", prefix, ErrInvalidEncoding)
	}
	return data, nil
}

func decodeSized(prefix, token string) ([Size]byte, error) {
	var out [Size]byte
	data, err := Decode(prefix, token)
	if err != nil {
		return out, err
	}
	if len(data) != Size {
		return out, fmt.Errorf("unable to decode %q token: %w: got %d bytes", prefix, ErrInvalidLength, len(data))
	}
	copy(out[:], data)
	return out, nil
}
