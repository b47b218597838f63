package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"golang.org/x/crypto/argon2"
	"strings"
)

const algorithm = "argon2id"

// ErrMalformedHash is returned when an encoded hash does not have the
// $argon2id$v=..$m=..,t=..,p=..$salt$digest shape.
var ErrMalformedHash = errors.New("malformed encoded hash")

// EncodeHash formats an Argon2id result in the PHC string format used by the
// reference libraries. Salt and digest are unpadded base64.
func EncodeHash(p Params, salt, digest []byte) string {
	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm,
		argon2.Version,
		p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
}

// DecodeHash parses an encoded Argon2id hash. Anything but exactly six
// $-separated fields is rejected rather than truncated.
func DecodeHash(encoded string) (p Params, salt, digest []byte, err error) {
	fields := strings.Split(encoded, "$")
	if len(fields) != 6 || fields[0] != "" {
		return p, nil, nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrMalformedHash, len(fields))
	}

	if fields[1] != algorithm {
		return p, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedHash, fields[1])
	}

	var version int
	if _, err := fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: version: %s", ErrMalformedHash, err)
	}
	if fields[2] != fmt.Sprintf("v=%d", version) {
		return p, nil, nil, fmt.Errorf("%w: version %q", ErrMalformedHash, fields[2])
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	if _, err := fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: parameters: %s", ErrMalformedHash, err)
	}
	if fields[3] != fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Time, p.Threads) {
		return p, nil, nil, fmt.Errorf("%w: parameters %q", ErrMalformedHash, fields[3])
	}

	salt, err = decodeField(fields[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt: %s", ErrMalformedHash, err)
	}

	digest, err = decodeField(fields[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: digest: %s", ErrMalformedHash, err)
	}
	p.KeyLen = uint32(len(digest))

	return p, salt, digest, nil
}

// ExtractDigest returns the raw digest of an encoded Argon2id hash.
func ExtractDigest(encoded string) ([]byte, error) {
	_, _, digest, err := DecodeHash(encoded)
	if err != nil {
		return nil, err
	}
	return digest, nil
}

func decodeField(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("empty field")
	}
	if n := len(s) % 4; n != 0 {
		s += strings.Repeat("=", 4-n)
	}
	return base64.StdEncoding.DecodeString(s)
}
