package crypto

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
	"strings"
	"testing"
)

// cheap keeps the tests fast; the tests only care about determinism and shape.
var cheap = Params{Time: 1, Memory: 64, Threads: 1, KeyLen: KeySize}

func TestSalt(t *testing.T) {
	salt := Salt([]byte("user"))
	require.Equal(t, blake2b.Sum256([]byte("user")), salt)
	require.Len(t, salt, SaltSize)
	require.NotEqual(t, salt, Salt([]byte("other")))
}

func TestDeriveKey(t *testing.T) {
	salt := Salt([]byte("user"))

	k1, err := DeriveKey([]byte("This is just right."), salt[:], cheap)
	require.NoError(t, err)
	require.Len(t, k1, KeySize)

	k2, err := DeriveKey([]byte("This is just right."), salt[:], cheap)
	require.NoError(t, err)
	require.Equal(t, k1, k2)

	k3, err := DeriveKey([]byte("This is just wrong."), salt[:], cheap)
	require.NoError(t, err)
	require.NotEqual(t, k1, k3)

	other := Salt([]byte("someone"))
	k4, err := DeriveKey([]byte("This is just right."), other[:], cheap)
	require.NoError(t, err)
	require.NotEqual(t, k1, k4)
}

func TestDeriveKeyInvalid(t *testing.T) {
	salt := Salt([]byte("user"))

	tcs := []struct {
		name   string
		params Params
	}{
		{name: "zero time", params: Params{Time: 0, Memory: 64, Threads: 1, KeyLen: 32}},
		{name: "zero threads", params: Params{Time: 1, Memory: 64, Threads: 0, KeyLen: 32}},
		{name: "low memory", params: Params{Time: 1, Memory: 8, Threads: 4, KeyLen: 32}},
		{name: "short key", params: Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 2}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DeriveKey([]byte("password"), salt[:], tc.params)
			require.ErrorIs(t, err, ErrInvalidParams)
		})
	}

	_, err := DeriveKey([]byte("password"), nil, cheap)
	require.Error(t, err)
}

func TestKeyed(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)

	a, err := Keyed(key, []byte("This key will be used for authentication."))
	require.NoError(t, err)
	require.Len(t, a, KeySize)

	h, err := blake2b.New256(key)
	require.NoError(t, err)
	h.Write([]byte("This key will be used for authentication."))
	require.Equal(t, h.Sum(nil), a)

	b, err := Keyed(key, []byte("This key will be used for encryption."))
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	c, err := Keyed(bytes.Repeat([]byte{0x43}, KeySize), []byte("This key will be used for authentication."))
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	_, err = Keyed(make([]byte, blake2b.Size+1), []byte("too long a key"))
	require.Error(t, err)
}

func TestEncodeHash(t *testing.T) {
	salt := Salt([]byte("user"))
	digest, err := DeriveKey([]byte("This is just right."), salt[:], cheap)
	require.NoError(t, err)

	encoded := EncodeHash(DefaultParams, salt[:], digest)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=3,p=4$"), encoded)
	require.NotContains(t, encoded, "=$")
	require.Len(t, strings.Split(encoded, "$"), 6)

	p, gotSalt, gotDigest, err := DecodeHash(encoded)
	require.NoError(t, err)
	require.Equal(t, DefaultParams, p)
	require.Equal(t, salt[:], gotSalt)
	require.Equal(t, digest, gotDigest)

	extracted, err := ExtractDigest(encoded)
	require.NoError(t, err)
	require.Equal(t, digest, extracted)
}

func TestDecodeHashMalformed(t *testing.T) {
	salt := Salt([]byte("user"))
	valid := EncodeHash(DefaultParams, salt[:], bytes.Repeat([]byte{1}, KeySize))
	fields := strings.Split(valid, "$")

	tcs := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "missing leading delimiter", encoded: strings.TrimPrefix(valid, "$")},
		{name: "extra field", encoded: valid + "$AAAA"},
		{name: "missing field", encoded: strings.Join(append(fields[:3:3], fields[4:]...), "$")},
		{name: "wrong algorithm", encoded: strings.Replace(valid, "argon2id", "argon2i", 1)},
		{name: "wrong version", encoded: strings.Replace(valid, "v=19", "v=16", 1)},
		{name: "bad version", encoded: strings.Replace(valid, "v=19", "version", 1)},
		{name: "bad parameters", encoded: strings.Replace(valid, "m=65536", "m=lots", 1)},
		{name: "trailing version junk", encoded: strings.Replace(valid, "v=19", "v=19x", 1)},
		{name: "trailing parameter junk", encoded: strings.Replace(valid, "p=4", "p=4junk", 1)},
		{name: "padded parameter", encoded: strings.Replace(valid, "t=3", "t=03", 1)},
		{name: "bad salt", encoded: strings.Join([]string{"", fields[1], fields[2], fields[3], "!!!!", fields[5]}, "$")},
		{name: "empty digest", encoded: strings.Join([]string{"", fields[1], fields[2], fields[3], fields[4], ""}, "$")},
		{name: "bad digest", encoded: strings.Join([]string{"", fields[1], fields[2], fields[3], fields[4], "A"}, "$")},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractDigest(tc.encoded)
			require.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}
