// Package keys defines the derived keys and tokens. Every value is Size raw
// bytes and has a textual form prefix_base32, where the prefix names its role.
package keys

const (
	BaseKeyPrefix      = "bk"
	AuthKeyPrefix      = "ak"
	CryptKeyPrefix     = "ck"
	AuthTokenPrefix    = "at"
	UserTokenPrefix    = "ut"
	VersionTokenPrefix = "vt"
)

// BaseKey is the secret every other key is derived from.
type BaseKey [Size]byte

func (k BaseKey) String() string {
	return Encode(BaseKeyPrefix, k[:])
}

// Wipe zeroes the key in place.
func (k *BaseKey) Wipe() {
	for i := range k {
		k[i] = 0
	}
}

func ParseBaseKey(s string) (BaseKey, error) {
	b, err := decodeSized(BaseKeyPrefix, s)
	return BaseKey(b), err
}

// AuthKey authenticates a user.
type AuthKey [Size]byte

func (k AuthKey) String() string {
	return Encode(AuthKeyPrefix, k[:])
}

func ParseAuthKey(s string) (AuthKey, error) {
	b, err := decodeSized(AuthKeyPrefix, s)
	return AuthKey(b), err
}

// CryptKey is an encryption key. Keys derived from different salts share the
// ck prefix, so the token alone does not tell which salt produced it.
type CryptKey [Size]byte

func (k CryptKey) String() string {
	return Encode(CryptKeyPrefix, k[:])
}

func ParseCryptKey(s string) (CryptKey, error) {
	b, err := decodeSized(CryptKeyPrefix, s)
	return CryptKey(b), err
}

// AuthToken is derived from another token's textual form.
type AuthToken [Size]byte

func (t AuthToken) String() string {
	return Encode(AuthTokenPrefix, t[:])
}

func ParseAuthToken(s string) (AuthToken, error) {
	b, err := decodeSized(AuthTokenPrefix, s)
	return AuthToken(b), err
}

// UserToken identifies a user.
type UserToken [Size]byte

func (t UserToken) String() string {
	return Encode(UserTokenPrefix, t[:])
}

func ParseUserToken(s string) (UserToken, error) {
	b, err := decodeSized(UserTokenPrefix, s)
	return UserToken(b), err
}

// VersionToken identifies a derivation algorithm.
type VersionToken [Size]byte

func (t VersionToken) String() string {
	return Encode(VersionTokenPrefix, t[:])
}

func ParseVersionToken(s string) (VersionToken, error) {
	b, err := decodeSized(VersionTokenPrefix, s)
	return VersionToken(b), err
}
