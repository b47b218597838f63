package derive

const (
	DefaultLabel    = "user"
	DefaultPassword = "This is just right."

	DefaultAuthInfo  = "This key will be used for authentication."
	DefaultCryptInfo = "This key will be used for encryption."

	// ArgonBlakeVersion identifies the Argon2id/BLAKE2b deriver.
	ArgonBlakeVersion = "vt_W5BREZKAIEU4PZEWSZEHYFS53UNZD43ONKWOODRA2L2DZDIS5DYA"

	MinPassphraseLength = 16
)

// DefaultCryptSalt is the fixed input of the salted encryption key.
var DefaultCryptSalt = []byte{
	0x1f, 0x22, 0xb6, 0xd2, 0x13, 0xb7, 0xc8, 0x06,
	0x08, 0x29, 0x7d, 0x6b, 0xc4, 0x7a, 0x8f, 0x06,
	0x1e, 0x95, 0xd5, 0xe6, 0x59, 0x12, 0x36, 0x40,
	0x28, 0x71, 0xb3, 0xeb, 0x8d, 0x17, 0x6d, 0x4f,
}

// ReferenceUserToken is the user token the reference derivation chains its
// auth token through. See WithAuthTokenSubject.
const ReferenceUserToken = "ut_D4RLNUQTW7EAMCBJPVV4I6UPAYPJLVPGLEJDMQBIOGZ6XDIXNVHQ"
