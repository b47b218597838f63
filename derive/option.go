package derive

import (
	"fmt"
	"github.com/hashicorp/go-hclog"
	"github.com/tigerwill90/keyderive/internal/crypto"
)

type config struct {
	label     string
	password  string
	params    crypto.Params
	authInfo  []byte
	cryptInfo []byte
	cryptSalt []byte
	subject   fmt.Stringer
	logger    hclog.Logger
}

func defaultConfig() *config {
	return &config{
		label:     DefaultLabel,
		password:  DefaultPassword,
		params:    crypto.DefaultParams,
		authInfo:  []byte(DefaultAuthInfo),
		cryptInfo: []byte(DefaultCryptInfo),
		cryptSalt: DefaultCryptSalt,
		logger:    hclog.NewNullLogger(),
	}
}

type Option interface {
	apply(*config)
}

type implOption struct {
	f func(*config)
}

func (o *implOption) apply(c *config) {
	o.f(c)
}

func newImplOption(f func(*config)) *implOption {
	return &implOption{f: f}
}

// WithLabel sets the label hashed into the argon2 salt.
func WithLabel(label string) Option {
	return newImplOption(func(c *config) {
		c.label = label
	})
}

func WithPassword(password string) Option {
	return newImplOption(func(c *config) {
		c.password = password
	})
}

// WithParams overrides the argon2 cost parameters. Any change produces a
// different base key.
func WithParams(p crypto.Params) Option {
	return newImplOption(func(c *config) {
		c.params = p
	})
}

// WithAuthInfo sets the auth key context. An empty context is a valid input
// and is used as is.
func WithAuthInfo(info []byte) Option {
	return newImplOption(func(c *config) {
		c.authInfo = info
	})
}

// WithCryptInfo sets the crypt key context. An empty context is used as is.
func WithCryptInfo(info []byte) Option {
	return newImplOption(func(c *config) {
		c.cryptInfo = info
	})
}

// WithCryptSalt sets the input of the salted encryption key. A nil or empty
// salt derives from the empty message, not from the crypt info.
func WithCryptSalt(salt []byte) Option {
	return newImplOption(func(c *config) {
		if salt == nil {
			salt = []byte{}
		}
		c.cryptSalt = salt
	})
}

// WithAuthTokenSubject sets the token whose string form the auth token is
// derived from. By default the pipeline chains through its own auth key token.
func WithAuthTokenSubject(subject fmt.Stringer) Option {
	return newImplOption(func(c *config) {
		c.subject = subject
	})
}

func WithLogger(logger hclog.Logger) Option {
	return newImplOption(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}
