package derive

import (
	"fmt"
	"github.com/docker/go-units"
	"github.com/hashicorp/go-hclog"
	"github.com/tigerwill90/keyderive/internal/crypto"
	"github.com/tigerwill90/keyderive/internal/enclave"
	"github.com/tigerwill90/keyderive/keys"
	"time"
)

// Result holds every value produced by a pipeline run. The base key only
// exists sealed; use BaseKey to reach it.
type Result struct {
	baseKey        *enclave.Enclave
	AuthKey        keys.AuthKey
	CryptKey       keys.CryptKey
	SaltedCryptKey keys.CryptKey
	AuthToken      keys.AuthToken
}

// BaseKey opens the sealed base key for the duration of fn. The copy handed
// to fn is wiped when fn returns.
func (r *Result) BaseKey(fn func(bk keys.BaseKey) error) error {
	return r.baseKey.With(func(key []byte) error {
		var bk keys.BaseKey
		copy(bk[:], key)
		defer bk.Wipe()
		return fn(bk)
	})
}

// Line is a labeled token.
type Line struct {
	Label string
	Token string
}

// Lines returns the tokens in output order.
func (r *Result) Lines() ([]Line, error) {
	var baseToken string
	if err := r.BaseKey(func(bk keys.BaseKey) error {
		baseToken = bk.String()
		return nil
	}); err != nil {
		return nil, err
	}

	return []Line{
		{Label: "Base Key", Token: baseToken},
		{Label: "AuthKey", Token: r.AuthKey.String()},
		{Label: "CryptKey", Token: r.CryptKey.String()},
		{Label: "Salted CryptKey", Token: r.SaltedCryptKey.String()},
		{Label: "AuthToken", Token: r.AuthToken.String()},
	}, nil
}

// Pipeline derives the base key from the configured label and password, then
// the four subkeys from the base key.
type Pipeline struct {
	deriver *Deriver
	logger  hclog.Logger
}

func NewPipeline(opts ...Option) *Pipeline {
	d := NewArgonBlake(opts...)
	return &Pipeline{
		deriver: d,
		logger:  d.config.logger,
	}
}

func (p *Pipeline) Run() (*Result, error) {
	c := p.deriver.config

	costs := []interface{}{
		"time", c.params.Time,
		"memory", units.BytesSize(float64(c.params.Memory) * 1024),
		"threads", c.params.Threads,
	}
	if c.params != crypto.DefaultParams {
		p.logger.Warn("argon2 parameters differ from the defaults, keys will not match reference tokens", costs...)
	} else {
		p.logger.Debug("deriving base key", costs...)
	}

	start := time.Now()
	bk, err := p.deriver.DeriveBaseKey(c.label, c.password)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("base key derived", "elapsed", time.Since(start))

	sealed, err := seal(&bk)
	if err != nil {
		return nil, err
	}

	res := &Result{baseKey: sealed}
	if err := res.BaseKey(func(base keys.BaseKey) error {
		return p.deriveSubkeys(base, res)
	}); err != nil {
		return nil, err
	}

	return res, nil
}

// seal moves bk into an enclave and leaves bk zeroed.
func seal(bk *keys.BaseKey) (*enclave.Enclave, error) {
	defer bk.Wipe()
	return enclave.Seal(bk[:])
}

func (p *Pipeline) deriveSubkeys(base keys.BaseKey, res *Result) error {
	c := p.deriver.config
	var err error

	if res.AuthKey, err = p.deriver.DeriveAuthKey(base); err != nil {
		return err
	}
	p.logger.Trace("auth key derived")

	if res.CryptKey, err = p.deriver.DeriveCryptKey(base, nil); err != nil {
		return err
	}
	p.logger.Trace("crypt key derived")

	if res.SaltedCryptKey, err = p.deriver.DeriveCryptKey(base, c.cryptSalt); err != nil {
		return err
	}
	p.logger.Trace("salted crypt key derived")

	subject := c.subject
	if subject == nil {
		subject = res.AuthKey
	}
	if res.AuthToken, err = p.deriver.DeriveAuthToken(base, subject); err != nil {
		return fmt.Errorf("chained through %s: %w", prefixOf(subject), err)
	}
	p.logger.Trace("auth token derived", "subject", prefixOf(subject))

	return nil
}

// prefixOf returns the role prefix of a token without exposing its payload.
func prefixOf(s fmt.Stringer) string {
	token := s.String()
	if len(token) < 2 {
		return "?"
	}
	return token[:2]
}
