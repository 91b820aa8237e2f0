package auth

import "github.com/ufvjm/estagiopro/internal/app/models"

// Authenticator verifies a supplied password against the credentials stored
// on an orientador row. Implementations are tried in order by Chain until
// one succeeds, which keeps the managed and legacy paths independently
// testable.
type Authenticator interface {
	Name() string
	Verify(o *models.Orientador, password string) bool
}

// BcryptAuthenticator verifies passwords against the senha_hash column
// (managed provisioning path).
type BcryptAuthenticator struct{}

func (BcryptAuthenticator) Name() string { return "bcrypt" }

func (BcryptAuthenticator) Verify(o *models.Orientador, password string) bool {
	if o.SenhaHash == "" {
		return false
	}
	return CheckPassword(o.SenhaHash, password)
}

// LegacyAuthenticator verifies passwords against the senha column, which
// holds unsalted hex SHA-256 digests from the legacy system.
type LegacyAuthenticator struct{}

func (LegacyAuthenticator) Name() string { return "legacy-sha256" }

func (LegacyAuthenticator) Verify(o *models.Orientador, password string) bool {
	return CheckLegacyPassword(o.Senha, password)
}

// Chain tries each authenticator in order and returns the name of the first
// that accepts the credentials, or false when none do.
type Chain struct {
	authenticators []Authenticator
}

// NewChain builds a chain in the given order.
func NewChain(authenticators ...Authenticator) *Chain {
	return &Chain{authenticators: authenticators}
}

// DefaultChain is the production order: managed bcrypt first, then the
// legacy digest fallback.
func DefaultChain() *Chain {
	return NewChain(BcryptAuthenticator{}, LegacyAuthenticator{})
}

// Verify runs the chain against the stored credentials.
func (c *Chain) Verify(o *models.Orientador, password string) (string, bool) {
	if o == nil || password == "" {
		return "", false
	}
	for _, a := range c.authenticators {
		if a.Verify(o, password) {
			return a.Name(), true
		}
	}
	return "", false
}
