package auth

// Authenticator gates the admin dashboard. The boundary is swappable,
// but the shipped implementation is a shared secret compared with an
// exact string match: a demo-grade gate, not access control. There is
// no lockout, no rate limiting and no session expiry on purpose.
type Authenticator interface {
	Authenticate(password string) bool
}

// SharedSecret authenticates against a single configured password.
type SharedSecret struct {
	Password string
}

func NewSharedSecret(password string) *SharedSecret {
	return &SharedSecret{Password: password}
}

func (s *SharedSecret) Authenticate(password string) bool {
	return password == s.Password
}
