package token

// StaticToken is a TokenProvider wrapper for a fixed bearer token, such
// as an application-only credential issued once and pasted into
// configuration.
type StaticToken struct {
	token string
}

func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: token}
}

func (t *StaticToken) Token() string {
	return t.token
}
