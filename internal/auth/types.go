package auth

// Config carries the token-verification settings. With Enabled false
// the service runs open and no authenticator is built.
type Config struct {
	Enabled  bool
	Issuer   string
	Audience string
	JWKSURL  string
}

type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	Claims   map[string]any
}
