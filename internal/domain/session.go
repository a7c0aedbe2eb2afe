package domain

// Session is the only client-persisted state: the bearer token pair
// handed out by the login endpoint.
type Session struct {
	AccessToken string
	TokenType   string
}

func (s Session) IsZero() bool {
	return s.AccessToken == ""
}

// AuthorizationHeader renders the value for the Authorization header,
// defaulting the scheme to "Bearer" when the server omitted it.
func (s Session) AuthorizationHeader() string {
	tokenType := s.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return tokenType + " " + s.AccessToken
}
