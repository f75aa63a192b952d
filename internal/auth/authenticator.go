package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}
