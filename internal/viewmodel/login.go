package viewmodel

import (
	"context"
	"strings"
)

const minPasswordLength = 4

type LoginAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginForm backs the sign-in screen.
type LoginForm struct {
	Username string
	Password string
}

func (f LoginForm) CanSubmit() bool {
	return strings.TrimSpace(f.Username) != "" && len(f.Password) >= minPasswordLength
}

// Submit signs in and returns the issued token.
func (f LoginForm) Submit(ctx context.Context, api LoginAPI) (string, error) {
	if !f.CanSubmit() {
		return "", &ValidationError{
			Fields:  []string{"username", "password"},
			Message: "Enter a username and a password of at least 4 characters.",
		}
	}
	token, err := api.Login(ctx, strings.TrimSpace(f.Username), f.Password)
	if err != nil {
		return "", &LoginError{Message: message(err, "Login failed.")}
	}
	return token, nil
}

type LoginError struct {
	Message string
}

func (e *LoginError) Error() string {
	return e.Message
}
