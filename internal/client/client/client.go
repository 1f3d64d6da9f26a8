package client

import "context"

// User is the public profile returned by the server.
type User struct {
	FirstName string
	LastName  string
	Email     string
	Location  string
	Date      string
}

type Client interface {
	Close() error
	// Register sends fields plus password as one registration request.
	Register(ctx context.Context, fields map[string]string, password []byte) (*User, error)
	Login(ctx context.Context, email string, password []byte) (*User, error)
}
