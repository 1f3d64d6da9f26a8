// Package client talks to the VaccineHub auth server over gRPC and turns
// gRPC status codes into the sentinel errors declared in errors.go.
package client
