// Package cli provides the interactive VaccineHub command-line client.
//
// The REPL accepts register, login, whoami, help and exit. Register prompts for
// every profile field; the password is always read without echo and wiped
// after the request is sent.
package cli
