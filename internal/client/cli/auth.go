package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaccinehub/internal/client/client"
	"github.com/dmitrijs2005/vaccinehub/internal/common"
)

// Indirections over the interactive input helpers, swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var profilePrompts = []struct {
	key    string
	prompt string
}{
	{"firstName", "-Enter first name"},
	{"lastName", "-Enter last name"},
	{"email", "-Enter email"},
	{"location", "-Enter vaccination location"},
	{"date", "-Enter vaccination date (leave empty for today)"},
}

// Register prompts for the profile fields and a password and creates the
// account. On success the returned profile becomes the current user.
func (a *App) Register(ctx context.Context) error {
	fields := make(map[string]string, len(profilePrompts))
	for _, p := range profilePrompts {
		v, err := getSimpleText(a.reader, p.prompt, a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
		fields[p.key] = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.client.Register(ctx, fields, password)
	if err != nil {
		a.reportError("Registration", err)
		return err
	}

	a.user = u
	fmt.Fprintln(a.out, "Registration successful")
	a.printUser()
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "-Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.reportError("Login", err)
		return err
	}

	a.user = u
	fmt.Fprintln(a.out, "Login successful")
	a.printUser()
	return nil
}

// WhoAmI prints the profile returned by the last successful register or login.
func (a *App) WhoAmI(context.Context) error {
	if a.user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	a.printUser()
	return nil
}

// Logout forgets the current profile locally.
func (a *App) Logout(context.Context) error {
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) reportError(op string, err error) {
	if errors.Is(err, client.ErrUnavailable) {
		fmt.Fprintf(a.out, "%s unsuccessful: server unavailable at %s\n", op, a.serverAddr())
		return
	}
	fmt.Fprintf(a.out, "%s unsuccessful: %v\n", op, err)
}

func (a *App) serverAddr() string {
	if a.config == nil {
		return "?"
	}
	return a.config.ServerEndpointAddr
}

func (a *App) printUser() {
	u := a.user
	fmt.Fprintf(a.out, "  name:     %s %s\n", u.FirstName, u.LastName)
	fmt.Fprintf(a.out, "  email:    %s\n", u.Email)
	fmt.Fprintf(a.out, "  location: %s\n", u.Location)
	fmt.Fprintf(a.out, "  date:     %s\n", u.Date)
}
