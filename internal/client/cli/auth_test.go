package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaccinehub/internal/client/client"
	"github.com/dmitrijs2005/vaccinehub/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	regFields map[string]string
	regPass   []byte
	regErr    error

	loginEmail string
	loginPass  []byte
	loginErr   error

	hasDeadline bool
	user        *client.User
	closed      bool
}

func (f *fakeClient) Register(ctx context.Context, fields map[string]string, pw []byte) (*client.User, error) {
	_, f.hasDeadline = ctx.Deadline()
	f.regFields, f.regPass = fields, append([]byte(nil), pw...)
	if f.regErr != nil {
		return nil, f.regErr
	}
	return f.user, nil
}

func (f *fakeClient) Login(ctx context.Context, email string, pw []byte) (*client.User, error) {
	_, f.hasDeadline = ctx.Deadline()
	f.loginEmail, f.loginPass = email, append([]byte(nil), pw...)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

// stubInputs answers text prompts from answers in order and returns password.
func stubInputs(t *testing.T, answers []string, password []byte) *[]byte {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		v := answers[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return &password
}

func newTestApp(f *fakeClient) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := &config.Config{ServerEndpointAddr: "127.0.0.1:1", RequestTimeout: time.Second}
	return &App{config: cfg, client: f, out: &out}, &out
}

var jane = &client.User{FirstName: "Jane", LastName: "Doe", Email: "jane@ex.com", Location: "NYC", Date: "2023-01-01"}

func TestRegister_Success(t *testing.T) {
	f := &fakeClient{user: jane}
	a, out := newTestApp(f)
	pw := stubInputs(t, []string{"Jane", "Doe", "Jane@Ex.com", "NYC", ""}, []byte("secret1"))

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "Jane@Ex.com",
		"location":  "NYC",
		"date":      "",
	}, f.regFields)
	assert.Equal(t, []byte("secret1"), f.regPass)
	assert.Equal(t, make([]byte, 7), *pw)
	assert.True(t, f.hasDeadline)
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Registration successful")
	assert.Contains(t, out.String(), "jane@ex.com")
}

func TestRegister_ServerError(t *testing.T) {
	f := &fakeClient{regErr: client.ErrAlreadyExists}
	a, out := newTestApp(f)
	stubInputs(t, []string{"Jane", "Doe", "jane@ex.com", "NYC", "2023-01-01"}, []byte("secret1"))

	err := a.Register(context.Background())
	assert.ErrorIs(t, err, client.ErrAlreadyExists)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Registration unsuccessful")
}

func TestRegister_InputError(t *testing.T) {
	f := &fakeClient{}
	a, _ := newTestApp(f)
	stubInputs(t, []string{"Jane"}, []byte("secret1"))

	err := a.Register(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Nil(t, f.regFields)
}

func TestRegister_PasswordError(t *testing.T) {
	f := &fakeClient{}
	a, _ := newTestApp(f)
	stubInputs(t, []string{"Jane", "Doe", "jane@ex.com", "NYC", ""}, nil)
	getPassword = func(_ io.Writer) ([]byte, error) { return nil, errors.New("no tty") }

	assert.EqualError(t, a.Register(context.Background()), "no tty")
	assert.Nil(t, f.regFields)
}

func TestLogin_Success(t *testing.T) {
	f := &fakeClient{user: jane}
	a, out := newTestApp(f)
	stubInputs(t, []string{"jane@ex.com"}, []byte("secret1"))

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "jane@ex.com", f.loginEmail)
	assert.Equal(t, []byte("secret1"), f.loginPass)
	assert.Equal(t, "(jane@ex.com) ", a.getStatus())
	assert.Contains(t, out.String(), "Login successful")
}

func TestLogin_Unauthorized(t *testing.T) {
	f := &fakeClient{loginErr: client.ErrUnauthorized}
	a, out := newTestApp(f)
	stubInputs(t, []string{"jane@ex.com"}, []byte("wrong"))

	assert.ErrorIs(t, a.Login(context.Background()), client.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Login unsuccessful: unauthorized")
}

func TestLogin_Unavailable(t *testing.T) {
	f := &fakeClient{loginErr: client.ErrUnavailable}
	a, out := newTestApp(f)
	stubInputs(t, []string{"jane@ex.com"}, []byte("secret1"))

	assert.ErrorIs(t, a.Login(context.Background()), client.ErrUnavailable)
	assert.Contains(t, out.String(), "server unavailable at 127.0.0.1:1")
}

func TestWhoAmIAndLogout(t *testing.T) {
	a, out := newTestApp(&fakeClient{})

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not logged in")

	a.user = jane
	out.Reset()
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "NYC")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
}

func TestRequestContext_NoTimeout(t *testing.T) {
	a := &App{}
	ctx, cancel := a.requestContext(context.Background())
	defer cancel()
	_, ok := ctx.Deadline()
	assert.False(t, ok)
}
