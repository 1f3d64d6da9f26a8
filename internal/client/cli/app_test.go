package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/vaccinehub/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	a, err := NewApp(&config.Config{ServerEndpointAddr: "127.0.0.1:50051"})
	require.NoError(t, err)
	assert.NotNil(t, a.client)
	assert.False(t, a.isLoggedIn())
	require.NoError(t, a.client.Close())
}

func TestApp_RunClosesClient(t *testing.T) {
	f := &fakeClient{}
	var out bytes.Buffer
	a := &App{client: f, reader: bufio.NewReader(strings.NewReader("help\nexit\n")), out: &out}

	a.Run(context.Background())

	assert.True(t, f.closed)
	assert.Contains(t, out.String(), "Welcome to VaccineHub CLI")
	assert.Contains(t, out.String(), "Bye!")
}
