package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeObj struct {
	ID   string `mapstructure:"id"`
	Role string `mapstructure:"role"`
}

func TestTokenEngine(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(time.Minute, fakeObj{ID: "user1", Role: "admin"})
	require.NoError(t, err)

	var got fakeObj
	require.NoError(t, engine.Verify(token, &got))
	require.Equal(t, fakeObj{ID: "user1", Role: "admin"}, got)
}

func TestTokenEngineExpired(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(-time.Minute, fakeObj{ID: "user1"})
	require.NoError(t, err)

	var got fakeObj
	require.Error(t, engine.Verify(token, &got))
}

func TestTokenEngineWrongSecret(t *testing.T) {
	token, err := NewTokenEngine("secret").Generate(time.Minute, fakeObj{ID: "user1"})
	require.NoError(t, err)

	var got fakeObj
	require.Error(t, NewTokenEngine("another-secret").Verify(token, &got))
}
