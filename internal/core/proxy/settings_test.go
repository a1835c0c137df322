package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Disabled(t *testing.T) {
	s := Settings{Hostname: "proxy.local", Port: 3128}

	assert.False(t, s.HasProxy())
	assert.Empty(t, s.HostPort())
	assert.Nil(t, s.URL())
}

func TestSettings_WithCredentials(t *testing.T) {
	s := Settings{Enabled: true, Hostname: "proxy.local", Port: 3128, Username: "user", Password: "p@ss"}

	require.True(t, s.HasProxy())
	assert.Equal(t, "http://proxy.local:3128", s.HostPort())

	u := s.URL()
	require.NotNil(t, u)
	assert.Equal(t, "proxy.local:3128", u.Host)
	assert.Equal(t, "user", u.User.Username())
	password, ok := u.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss", password)
}

func TestSettings_WithoutCredentials(t *testing.T) {
	s := Settings{Enabled: true, Hostname: "proxy.local", Port: 8080, Username: "user"}

	u := s.URL()
	require.NotNil(t, u)
	assert.Nil(t, u.User)
	assert.Equal(t, "http://proxy.local:8080", u.String())
}
