package app

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/config"
)

func TestOpenDiagnosticLog_CreatesDirAndRedirectsLogger(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	})

	path := filepath.Join(t.TempDir(), "nested", "marquee.log")
	f, err := openDiagnosticLog(path)
	require.NoError(t, err)

	log.Printf("search %q failed: %v", "Matrix", "boom")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "marquee "), "log line should carry the prefix: %q", data)
	assert.Contains(t, string(data), `search "Matrix" failed: boom`)
}

func TestNewClient_UsesConfig(t *testing.T) {
	c, err := newClient(config.Config{
		APIURL:  "http://127.0.0.1:9/",
		APIHost: "stub.local",
		APIKey:  "k",
		Timeout: time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "stub.local", c.Host())
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	_, err := newClient(config.Config{APIURL: "http://"})
	assert.Error(t, err)
}
