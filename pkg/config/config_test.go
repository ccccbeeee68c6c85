package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"LEAGUE_API_URL", "REQUEST_TIMEOUT", "PORT", "CORS_HOSTS", "SESSION_STORE"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "http://localhost:8080/api/v1", cfg.LeagueAPIURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "8090", cfg.Port)
	assert.Empty(t, cfg.CORSHosts)
	assert.Equal(t, StoreFile, cfg.Session.Store)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LEAGUE_API_URL", "https://league.example/api/v1")
	t.Setenv("REQUEST_TIMEOUT", "12")
	t.Setenv("CORS_HOSTS", "http://a.test, http://b.test,")
	t.Setenv("SESSION_STORE", StoreMemory)

	cfg := FromEnv()
	assert.Equal(t, "https://league.example/api/v1", cfg.LeagueAPIURL)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSHosts)
	assert.Equal(t, StoreMemory, cfg.Session.Store)
}

func TestApplyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "league_api_url: http://yaml.test/api/v1\nsession:\n  store: firestore\n  profile: desk-2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := FromEnv()
	cfg.Port = "9999"
	require.NoError(t, cfg.Apply(path))

	assert.Equal(t, "http://yaml.test/api/v1", cfg.LeagueAPIURL)
	assert.Equal(t, StoreFirestore, cfg.Session.Store)
	assert.Equal(t, "desk-2", cfg.Session.Profile)
	assert.Equal(t, "9999", cfg.Port, "Keys missing from the file are kept")
}

func TestValidate(t *testing.T) {
	cfg := FromEnv()
	cfg.Session.Store = "redis"
	assert.Error(t, cfg.Validate())

	cfg.Session.Store = StoreFirestore
	cfg.Firebase.ProjectID = ""
	assert.Error(t, cfg.Validate())

	cfg.Firebase.ProjectID = "league"
	assert.NoError(t, cfg.Validate())
}
