package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/directory"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSetup_WiresLoaderAgainstConfiguredEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Leanne Graham","email":"a@b.com","address":{"city":"Gwenborough"}}]`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	logPath := filepath.Join(dir, "logs", "roster.log")
	cfgPath := writeConfig(t, dir, `
endpoint = "`+srv.URL+`"
timeout = "2s"
log_file = "`+logPath+`"
log_level = "debug"
`)

	rt, err := setup(Options{ConfigPath: cfgPath, PrefsPath: filepath.Join(dir, "prefs.toml")})
	require.NoError(t, err)
	defer rt.closer.Close()

	assert.Equal(t, srv.URL, rt.cfg.Endpoint)
	assert.Equal(t, "Nightfox", rt.theme)

	action := rt.loader.Load(context.Background())
	succeeded, ok := action.(directory.LoadSucceeded)
	require.True(t, ok, "got %T", action)
	require.Len(t, succeeded.Users, 1)

	require.True(t, rt.store.Dispatch(action))
	assert.Equal(t, directory.PhaseLoaded, rt.store.Snapshot().Phase)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "users loaded")
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfgPath := writeConfig(t, dir, `
endpoint = "http://config.example/users"
log_level = "info"
`)

	rt, err := setup(Options{
		ConfigPath: cfgPath,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Endpoint:   "http://flag.example/users",
		LogFile:    filepath.Join(dir, "flag.log"),
		LogLevel:   "WARN",
		LogFormat:  "json",
	})
	require.NoError(t, err)
	defer rt.closer.Close()

	assert.Equal(t, "http://flag.example/users", rt.cfg.Endpoint)
	assert.Equal(t, filepath.Join(dir, "flag.log"), rt.cfg.LogFile)
	assert.Equal(t, "warn", rt.cfg.LogLevel)
	assert.Equal(t, "json", rt.cfg.LogFormat)
}

func TestSetup_LogLevelOffSkipsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	logPath := filepath.Join(dir, "never", "roster.log")

	rt, err := setup(Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		LogFile:    logPath,
		LogLevel:   "off",
	})
	require.NoError(t, err)
	require.NoError(t, rt.closer.Close())

	_, err = os.Stat(logPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSetup_InvalidEndpointFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	_, err := setup(Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		Endpoint:   "ftp://example.com/users",
		LogLevel:   "off",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init users client")
}

func TestSetup_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	_, err := setup(Options{ConfigPath: writeConfig(t, dir, `endpoint = [`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestSetup_BadPrefsFallsBackToDefaultTheme(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	prefsPath := filepath.Join(dir, "prefs.toml")
	require.NoError(t, os.WriteFile(prefsPath, []byte("theme = [\n"), 0o644))

	rt, err := setup(Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  prefsPath,
		LogLevel:   "off",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nightfox", rt.theme)
}
