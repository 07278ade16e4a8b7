package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeFile(t, `{
		"app": {"variant": "strict", "page_size": 10, "version": "2.0.0"},
		"storage": {
			"db": {"driver": "pgx", "dsn": "postgres://localhost/notes"},
			"files": {"notes_dir": "/data/notes"}
		},
		"server": {"http_address": "0.0.0.0:5000", "request_timeout": "45s"},
		"auth": {"user": "me", "password_hash": "hash"},
		"client": {"server_url": "http://localhost:5000", "request_timeout": 1000000000}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, App{Variant: "strict", PageSize: 10, Version: "2.0.0"}, cfg.App)
	assert.Equal(t, DB{Driver: "pgx", DSN: "postgres://localhost/notes"}, cfg.Storage.DB)
	assert.Equal(t, "/data/notes", cfg.Storage.Files.NotesDir)
	assert.Equal(t, Server{HTTPAddress: "0.0.0.0:5000", RequestTimeout: 45 * time.Second}, cfg.Server)
	assert.Equal(t, Auth{User: "me", PasswordHash: "hash"}, cfg.Auth)
	assert.Equal(t, "http://localhost:5000", cfg.Client.ServerURL)
	assert.Equal(t, time.Second, cfg.Client.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath, "a JSON file cannot point to another one")
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		message string
	}{
		{
			name:    "file not found",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			message: "error reading a json file",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeFile(t, `{"app": `) },
			message: "error decoding json configs",
		},
		{
			name:    "invalid duration",
			path:    func(t *testing.T) string { return writeFile(t, `{"server": {"request_timeout": "forever"}}`) },
			message: "error decoding json configs",
		},
		{
			name:    "duration of wrong type",
			path:    func(t *testing.T) string { return writeFile(t, `{"server": {"request_timeout": true}}`) },
			message: "error decoding json configs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseJSON(tt.path(t))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeFile(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))

	var d Duration
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, Duration(90*time.Second), d)
}
