package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, VariantFreeText, cfg.App.Variant)
	assert.Equal(t, 50, cfg.App.PageSize)
	assert.Equal(t, "notes", cfg.Storage.Files.NotesDir)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Variant: VariantStrict, Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, VariantStrict, cfg.App.Variant, "zero fields do not override")
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, 50, cfg.App.PageSize)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "unknown variant", cfg: StructuredConfig{App: App{Variant: "wiki"}}, wantErr: ErrInvalidAppConfigs},
		{name: "page size too large", cfg: StructuredConfig{App: App{PageSize: 5000}}, wantErr: ErrInvalidAppConfigs},
		{name: "unknown driver", cfg: StructuredConfig{Storage: Storage{DB: DB{Driver: "mysql"}}}, wantErr: ErrInvalidStorageConfigs},
		{name: "bad address", cfg: StructuredConfig{Server: Server{HTTPAddress: "no-port"}}, wantErr: ErrInvalidServerConfigs},
		{name: "user without hash", cfg: StructuredConfig{Auth: Auth{User: "me"}}, wantErr: ErrInvalidAuthConfigs},
		{name: "hash without user", cfg: StructuredConfig{Auth: Auth{PasswordHash: "h"}}, wantErr: ErrInvalidAuthConfigs},
		{name: "bad client url", cfg: StructuredConfig{Client: Client{ServerURL: "::not a url"}}, wantErr: ErrInvalidClientConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder().withDefaults()
			override := tt.cfg
			b.configs = append(b.configs, &override)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_EnvFlagsJSONPriority(t *testing.T) {
	clearEnvVars(t)
	path := writeFile(t, `{"app": {"page_size": 7}, "storage": {"files": {"notes_dir": "/from/json"}}}`)

	t.Setenv("APP_VARIANT", "strict")
	t.Setenv("APP_PAGE_SIZE", "30")
	t.Setenv("STORAGE_FILES_NOTES_DIR", "/from/env")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-f", "/from/flags", "-a", "localhost:9000"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, VariantStrict, cfg.App.Variant)
	assert.Equal(t, 7, cfg.App.PageSize)
	assert.Equal(t, "/from/json", cfg.Storage.Files.NotesDir)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_SetsErrorWhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_SetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-page-size", "many"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestGetClientConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("CLIENT_SERVER_URL", "http://notes.example:8080")
	t.Setenv("CLIENT_USER", "me")
	t.Setenv("CLIENT_PASSWORD", "pw")

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, &ClientConfig{
		ServerURL:      "http://notes.example:8080",
		RequestTimeout: 10 * time.Second,
		User:           "me",
		Password:       "pw",
	}, cfg)
}
