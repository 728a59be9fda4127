package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genkey/internal/app"
	"genkey/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)

	cfg, err = app.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)

	cfg, err = app.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
algorithm: ed25519
format: openssh
comment: deploy@ci
file: /tmp/id_ed25519
public: true
`)
	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, domain.AlgorithmEd25519, cfg.Algorithm)
	assert.Equal(t, domain.FormatOpenSSH, cfg.Format)
	assert.Equal(t, "deploy@ci", cfg.Comment)
	assert.Equal(t, "/tmp/id_ed25519", cfg.File)
	assert.True(t, cfg.Public)
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := app.LoadConfig(writeConfig(t, "comment: x\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.AlgorithmRSA, cfg.Algorithm)
	assert.Equal(t, domain.FormatPKCS8, cfg.Format)
	assert.Equal(t, "x", cfg.Comment)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	_, err := app.LoadConfig(writeConfig(t, "bits: 4096\n"))
	assert.Error(t, err)
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path, err := app.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "genkey", "config.yaml"), path)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     app.Config
		wantErr error
	}{
		{"defaults", app.DefaultConfig(), nil},
		{"aliases", app.Config{Algorithm: "ED25519", Format: "ssh"}, nil},
		{"bad algorithm", app.Config{Algorithm: "dsa", Format: "pkcs8"}, domain.ErrUnknownAlgorithm},
		{"bad format", app.Config{Algorithm: "rsa", Format: "pkcs12"}, domain.ErrUnknownFormat},
		{"seed with rsa", app.Config{Algorithm: "rsa", Format: "pkcs8", Seed: "00"}, app.ErrSeedWithRSA},
		{"seed and mnemonic", app.Config{Algorithm: "ed25519", Format: "pkcs8", Seed: "00", Mnemonic: "a"}, app.ErrSeedConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	cfg := app.Config{Algorithm: "ED25519", Format: "ssh"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.AlgorithmEd25519, cfg.Algorithm)
	assert.Equal(t, domain.FormatOpenSSH, cfg.Format)
}
