package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"job_url": "https://example.com/job", "verbose": true}`), 0o600))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveJobSources(t *testing.T) {
	cfg := &Config{JobFile: "job.html", JobURL: "https://example.com/job"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.json"}

	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := &Config{JobURL: "https://example.com/job"}
	defaults := Config{APIKey: "key-from-file", DatabaseURL: "postgres://localhost/jobs"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://example.com/job", merged.JobURL)
	assert.Equal(t, "key-from-file", merged.APIKey)
	assert.Equal(t, "postgres://localhost/jobs", merged.DatabaseURL)
	assert.Equal(t, ":8080", merged.ListenAddr)
}

func TestMergeWithDefaults_ExplicitValuesWin(t *testing.T) {
	cfg := &Config{APIKey: "explicit"}

	merged := cfg.MergeWithDefaults(Config{APIKey: "default", ListenAddr: ":9000"})

	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, ":9000", merged.ListenAddr)
}

func TestNewJWTConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()

	assert.Error(t, err)
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("hunter2hunter2")

	require.NoError(t, err)
	assert.True(t, cfg.VerifyPassword("hunter2hunter2", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestPasswordConfig_CostRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "5")

	_, err := NewPasswordConfig()

	assert.Error(t, err)
}
