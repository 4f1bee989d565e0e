package utils

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFileAppliesEnvAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte("DB_HOST: db.internal\nJWT_SECRET: from-yaml\nOCR_TIMEOUT_SECONDS: \"10\"\n"), 0o600)
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "from-env")

	config = Config{}
	loadConfigFile(path)

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "from-env", GetConfig("JWT_SECRET"))
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, 10, GetConfigInt("OCR_TIMEOUT_SECONDS", 30))
	assert.Equal(t, 4, GetConfigInt("OCR_MAX_CONCURRENT", 1))
	assert.Equal(t, 7, GetConfigInt("UNKNOWN_KEY", 7))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}
