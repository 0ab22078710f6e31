package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, 8000, Port)
	assert.Equal(t, "black-forest-labs/flux-1.1-pro", DefaultImageModel)
	assert.Equal(t, "luma/ray", DefaultVideoModel)
	assert.Equal(t, "16:9", DefaultAspectRatio)
	assert.Equal(t, "ffmpeg", FFmpegPath)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, AllowedOrigins)
}

func TestLoadEnvFileAndOverride(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "REPLICATE_API_TOKEN=r8_from_file\nGEMINI_API_KEY=from_file\nPORT=9000\nCORS_ALLOWED_ORIGINS=https://a.example, https://b.example\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))
	t.Setenv("GEMINI_API_KEY", "from_env")

	require.NoError(t, Load(envFile))

	assert.Equal(t, "r8_from_file", ReplicateAPIToken)
	assert.Equal(t, "from_env", GeminiAPIKey)
	assert.Equal(t, 9000, Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, AllowedOrigins)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"*"}, splitList(" * ,"))
}
