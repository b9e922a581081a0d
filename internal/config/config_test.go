package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp переходит во временный каталог, чтобы godotenv не подхватил чужой .env.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("CARD_STORE", "")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, StoreMemory, cfg.CardStore)
}

func TestNewConfig_FromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LOG_LEVEL", " DEBUG ")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CARD_STORE", "SQLite")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, StoreSQLite, cfg.CardStore)
}

func TestNewConfig_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=json\n"), 0o600))
	// godotenv не перезаписывает уже заданные переменные, поэтому удаляем LOG_FORMAT
	t.Setenv("LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	// godotenv пишет в окружение процесса: t.Setenv выше вернёт исходное значение
}

func TestNewConfig_Invalid(t *testing.T) {
	chdirTemp(t)
	cases := map[string]string{
		"LOG_LEVEL":  "verbose",
		"LOG_FORMAT": "xml",
		"CARD_STORE": "postgres",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "")
			t.Setenv("LOG_FORMAT", "")
			t.Setenv("CARD_STORE", "")
			t.Setenv(key, val)

			cfg, err := NewConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
			// некорректное значение заменено дефолтом, конфиг пригоден к работе
			require.NotNil(t, cfg)
			assert.Equal(t, Default(), cfg)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestNewConfig_InvalidKeepsValidValues(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CARD_STORE", "bogus")

	cfg, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "CARD_STORE")
	assert.NotContains(t, err.Error(), "LOG_FORMAT")
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, DefaultCardStore, cfg.CardStore)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	err := (&Config{LogLevel: "x", LogFormat: "console", CardStore: StoreSQLite}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
