package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devnullvoid/shoptui/internal/config"
)

// isolate clears SHOPTUI_* variables and points config lookups at an empty
// directory so the host environment cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()

	for _, key := range []string{"SHOPTUI_PRODUCTS_URL", "SHOPTUI_DEBUG", "SHOPTUI_LOG_DIR", "SHOPTUI_LOG_LEVEL", "SHOPTUI_CONFIG"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestBootstrap_Version(t *testing.T) {
	var out bytes.Buffer
	result, err := Bootstrap(BootstrapOptions{Version: true, Out: &out})

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Contains(t, out.String(), "shoptui v")
}

func TestBootstrap_Precedence(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "products_url: https://file.example.com/products\nlog_dir: /from/file\nlog_level: error\n")

	result, err := Bootstrap(BootstrapOptions{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com/products", result.Config.ProductsURL)
	assert.Equal(t, path, result.ConfigPath)
	assert.Equal(t, "error", result.Config.LogLevel)

	t.Setenv("SHOPTUI_PRODUCTS_URL", "https://env.example.com/products")
	t.Setenv("SHOPTUI_LOG_LEVEL", "info")
	result, err = Bootstrap(BootstrapOptions{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/products", result.Config.ProductsURL, "env beats file")
	assert.Equal(t, "info", result.Config.LogLevel)

	result, err = Bootstrap(BootstrapOptions{
		ConfigPath:      path,
		FlagProductsURL: "http://localhost:8080/products",
		FlagDebug:       true,
		FlagLogLevel:    "debug",
		FlagLogDir:      "/from/flag",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/products", result.Config.ProductsURL, "flag beats env")
	assert.True(t, result.Config.Debug)
	assert.Equal(t, "/from/flag", result.Config.LogDir)
	assert.Equal(t, "debug", result.Config.LogLevel)
}

func TestBootstrap_Defaults(t *testing.T) {
	dir := isolate(t)

	result, err := Bootstrap(BootstrapOptions{FlagProductsURL: "https://shop.example.com/products", Plain: true, Category: "jewelery"})
	require.NoError(t, err)

	assert.Empty(t, result.ConfigPath)
	assert.Equal(t, filepath.Join(dir, "cache", "shoptui"), result.Config.LogDir)
	assert.Equal(t, config.DefaultKeyBindings(), result.Config.KeyBindings)
	assert.True(t, result.Plain)
	assert.Equal(t, "jewelery", result.Category)
}

func TestBootstrap_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Bootstrap(BootstrapOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products URL required")

	_, err = Bootstrap(BootstrapOptions{FlagProductsURL: "shop.example.com/products"})
	assert.Error(t, err)

	_, err = Bootstrap(BootstrapOptions{FlagProductsURL: "https://shop.example.com/products", Category: "Garden"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")

	_, err = Bootstrap(BootstrapOptions{FlagProductsURL: "https://shop.example.com/products", FlagLogLevel: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")

	_, err = Bootstrap(BootstrapOptions{ConfigPath: filepath.Join(dir, "missing.yml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestResolveConfigPath(t *testing.T) {
	dir := isolate(t)

	assert.Empty(t, ResolveConfigPath(""))

	flagPath := filepath.Join(dir, "flag.yml")
	assert.Equal(t, flagPath, ResolveConfigPath(flagPath))

	envPath := filepath.Join(dir, "env.yml")
	t.Setenv("SHOPTUI_CONFIG", envPath)
	assert.Equal(t, envPath, ResolveConfigPath(""))
	assert.Equal(t, flagPath, ResolveConfigPath(flagPath), "flag beats env")

	require.NoError(t, os.Unsetenv("SHOPTUI_CONFIG"))
	created, err := config.CreateDefaultConfigFile()
	require.NoError(t, err)
	assert.Equal(t, created, ResolveConfigPath(""))
}

func TestStartApplication_NilResult(t *testing.T) {
	assert.Error(t, StartApplication(nil))
}
