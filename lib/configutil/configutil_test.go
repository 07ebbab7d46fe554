package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl string `json:"base_url"`
	Storage string `json:"storage"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "bsprice.json5"),
		[]byte(`{base_url: "https://bsprice.example", storage: "bsprice.db"}`),
		0o644,
	)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "bsprice.local.json5"),
		[]byte(`{base_url: "http://localhost:8000"}`),
		0o644,
	)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "bsprice.json5"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000", config.BaseUrl)
	require.Equal(t, "bsprice.db", config.Storage)
}

func TestReadConfigNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadConfig[testConfig](filepath.Join(dir, "missing.json5"))
	require.True(t, os.IsNotExist(err))
}
