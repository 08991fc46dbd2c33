package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), DefaultConfigFile))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	data := "tag: lwc\nsuffix: .gen.go\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "lwc", cfg.Tag)
	assert.Equal(t, ".gen.go", cfg.Suffix)
	assert.Equal(t, DefaultConfig().SkipDirs, cfg.SkipDirs)
	assert.Equal(t, DefaultConfig().ImportPath, cfg.ImportPath)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed yaml", data: "tag: [unterminated"},
		{name: "empty tag", data: "tag: \"\""},
		{name: "suffix overwrites sources", data: "suffix: .go"},
		{name: "suffix not go", data: "suffix: _wc.txt"},
		{name: "empty import path", data: "import_path: \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultConfigFile)
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestGenerateWithCustomTag(t *testing.T) {
	src := `package demo

import "github.com/pthm/wcmp"

type Card struct {
	wcmp.Element
	Title string ` + "`lwc:\"api\"`" + `
	Body  string ` + "`wc:\"api\"`" + `
}
`
	cfg := DefaultConfig()
	cfg.Tag = "lwc"
	cfg.Suffix = ".gen.go"

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "card.go"), []byte(src), 0644))
	require.NoError(t, New(Options{Config: cfg}).Generate(dir))

	out, err := os.ReadFile(filepath.Join(dir, "card.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"title"`)
	assert.NotContains(t, string(out), `"body"`)
}
