package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pthm/wcmp/lib/generator"
)

func TestPatternsOrDefault(t *testing.T) {
	assert.Equal(t, []string{"./..."}, patternsOrDefault(nil))
	assert.Equal(t, []string{"./a", "./b/..."}, patternsOrDefault([]string{"./a", "./b/..."}))
}

func TestGenerateCmd(t *testing.T) {
	dir := t.TempDir()
	src := "package demo\n\nimport \"github.com/pthm/wcmp\"\n\ntype Badge struct {\n\twcmp.Element\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "badge.go"), []byte(src), 0644))

	opts := func(dryRun bool) (generator.Options, error) {
		return generator.Options{DryRun: dryRun, Config: generator.DefaultConfig(), Logger: zap.NewNop()}, nil
	}

	cmd := generateCmd(opts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{dir})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(dir, "badge_wc.go"))
	require.NoError(t, err)

	clean := cleanCmd(opts)
	clean.SetArgs([]string{dir})
	require.NoError(t, clean.Execute())

	_, err = os.Stat(filepath.Join(dir, "badge_wc.go"))
	assert.True(t, os.IsNotExist(err))
}
