package banner

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YakDriver/bannerplop/internal/config"
)

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "done.c"), defaultBanner+"int x;\n")
	missing := writeFile(t, filepath.Join(root, "src", "missing.c"), "int y;\n")

	issues, err := NewChecker(config.Default()).Check(root)
	require.NoError(t, err)
	assert.Equal(t, []Issue{{File: missing, Problem: "missing banner"}}, issues)
}

func TestChecker_CheckEmpty(t *testing.T) {
	t.Parallel()

	issues, err := NewChecker(config.Default()).Check(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, issues)
}
