package dirlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0644))
	}
}

func TestListBySuffix(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		suffix string
		want   []string
	}{
		{
			name:   "mixed entries",
			files:  []string{"main.js", "main.js.map", "style.css", "vendor.js"},
			suffix: ".js",
			want:   []string{"main.js", "vendor.js"},
		},
		{
			name:   "no matches",
			files:  []string{"index.html", "app.css"},
			suffix: ".js",
			want:   []string{},
		},
		{
			name:   "suffix is case sensitive",
			files:  []string{"a.TSX", "b.tsx"},
			suffix: ".tsx",
			want:   []string{"b.tsx"},
		},
		{
			name:   "empty directory",
			suffix: ".js",
			want:   []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tc.files...)

			got, err := ListBySuffix(dir, tc.suffix)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestListBySuffixIsNotRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.js")
	sub := filepath.Join(dir, "chunks")
	require.NoError(t, os.Mkdir(sub, 0755))
	touch(t, sub, "nested.js")

	got, err := ListBySuffix(dir, ".js")
	require.NoError(t, err)
	assert.Equal(t, []string{"top.js"}, got)
}

func TestListBySuffixIncludesMatchingDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "legacy.js"), 0755))

	got, err := ListBySuffix(dir, ".js")
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy.js"}, got)
}

func TestListBySuffixMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	got, err := ListBySuffix(missing, ".js")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
	assert.Nil(t, got)
}
