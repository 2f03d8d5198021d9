package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		dirs    []string
		max     int
		want    []string
		wantErr bool
	}{
		{
			name:  "sorted_base_names",
			files: []string{"b.txt", "a.txt", "c.txt"},
			max:   50,
			want:  []string{"a.txt", "b.txt", "c.txt"},
		},
		{
			name:  "directories_excluded",
			files: []string{"file.txt"},
			dirs:  []string{"subdir", "another"},
			max:   50,
			want:  []string{"file.txt"},
		},
		{
			name:  "empty_directory",
			files: nil,
			max:   50,
			want:  []string{},
		},
		{
			name:  "cap_applies",
			files: []string{"a", "b", "c", "d", "e"},
			max:   3,
			want:  nil, // checked by length below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644))
			}
			for _, d := range tt.dirs {
				require.NoError(t, os.Mkdir(filepath.Join(dir, d), 0o755))
			}

			got, err := ListFiles(context.Background(), dir, tt.max)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.LessOrEqual(t, len(got), tt.max)
			assert.True(t, sort.StringsAreSorted(got))
			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestListFiles_CapBoundsTheConsideredSet(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 60; i++ {
		name := fmt.Sprintf("file_%02d.txt", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	got, err := ListFiles(context.Background(), dir, 50)
	require.NoError(t, err)

	assert.Len(t, got, 50)
	assert.True(t, sort.StringsAreSorted(got))

	seen := make(map[string]bool, len(got))
	for _, name := range got {
		assert.False(t, seen[name], "duplicate entry %s", name)
		seen[name] = true
	}
}

func TestListFiles_SymlinksExcluded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	if err := os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := ListFiles(context.Background(), dir, 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"real.txt"}, got)
}

func TestListFiles_UnreadableDirectory(t *testing.T) {
	_, err := ListFiles(context.Background(), filepath.Join(t.TempDir(), "missing"), 50)
	require.Error(t, err)
}
