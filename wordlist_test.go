package lexicon

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	t.Run("counts only newly inserted words", func(t *testing.T) {
		l := New()
		input := "cat\ndog\ncat\n"
		added := NewLoader().Load(strings.NewReader(input), l.Insert)
		assert.Equal(t, 2, added)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("lowercases input", func(t *testing.T) {
		l := New()
		added := NewLoader().Load(strings.NewReader("CAT\nDog\n"), l.Insert)
		assert.Equal(t, 2, added)
		assert.Equal(t, []string{"cat", "dog"}, l.Words())
	})

	t.Run("folds accented letters toward ascii", func(t *testing.T) {
		l := New()
		added := NewLoader().Load(strings.NewReader("Café\njalapeño\n"), l.Insert)
		assert.Equal(t, 2, added)
		assert.Equal(t, []string{"cafe", "jalapeno"}, l.Words())
	})

	t.Run("skips blank and unfoldable lines", func(t *testing.T) {
		l := New()
		input := "cat\n\n  \ndon't\nrock42\ndog\n"
		added := NewLoader().WithLogger(zap.NewNop()).Load(strings.NewReader(input), l.Insert)
		assert.Equal(t, 2, added)
		assert.Equal(t, []string{"cat", "dog"}, l.Words())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		l := New()
		added := NewLoader().Load(strings.NewReader("  cat \r\n"), l.Insert)
		assert.Equal(t, 1, added)
		assert.True(t, l.Contains("cat"))
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("loads an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("cat\ncar\ncard\ndog\n"), 0o644))

		l := New()
		added, err := NewLoader().LoadFile(path, l.Insert)
		require.NoError(t, err)
		assert.Equal(t, 4, added)
		assert.Equal(t, []string{"car", "card", "cat", "dog"}, l.Words())
	})

	t.Run("unopenable source is an error, not a zero count", func(t *testing.T) {
		l := New()
		added, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing.txt"), l.Insert)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, 0, added)
		assert.Equal(t, 0, l.Len())
	})
}
