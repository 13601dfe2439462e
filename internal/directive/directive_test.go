package directive

import (
	"testing"

	"embedcode/internal/fragment"
	"embedcode/internal/pattern"
	"embedcode/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader map[string][]string

func (f fakeReader) Get(codeFile, fragmentName string) ([]string, error) {
	lines, ok := f[codeFile+"#"+fragmentName]
	if !ok {
		return nil, storage.ErrFragmentNotFound
	}
	return lines, nil
}

func TestDecode(t *testing.T) {
	t.Run("Fragment", func(t *testing.T) {
		d, err := Decode(`<embed-code file="org/Hello.java" fragment="main"/>`)
		require.NoError(t, err)
		assert.Equal(t, "org/Hello.java", d.CodeFile)
		assert.Equal(t, "main", d.Fragment)
		assert.Nil(t, d.Start)
		assert.Nil(t, d.End)
	})

	t.Run("Start and end", func(t *testing.T) {
		d, err := Decode(`<embed-code file="a.go" start="func main" end="^}"/>`)
		require.NoError(t, err)
		require.NotNil(t, d.Start)
		require.NotNil(t, d.End)
		assert.Equal(t, "func main", d.Start.String())
	})

	t.Run("Spanning lines", func(t *testing.T) {
		d, err := Decode("<embed-code\n  file=\"a.go\"\n  fragment=\"x\">\n</embed-code>")
		require.NoError(t, err)
		assert.Equal(t, "x", d.Fragment)
	})

	t.Run("Legacy processing instruction", func(t *testing.T) {
		d, err := Decode(`<?embed-code file="a.go" fragment="x"?>`)
		require.NoError(t, err)
		assert.Equal(t, "a.go", d.CodeFile)
		assert.Equal(t, "x", d.Fragment)
	})

	t.Run("Incomplete text is not a directive", func(t *testing.T) {
		_, err := Decode(`<embed-code file="a.go"`)
		assert.ErrorIs(t, err, ErrNotDirective)
	})

	t.Run("Other element is not a directive", func(t *testing.T) {
		_, err := Decode(`<div class="x"/>`)
		assert.ErrorIs(t, err, ErrNotDirective)
	})

	t.Run("Fragment with start is rejected", func(t *testing.T) {
		_, err := Decode(`<embed-code file="a.go" fragment="x" start="y"/>`)
		assert.ErrorIs(t, err, ErrInvalidDirective)
	})

	t.Run("Fragment with end is rejected", func(t *testing.T) {
		_, err := New(map[string]string{"file": "a.go", "fragment": "x", "end": "y"})
		assert.ErrorIs(t, err, ErrInvalidDirective)
	})

	t.Run("File is required", func(t *testing.T) {
		_, err := Decode(`<embed-code fragment="x"/>`)
		assert.ErrorIs(t, err, ErrInvalidDirective)
	})
}

func TestIsCandidate(t *testing.T) {
	assert.True(t, IsCandidate(`  <embed-code file="a"/>`))
	assert.True(t, IsCandidate(`<?embed-code file="a"?>`))
	assert.False(t, IsCandidate(`Use <embed-code> tags.`))
	assert.False(t, IsCandidate("```java"))
}

func TestContent(t *testing.T) {
	reader := fakeReader{
		"Hello.java#" + fragment.DefaultName: {
			"public class Hello {",
			"    public static void main(String[] args) {",
			"        System.out.println(\"hi\");",
			"    }",
			"}",
		},
		"Hello.java#main": {"main body"},
	}

	t.Run("Named fragment", func(t *testing.T) {
		d, err := New(map[string]string{"file": "Hello.java", "fragment": "main"})
		require.NoError(t, err)
		lines, err := d.Content(reader)
		require.NoError(t, err)
		assert.Equal(t, []string{"main body"}, lines)
	})

	t.Run("Whole file", func(t *testing.T) {
		d, err := New(map[string]string{"file": "Hello.java"})
		require.NoError(t, err)
		lines, err := d.Content(reader)
		require.NoError(t, err)
		assert.Len(t, lines, 5)
	})

	t.Run("Glob range with indentation cut", func(t *testing.T) {
		d, err := New(map[string]string{"file": "Hello.java", "start": "static void main", "end": "^    }"})
		require.NoError(t, err)
		lines, err := d.Content(reader)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"public static void main(String[] args) {",
			"    System.out.println(\"hi\");",
			"}",
		}, lines)
	})

	t.Run("Brackets in patterns match literally", func(t *testing.T) {
		d, err := Decode(`<embed-code file="Hello.java" start="main(String[] args)" end="^    }"/>`)
		require.NoError(t, err)
		lines, err := d.Content(reader)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"public static void main(String[] args) {",
			"    System.out.println(\"hi\");",
			"}",
		}, lines)
	})

	t.Run("Start only runs to the end", func(t *testing.T) {
		d, err := New(map[string]string{"file": "Hello.java", "start": "println"})
		require.NoError(t, err)
		lines, err := d.Content(reader)
		require.NoError(t, err)
		assert.Equal(t, []string{"        System.out.println(\"hi\");", "    }", "}"}, lines)
	})

	t.Run("End only starts at the top", func(t *testing.T) {
		d, err := New(map[string]string{"file": "Hello.java", "end": "main("})
		require.NoError(t, err)
		lines, err := d.Content(reader)
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("No matching line", func(t *testing.T) {
		d, err := New(map[string]string{"file": "Hello.java", "start": "nothing like this"})
		require.NoError(t, err)
		_, err = d.Content(reader)
		assert.ErrorIs(t, err, pattern.ErrNoMatchingLine)
	})

	t.Run("Missing fragment", func(t *testing.T) {
		d, err := New(map[string]string{"file": "Hello.java", "fragment": "other"})
		require.NoError(t, err)
		_, err = d.Content(reader)
		assert.ErrorIs(t, err, storage.ErrFragmentNotFound)
	})
}
