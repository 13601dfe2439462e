package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloGo = `package main

// #docfragment "greet"
func greet() string {
	return "hi"
}
// #enddocfragment "greet"
`

const staleDoc = "<embed-code file=\"hello.go\" fragment=\"greet\"></embed-code>\n```go\n```\n"

const freshDoc = "<embed-code file=\"hello.go\" fragment=\"greet\"></embed-code>\n" +
	"```go\n" +
	"func greet() string {\n" +
	"\treturn \"hi\"\n" +
	"}\n" +
	"```\n"

func setup(t *testing.T) (codeRoot, docsRoot, fragments string) {
	t.Helper()
	codeRoot, docsRoot = t.TempDir(), t.TempDir()
	fragments = filepath.Join(t.TempDir(), "fragments")
	require.NoError(t, os.WriteFile(filepath.Join(codeRoot, "hello.go"), []byte(helloGo), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docsRoot, "README.md"), []byte(staleDoc), 0o644))
	return codeRoot, docsRoot, fragments
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEmbedAndCheck(t *testing.T) {
	codeRoot, docsRoot, fragments := setup(t)
	roots := []string{"--code-root", codeRoot, "--docs-root", docsRoot, "--fragments-dir", fragments, "--log-level", "error"}

	out, err := execute(append([]string{"check"}, roots...)...)
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryCommand))
	assert.Contains(t, out, "Out of date: README.md")

	out, err = execute(append([]string{"embed"}, roots...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated README.md")

	content, err := os.ReadFile(filepath.Join(docsRoot, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, freshDoc, string(content))

	out, err = execute(append([]string{"check"}, roots...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestAnalyze(t *testing.T) {
	codeRoot, docsRoot, fragments := setup(t)
	report := filepath.Join(t.TempDir(), "problems.txt")

	out, err := execute("analyze", "--code-root", codeRoot, "--docs-root", docsRoot,
		"--fragments-dir", fragments, "--report", report, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "No problems found")
	assert.FileExists(t, report)
	assert.NoDirExists(t, fragments)
}

func TestConfigurationErrors(t *testing.T) {
	codeRoot, docsRoot, fragments := setup(t)
	configPath := filepath.Join(t.TempDir(), "embed-code.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"code_root: "+codeRoot+"\ndocumentation_root: "+docsRoot+"\nfragments_dir: "+fragments+"\n"), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{"Config with roots", []string{"check", "--config", configPath, "--code-root", codeRoot}},
		{"Only code root", []string{"check", "--code-root", codeRoot}},
		{"No roots at all", []string{"check"}},
		{"Missing docs directory", []string{"check", "--code-root", codeRoot, "--docs-root", filepath.Join(docsRoot, "absent")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(tt.args...)
			require.Error(t, err)
			assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation))
		})
	}

	t.Run("Config file", func(t *testing.T) {
		_, err := execute("check", "--config", configPath, "--log-level", "error")
		require.Error(t, err)
		assert.True(t, goerrors.IsCategory(err, goerrors.CategoryCommand))
	})
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute("publish")
	assert.Error(t, err)
}
