package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/shapegen/internal/cli"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-json", "--quiet"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestGenerateThenAudit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ds")

	out, err := run(t, "generate", "-o", dir, "-n", "6", "--width", "200", "--height", "160",
		"--margin", "10", "--seed", "3", "-j", "2", "--archive")
	require.NoError(t, err)
	assert.Contains(t, out, "Written:  6 of 6")
	assert.Contains(t, out, "Seed:     3")
	assert.FileExists(t, filepath.Join(dir, "labels_all.tar.xz"))
	assert.FileExists(t, filepath.Join(dir, "data.yaml"))

	out, err = run(t, "audit", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Checked 6 samples: 0 errors")
}

func TestGenerate_ConfigFileAndOverride(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "ds")
	cfgPath := filepath.Join(tmp, "shapes.yaml")
	yml := "width: 160\nheight: 120\nmargin: 8\ncount: 40\nseed: 5\nshapes: [circle, star]\noutput: " + dir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0o644))

	_, err := run(t, "-c", cfgPath, "generate", "-n", "3")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "labels_all"))
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	classes, err := os.ReadFile(filepath.Join(dir, "classes.txt"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(classes)), "\n"), 18)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ds")

	_, err := run(t, "generate", "-o", dir, "-n", "0")
	assert.Error(t, err)

	_, err = run(t, "generate", "-o", dir, "--shapes", "circle,hexagon")
	assert.Error(t, err)

	_, err = run(t, "-c", filepath.Join(dir, "missing.yaml"), "generate")
	assert.Error(t, err)
}

func TestClasses(t *testing.T) {
	out, err := run(t, "classes", "--plain")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 54)
	assert.Equal(t, "red_circle", lines[0])
	assert.Equal(t, "purple_star", lines[40])

	out, err = run(t, "classes")
	require.NoError(t, err)
	assert.Contains(t, out, "white_diamond")
	assert.Contains(t, out, "#ffa500")
}

func TestAudit_MissingDataset(t *testing.T) {
	_, err := run(t, "audit", t.TempDir())
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "shapegen "), out)
}
