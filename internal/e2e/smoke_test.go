package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runRA(t, binaryPath, home, "", "tickets", "init")
	require.NoError(t, err, "stderr: %s", stderr)

	script := strings.Join([]string{
		"take AV-2849",
		"select AV-2849",
		"mode nudge",
		"nudge pull-over",
		"reason event closure",
		"send",
	}, "\n")
	stdout, stderr, err := runRA(t, binaryPath, home, script, "run", "--strict")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "ticket assigned to you")
	assert.Contains(t, stdout, "sent: Sending \"Pull Over Safely\" to ND-7856")
	assert.Contains(t, stderr, "command_dispatched")

	stdout, stderr, err = runRA(t, binaryPath, home, "", "outbox", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "nudge")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ra-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ra")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ra binary: %s", string(output))
	return binaryPath
}

func runRA(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
