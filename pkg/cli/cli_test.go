package cli_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/cli"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/utils/testutil"
)

const testToken = "4fRz7Qk2Lp9Xc3Vb8Nm1Jh6Gt5Yd0WsA"

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := cli.New(cli.WithInput(strings.NewReader(input)), cli.WithOutput(&out))
	err := c.Run(append([]string{"leakgate", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestScanGate(t *testing.T) {
	fx := testutil.NewGitFixture(t)
	fx.Commit("init", map[string]string{"README.md": "hello\n"})
	fx.Commit("add config", map[string]string{"config.yml": "token: " + testToken + "\n"})

	wlPath := filepath.Join(t.TempDir(), "whitelist.yaml")
	scanArgs := []string{"--repo_path", fx.Dir, "--whitelist", wlPath, "--pipeline_mode"}

	t.Run("outstanding finding fails the gate", func(t *testing.T) {
		out, err := run(t, "", scanArgs...)
		gt.True(t, errors.Is(err, types.ErrGateFailed))
		gt.S(t, out).Contains("config.yml")
		gt.False(t, strings.Contains(out, testToken))
	})

	t.Run("stats counts the stored entry", func(t *testing.T) {
		out, err := run(t, "", append(scanArgs, "stats")...)
		gt.NoError(t, err)
		gt.S(t, out).Contains("Unacknowledged")
		gt.False(t, strings.Contains(out, testToken))
	})

	t.Run("remediation acknowledges the entry", func(t *testing.T) {
		out, err := run(t, "a\n", "--whitelist", wlPath, "--remediate")
		gt.NoError(t, err)
		gt.S(t, out).Contains("1 entries updated")
	})

	t.Run("acknowledged finding passes the gate", func(t *testing.T) {
		_, err := run(t, "", scanArgs...)
		gt.NoError(t, err)
	})
}

func TestScanCleanRepository(t *testing.T) {
	fx := testutil.NewGitFixture(t)
	fx.Commit("init", map[string]string{"README.md": "hello\n"})

	_, err := run(t, "",
		"--repo_path", fx.Dir,
		"--whitelist", filepath.Join(t.TempDir(), "whitelist.json"),
		"--pipeline_mode",
	)
	gt.NoError(t, err)
}

func TestScanInvalidOption(t *testing.T) {
	fx := testutil.NewGitFixture(t)
	fx.Commit("init", map[string]string{"README.md": "hello\n"})
	wlPath := filepath.Join(t.TempDir(), "whitelist.json")

	t.Run("no detector", func(t *testing.T) {
		_, err := run(t, "", "--repo_path", fx.Dir, "--whitelist", wlPath, "--entropy=false", "--regex=false")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("non positive max depth", func(t *testing.T) {
		_, err := run(t, "", "--repo_path", fx.Dir, "--whitelist", wlPath, "--max_depth", "0")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := run(t, "", "--repo_path", t.TempDir(), "--whitelist", wlPath)
		gt.True(t, errors.Is(err, types.ErrRepositoryNotFound))
	})

	t.Run("invalid log level", func(t *testing.T) {
		var out bytes.Buffer
		err := cli.New(cli.WithOutput(&out)).Run([]string{"leakgate", "--log-level", "trace"})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
