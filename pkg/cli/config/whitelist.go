package config

import (
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/repository/file"
	"github.com/urfave/cli/v3"
)

const defaultWhitelistName = "whitelist.json"

type Whitelist struct {
	path string
}

func (x *Whitelist) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "whitelist",
			Aliases:     []string{"w"},
			Usage:       "Path to whitelist file (.json, .yaml or .yml). Default is whitelist.json in the repository root",
			Category:    "Whitelist",
			Sources:     cli.EnvVars("LEAKGATE_WHITELIST"),
			Destination: &x.path,
		},
	}
}

// Path resolves the whitelist location. A remote scan has no checkout to keep the file, so the current directory is used.
func (x *Whitelist) Path(repoPath string) string {
	if x.path != "" {
		return x.path
	}
	if repoPath == "" {
		return defaultWhitelistName
	}
	return filepath.Join(repoPath, defaultWhitelistName)
}

func (x *Whitelist) NewRepository(repoPath string) interfaces.WhitelistRepository {
	return file.New(x.Path(repoPath))
}

func (x *Whitelist) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
	)
}
