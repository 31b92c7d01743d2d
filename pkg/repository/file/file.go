package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/repository"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
	"github.com/m-mizutani/leakgate/pkg/utils/safe"
	"gopkg.in/yaml.v3"
)

type format int

const (
	formatJSON format = iota
	formatYAML
)

type whitelistRepository struct {
	path   string
	format format
}

var _ interfaces.WhitelistRepository = (*whitelistRepository)(nil)

// New creates a whitelist store backed by a local file. The format is chosen by extension: .yaml and .yml are YAML, anything else is JSON.
func New(path string) interfaces.WhitelistRepository {
	repo := &whitelistRepository{
		path:   path,
		format: formatJSON,
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		repo.format = formatYAML
	}
	return repo
}

func (x *whitelistRepository) Location() string {
	return x.path
}

// Path returns the local file path of the whitelist
func (x *whitelistRepository) Path() string {
	return x.path
}

func (x *whitelistRepository) Read(ctx context.Context) (*model.FindingSet, error) {
	raw, err := os.ReadFile(x.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(repository.ErrNotFound, "whitelist file does not exist", goerr.V("path", x.path))
		}
		return nil, goerr.Wrap(err, "failed to read whitelist file", goerr.V("path", x.path))
	}

	doc, err := x.decode(raw)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidWhitelist, "failed to decode whitelist file",
			goerr.V("path", x.path),
			goerr.V("cause", err.Error()),
		)
	}

	set, err := doc.FindingSet()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid whitelist file", goerr.V("path", x.path))
	}
	return set, nil
}

// decode accepts both the versioned document and a legacy bare array of records
func (x *whitelistRepository) decode(raw []byte) (*model.WhitelistDocument, error) {
	var doc model.WhitelistDocument

	switch x.format {
	case formatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return nil, err
		}
		if len(node.Content) == 0 {
			return &doc, nil
		}
		if node.Content[0].Kind == yaml.SequenceNode {
			if err := node.Content[0].Decode(&doc.Findings); err != nil {
				return nil, err
			}
			return &doc, nil
		}
		if err := node.Content[0].Decode(&doc); err != nil {
			return nil, err
		}

	default:
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 {
			return &doc, nil
		}
		if trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &doc.Findings); err != nil {
				return nil, err
			}
			return &doc, nil
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, err
		}
	}

	return &doc, nil
}

func (x *whitelistRepository) encode(doc *model.WhitelistDocument) ([]byte, error) {
	switch x.format {
	case formatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	default:
		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(raw, '\n'), nil
	}
}

// Write replaces the whole file atomically with a temporary file and rename
func (x *whitelistRepository) Write(ctx context.Context, findings *model.FindingSet) error {
	raw, err := x.encode(model.NewWhitelistDocument(findings))
	if err != nil {
		return goerr.Wrap(err, "failed to encode whitelist", goerr.V("path", x.path))
	}

	dir := filepath.Dir(x.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(x.path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary whitelist file", goerr.V("dir", dir))
	}
	tmpPath := tmp.Name()
	defer safe.Remove(tmpPath)

	if _, err := tmp.Write(raw); err != nil {
		safe.Close(tmp)
		return goerr.Wrap(err, "failed to write temporary whitelist file", goerr.V("path", tmpPath))
	}
	if err := tmp.Sync(); err != nil {
		safe.Close(tmp)
		return goerr.Wrap(err, "failed to sync temporary whitelist file", goerr.V("path", tmpPath))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temporary whitelist file", goerr.V("path", tmpPath))
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		return goerr.Wrap(err, "failed to set whitelist file mode", goerr.V("path", tmpPath))
	}

	if err := os.Rename(tmpPath, x.path); err != nil {
		return goerr.Wrap(err, "failed to replace whitelist file", goerr.V("path", x.path))
	}

	return nil
}

func (x *whitelistRepository) lockPath() string {
	return x.path + ".lock"
}

// Lock takes an advisory file lock on <path>.lock without waiting. A held lock returns types.ErrWhitelistLocked.
// The lock file is left in place after unlock; removing it lets two processes lock different inodes.
func (x *whitelistRepository) Lock(ctx context.Context) (func(), error) {
	fl := flock.New(x.lockPath())
	locked, err := fl.TryLock()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to lock whitelist", goerr.V("lock", x.lockPath()))
	}
	if !locked {
		return nil, goerr.Wrap(types.ErrWhitelistLocked, "whitelist is used by another process", goerr.V("lock", x.lockPath()))
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			logging.Default().Warn("failed to unlock whitelist", slog.Any("error", err), slog.String("lock", x.lockPath()))
		}
	}, nil
}
