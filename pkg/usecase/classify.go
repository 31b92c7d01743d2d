package usecase

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/m-mizutani/leakgate/pkg/detector"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
)

// lockfiles hold hashes of dependencies and always look like secrets
var lockfiles = []string{
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Pipfile.lock",
	"poetry.lock",
	"Gemfile.lock",
	"composer.lock",
	"Cargo.lock",
	"go.sum",
}

const binaryMarker = "Binary files"

type classifier struct {
	detectors detector.Set
	excludes  *ignore.GitIgnore
}

// newClassifier builds a classifier. Paths matching the whitelist file name, lockfiles and patterns are excluded.
func newClassifier(detectors detector.Set, whitelistPath string, patterns []string) *classifier {
	var lines []string
	if whitelistPath != "" {
		lines = append(lines, filepath.Base(whitelistPath))
	}
	lines = append(lines, lockfiles...)
	lines = append(lines, patterns...)

	return &classifier{
		detectors: detectors,
		excludes:  ignore.CompileIgnoreLines(lines...),
	}
}

func (x *classifier) excluded(path string) bool {
	return x.excludes.MatchesPath(path)
}

// classify runs detectors over each changed file of the pair. Findings are attributed to the newer commit.
func (x *classifier) classify(pair *model.RevisionPair, diffs []*model.FileDiff) *model.FindingSet {
	result := model.NewFindingSet()

	for _, d := range diffs {
		path := d.Path()
		if path == "" || x.excluded(path) {
			continue
		}

		text := strings.ToValidUTF8(string(d.Patch), "\uFFFD")
		if strings.HasPrefix(text, binaryMarker) {
			continue
		}

		result.Merge(x.detectors.Detect(&model.DiffInput{
			Text:   text,
			Path:   path,
			Branch: pair.Branch,
			Commit: pair.Newer,
		}))
	}

	return result
}
