package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/detector"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Detector struct {
	entropy        bool
	regex          bool
	gitleaks       bool
	gitleaksConfig string
	excludes       []string
}

func (x *Detector) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "entropy",
			Usage:       "Enable high entropy string detection",
			Category:    "Detector",
			Value:       true,
			Sources:     cli.EnvVars("LEAKGATE_ENTROPY"),
			Destination: &x.entropy,
		},
		&cli.BoolFlag{
			Name:        "regex",
			Usage:       "Enable regular expression based detection",
			Category:    "Detector",
			Value:       true,
			Sources:     cli.EnvVars("LEAKGATE_REGEX"),
			Destination: &x.regex,
		},
		&cli.BoolFlag{
			Name:        "gitleaks",
			Usage:       "Enable gitleaks rules",
			Category:    "Detector",
			Sources:     cli.EnvVars("LEAKGATE_GITLEAKS"),
			Destination: &x.gitleaks,
		},
		&cli.StringFlag{
			Name:        "gitleaks-config",
			Usage:       "Path to gitleaks config file (TOML or YAML). Default rules are used if not set",
			Category:    "Detector",
			Sources:     cli.EnvVars("LEAKGATE_GITLEAKS_CONFIG"),
			Destination: &x.gitleaksConfig,
		},
		&cli.StringSliceFlag{
			Name:        "exclude",
			Usage:       "gitignore style path pattern to skip (repeatable)",
			Category:    "Detector",
			Sources:     cli.EnvVars("LEAKGATE_EXCLUDE"),
			Destination: &x.excludes,
		},
	}
}

// Excludes returns user supplied path patterns
func (x *Detector) Excludes() []string {
	return x.excludes
}

// Detectors builds enabled detectors. At least one must be enabled.
func (x *Detector) Detectors() ([]interfaces.Detector, error) {
	var detectors []interfaces.Detector
	if x.entropy {
		detectors = append(detectors, detector.NewEntropy())
	}
	if x.regex {
		detectors = append(detectors, detector.NewPattern())
	}
	if x.gitleaks || x.gitleaksConfig != "" {
		d, err := detector.NewGitleaks(x.gitleaksConfig)
		if err != nil {
			return nil, err
		}
		detectors = append(detectors, d)
	}

	if len(detectors) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no detector is enabled")
	}
	return detectors, nil
}

func (x *Detector) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("entropy", x.entropy),
		slog.Bool("regex", x.regex),
		slog.Bool("gitleaks", x.gitleaks),
		slog.String("gitleaksConfig", x.gitleaksConfig),
		slog.Any("excludes", x.excludes),
	)
}
