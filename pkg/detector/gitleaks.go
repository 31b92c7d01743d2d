package detector

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/spf13/viper"
	"github.com/zricethezav/gitleaks/v8/config"
	"github.com/zricethezav/gitleaks/v8/detect"
)

// Gitleaks runs gitleaks rules over the diff text. The rule ID is used as the reason.
type Gitleaks struct {
	detector *detect.Detector
}

var _ interfaces.Detector = (*Gitleaks)(nil)

// NewGitleaks creates a detector with the gitleaks default rules, or with the rules of configPath if it is not empty.
func NewGitleaks(configPath string) (*Gitleaks, error) {
	if configPath == "" {
		d, err := detect.NewDetectorDefaultConfig()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create default gitleaks detector")
		}
		return &Gitleaks{detector: d}, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(types.ErrInvalidOption, "gitleaks config not found", goerr.V("path", configPath))
		}
		return nil, goerr.Wrap(err, "failed to read gitleaks config", goerr.V("path", configPath))
	}

	var vc config.ViperConfig
	if err := v.Unmarshal(&vc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode gitleaks config", goerr.V("path", configPath))
	}

	cfg, err := vc.Translate()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to translate gitleaks config", goerr.V("path", configPath))
	}
	if len(cfg.Rules) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "gitleaks config has no rules", goerr.V("path", configPath))
	}

	return &Gitleaks{detector: detect.NewDetector(cfg)}, nil
}

func (x *Gitleaks) Name() types.DetectorName {
	return types.DetectorGitleaks
}

func (x *Gitleaks) Detect(input *model.DiffInput) []*model.Finding {
	var findings []*model.Finding
	for _, f := range x.detector.DetectBytes([]byte(input.Text)) {
		s := f.Secret
		if s == "" {
			s = f.Match
		}
		if s == "" {
			continue
		}
		findings = append(findings, input.NewFinding(types.Reason(f.RuleID), types.ConfidenceHigh, s))
	}
	return findings
}
