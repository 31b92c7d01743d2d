package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string

	CommitSHA    string
	BranchName   string
	FindingID    string
	DiffID       string
	ScanID       string
	Reason       string
	DetectorName string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func NewScanID() ScanID {
	return ScanID(uuid.NewString())
}

func (x ScanID) String() string          { return string(x) }
func (x CommitSHA) String() string       { return string(x) }
func (x BranchName) String() string      { return string(x) }
func (x FindingID) String() string       { return string(x) }
func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

// Short returns the first 8 characters of the commit hash
func (x CommitSHA) Short() string {
	if len(x) > 8 {
		return string(x[:8])
	}
	return string(x)
}

// SecretString is a detected candidate secret. It is masked when it is logged.
type SecretString string

func (x SecretString) LogValue() slog.Value {
	return slog.StringValue(x.Masked())
}

// Masked keeps the first 4 characters and replaces the rest
func (x SecretString) Masked() string {
	const visible = 4
	if len(x) <= visible {
		return "****"
	}
	return string(x[:visible]) + "****"
}

const (
	ReasonHighEntropy Reason = "High Entropy"
)

const (
	DetectorEntropy  DetectorName = "entropy"
	DetectorPattern  DetectorName = "regex"
	DetectorGitleaks DetectorName = "gitleaks"
)

type Confidence string

const (
	ConfidenceLow  Confidence = "Low"
	ConfidenceHigh Confidence = "High"
)
