package detector

import (
	"math"
	"strings"

	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

const (
	Base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="
	HexChars    = "1234567890abcdefABCDEF"

	// runs must be longer than this to be evaluated
	minRunLength = 20

	base64Threshold = 4.5
	hexThreshold    = 3.0
)

// Entropy flags base64 and hex runs with high Shannon entropy
type Entropy struct{}

var _ interfaces.Detector = (*Entropy)(nil)

func NewEntropy() *Entropy {
	return &Entropy{}
}

func (x *Entropy) Name() types.DetectorName {
	return types.DetectorEntropy
}

func (x *Entropy) Detect(input *model.DiffInput) []*model.Finding {
	var findings []*model.Finding
	seen := map[string]struct{}{}

	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		findings = append(findings, input.NewFinding(types.ReasonHighEntropy, types.ConfidenceLow, s))
	}

	for _, line := range strings.Split(input.Text, "\n") {
		for _, word := range strings.Fields(trimDiffMarker(line)) {
			for _, s := range StringsOfSet(word, Base64Chars) {
				if ShannonEntropy(s, Base64Chars) > base64Threshold {
					add(s)
				}
			}
			for _, s := range StringsOfSet(word, HexChars) {
				if ShannonEntropy(s, HexChars) > hexThreshold {
					add(s)
				}
			}
		}
	}

	return findings
}

// ShannonEntropy computes entropy of data over characters of charset in bits per character
func ShannonEntropy(data, charset string) float64 {
	if data == "" {
		return 0
	}

	counts := make(map[rune]int, len(charset))
	total := 0
	for _, c := range data {
		counts[c]++
		total++
	}

	var entropy float64
	for _, c := range charset {
		n := counts[c]
		if n == 0 {
			continue
		}
		p := float64(n) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// StringsOfSet returns maximal runs in word made of charset characters and longer than the threshold
func StringsOfSet(word, charset string) []string {
	var (
		runs    []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > minRunLength {
			runs = append(runs, current.String())
		}
		current.Reset()
	}

	for _, c := range word {
		if strings.ContainsRune(charset, c) {
			current.WriteRune(c)
		} else {
			flush()
		}
	}
	flush()

	return runs
}

// trimDiffMarker drops the leading +/- of a patch line so that the marker never becomes part of a token
func trimDiffMarker(line string) string {
	if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
		return line[1:]
	}
	return line
}
