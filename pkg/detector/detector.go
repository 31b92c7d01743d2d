// Package detector provides pure detectors mapping diff text of a changed file to findings.
package detector

import (
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
)

// Set runs every detector and returns the union of findings by identity
type Set []interfaces.Detector

func (x Set) Detect(input *model.DiffInput) *model.FindingSet {
	result := model.NewFindingSet()
	for _, d := range x {
		for _, f := range d.Detect(input) {
			result.Add(f)
		}
	}
	return result
}

func (x Set) Names() []string {
	names := make([]string, len(x))
	for i, d := range x {
		names[i] = string(d.Name())
	}
	return names
}
