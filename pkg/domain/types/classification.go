package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

type Classification string

const (
	ClassificationUnclassified  Classification = "UNCLASSIFIED"
	ClassificationFalsePositive Classification = "FALSE_POSITIVE"
	ClassificationTruePositive  Classification = "TRUE_POSITIVE"
	ClassificationRevoked       Classification = "REVOKED"
	ClassificationTestData      Classification = "TEST_DATA"
)

var classifications = []Classification{
	ClassificationUnclassified,
	ClassificationFalsePositive,
	ClassificationTruePositive,
	ClassificationRevoked,
	ClassificationTestData,
}

// Resolved returns true if the classification means the finding no longer blocks a pipeline.
// TRUE_POSITIVE is a confirmed live secret and stays blocking until it is acknowledged.
func (x Classification) Resolved() bool {
	switch x {
	case "", ClassificationUnclassified, ClassificationTruePositive:
		return false
	default:
		return true
	}
}

func ParseClassification(s string) (Classification, error) {
	if s == "" {
		return "", nil
	}
	c := Classification(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range classifications {
		if v == c {
			return c, nil
		}
	}
	return "", goerr.Wrap(ErrInvalidOption, "unknown classification", goerr.V("value", s))
}

// Transition is the reconcile outcome of a single finding identity
type Transition string

const (
	TransitionNew              Transition = "NEW"
	TransitionResolved         Transition = "RESOLVED"
	TransitionOutstandingUnack Transition = "OUTSTANDING_UNACK"
	TransitionOutstandingAck   Transition = "OUTSTANDING_ACK"
)

// Blocking returns true if a finding with the transition is part of the outstanding set
func (x Transition) Blocking() bool {
	return x == TransitionNew || x == TransitionOutstandingUnack
}
