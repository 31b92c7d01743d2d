package detector

import (
	_ "embed"
	"encoding/json"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

//go:embed rules.json
var rulesJSON []byte

// Rule is a named regular expression. If the expression has a capture group, the first group is reported.
type Rule struct {
	Name    types.Reason
	Pattern *regexp.Regexp
}

type ruleDef struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// builtinRules is compiled once at package initialization and never modified
var builtinRules = mustLoadRules(rulesJSON)

func mustLoadRules(raw []byte) []Rule {
	rules, err := LoadRules(raw)
	if err != nil {
		panic(err)
	}
	return rules
}

// LoadRules parses a JSON rule table: [{"name": "...", "pattern": "..."}]
func LoadRules(raw []byte) ([]Rule, error) {
	var defs []ruleDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, goerr.Wrap(err, "failed to parse rule table")
	}

	rules := make([]Rule, 0, len(defs))
	for _, def := range defs {
		ptn, err := regexp.Compile(def.Pattern)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to compile rule", goerr.V("name", def.Name))
		}
		rules = append(rules, Rule{Name: types.Reason(def.Name), Pattern: ptn})
	}
	return rules, nil
}

// BuiltinRules returns a copy of the built-in rule table
func BuiltinRules() []Rule {
	return append([]Rule(nil), builtinRules...)
}

// Pattern matches every rule against the whole diff text
type Pattern struct {
	rules []Rule
}

var _ interfaces.Detector = (*Pattern)(nil)

type PatternOption func(*Pattern)

// WithRules replaces the built-in rule table
func WithRules(rules []Rule) PatternOption {
	return func(x *Pattern) {
		x.rules = rules
	}
}

func NewPattern(options ...PatternOption) *Pattern {
	x := &Pattern{rules: builtinRules}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *Pattern) Name() types.DetectorName {
	return types.DetectorPattern
}

func (x *Pattern) Detect(input *model.DiffInput) []*model.Finding {
	var findings []*model.Finding
	for _, rule := range x.rules {
		for _, m := range rule.Pattern.FindAllStringSubmatch(input.Text, -1) {
			s := m[0]
			if len(m) > 1 {
				s = m[1]
			}
			if s == "" {
				continue
			}
			findings = append(findings, input.NewFinding(rule.Name, types.ConfidenceHigh, s))
		}
	}
	return findings
}
