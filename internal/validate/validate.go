// Package validate runs rule-based checks over transactions before the
// engine computes on them. Rules either hard-fail a transaction
// (severity error) or annotate it (severity warning); the first failed
// error-severity rule becomes the ValidationError callers receive.
package validate

import (
	"niyam/internal/domain"
)

// Severity grades a rule: error failures reject the transaction,
// warning failures only annotate the report.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Status is the report-level rollup of all rule outcomes.
type Status string

const (
	StatusValid   Status = "valid"
	StatusWarning Status = "warning"
	StatusInvalid Status = "invalid"
)

// Result is the outcome of one rule check against one field.
type Result struct {
	RuleKey   string   `json:"rule_key"`
	Severity  Severity `json:"severity"`
	Passed    bool     `json:"passed"`
	FieldPath string   `json:"field_path"`
	Expected  string   `json:"expected,omitempty"`
	Actual    string   `json:"actual,omitempty"`
	Message   string   `json:"message"`
}

// Rule is a single named check over a transaction.
type Rule interface {
	RuleKey() string
	RuleName() string
	Severity() Severity
	Check(tx *domain.Transaction) []Result
}

// rule wraps a check function with its metadata.
type rule struct {
	key  string
	name string
	sev  Severity
	fn   func(tx *domain.Transaction) []Result
}

func (r *rule) RuleKey() string    { return r.key }
func (r *rule) RuleName() string   { return r.name }
func (r *rule) Severity() Severity { return r.sev }

func (r *rule) Check(tx *domain.Transaction) []Result {
	results := r.fn(tx)
	for i := range results {
		results[i].RuleKey = r.key
		results[i].Severity = r.sev
	}
	return results
}

// Registry maps rule keys to rules.
type Registry struct {
	rules map[string]Rule
	order []string
}

// NewRegistry creates a registry over the given rules.
func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{rules: make(map[string]Rule, len(rules))}
	for _, rl := range rules {
		r.Register(rl)
	}
	return r
}

// Register adds a rule, replacing any rule with the same key.
func (r *Registry) Register(rl Rule) {
	if _, exists := r.rules[rl.RuleKey()]; !exists {
		r.order = append(r.order, rl.RuleKey())
	}
	r.rules[rl.RuleKey()] = rl
}

// Get returns the rule for a key, or nil.
func (r *Registry) Get(key string) Rule {
	return r.rules[key]
}

// All returns the registered rules in registration order.
func (r *Registry) All() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.rules[k])
	}
	return out
}

// Summary counts rule outcomes for a report.
type Summary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Report is the outcome of running rules over one transaction.
type Report struct {
	Status  Status   `json:"status"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`

	firstErr *domain.ValidationError
}

// Err returns a ValidationError for the first failed error-severity
// rule, or nil when the transaction passed every error-severity check.
func (r *Report) Err() error {
	if r.firstErr == nil {
		return nil
	}
	return r.firstErr
}

// AllRules returns every built-in rule group in evaluation order.
func AllRules() []Rule {
	var all []Rule
	all = append(all, RequiredRules()...)
	all = append(all, FormatRules()...)
	all = append(all, LogicalRules()...)
	all = append(all, MathRules()...)
	all = append(all, CrossFieldRules()...)
	return all
}

// Run checks a transaction against every built-in rule.
func Run(tx *domain.Transaction) Report {
	return RunRules(tx, AllRules())
}

// RunRules checks a transaction against the given rules and rolls the
// outcomes up into a report.
func RunRules(tx *domain.Transaction, rules []Rule) Report {
	report := Report{Status: StatusValid}
	hasError := false
	hasWarning := false

	for _, rl := range rules {
		for _, res := range rl.Check(tx) {
			report.Results = append(report.Results, res)
			report.Summary.Total++
			if res.Passed {
				report.Summary.Passed++
				continue
			}
			report.Summary.Failed++
			if rl.Severity() == SeverityError {
				report.Summary.Errors++
				hasError = true
				if report.firstErr == nil {
					report.firstErr = &domain.ValidationError{Field: res.FieldPath, Message: res.Message}
				}
			} else {
				report.Summary.Warnings++
				hasWarning = true
			}
		}
	}

	switch {
	case hasError:
		report.Status = StatusInvalid
	case hasWarning:
		report.Status = StatusWarning
	}
	return report
}
