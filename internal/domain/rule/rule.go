// Package rule evaluates ordered rule sets made of independent rules and
// exclusive groups.
//
// Every rule reads the original input and never the output of another rule.
// A rule with an empty Group is independent and is always evaluated. Rules
// sharing a Group form an if/else-if chain: the first one that matches fires
// and the rest of that group is skipped.
package rule

// Rule is one condition-to-score-delta mapping over input T.
type Rule[T any] struct {
	Match   func(T) bool
	Delta   func(T) int
	Explain func(T) string // nil when the rule contributes no explanation
	Name    string
	Group   string
}

// Exclusive reports whether the rule belongs to an exclusive group.
func (r Rule[T]) Exclusive() bool {
	return r.Group != ""
}

// Result records what happened to a single rule during evaluation.
type Result struct {
	Name    string `json:"name"`
	Group   string `json:"group,omitempty"`
	Fired   bool   `json:"fired"`
	Skipped bool   `json:"skipped,omitempty"`
	Delta   int    `json:"delta"`
}

// Outcome is the aggregate of evaluating a Set.
type Outcome struct {
	Explanations []string
	Results      []Result
	Delta        int
}

// Fired reports whether any rule fired.
func (o Outcome) Fired() bool {
	for _, r := range o.Results {
		if r.Fired {
			return true
		}
	}
	return false
}

// Set is an ordered list of rules.
type Set[T any] []Rule[T]

// Evaluate runs every rule in order against in.
func (s Set[T]) Evaluate(in T) Outcome {
	out := Outcome{
		Explanations: make([]string, 0),
		Results:      make([]Result, 0, len(s)),
	}
	settled := make(map[string]bool)

	for _, r := range s {
		res := Result{Name: r.Name, Group: r.Group}

		if r.Exclusive() && settled[r.Group] {
			res.Skipped = true
			out.Results = append(out.Results, res)
			continue
		}

		if r.Match(in) {
			res.Fired = true
			res.Delta = r.Delta(in)
			out.Delta += res.Delta
			if r.Explain != nil {
				if text := r.Explain(in); text != "" {
					out.Explanations = append(out.Explanations, text)
				}
			}
			if r.Exclusive() {
				settled[r.Group] = true
			}
		}
		out.Results = append(out.Results, res)
	}

	return out
}

// Points returns a delta function yielding a constant.
func Points[T any](n int) func(T) int {
	return func(T) int { return n }
}

// Text returns an explanation function yielding a constant.
func Text[T any](s string) func(T) string {
	return func(T) string { return s }
}

// Always matches every input; used for the else branch of an exclusive group.
func Always[T any](T) bool {
	return true
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
