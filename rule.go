package validkit

import "fmt"

// Rule is one declarative rule specification. Rules apply in declaration
// order; within a rule, attributes are processed in the order listed here.
//
// Exactly one of Type, Checker or Inline must be set:
//
//   - Type resolves a builtin alias through the engine's registry, with
//     Params passed to the factory.
//   - Checker binds a validator instance directly.
//   - Inline binds a model method or closure that reports failures itself
//     through the Context.
type Rule struct {
	// Name enables override and removal of inherited rules via MergeRules.
	// Within a single rule list, non-empty names must be unique.
	Name string

	// Attributes lists the attribute names this rule applies to.
	Attributes []string

	// Type is a registered validator alias, e.g. "required" or "email".
	Type string

	// Checker is a directly bound validator instance.
	Checker Checker

	// Inline is a bound function validator. It reports failures through
	// ctx.AddError / ctx.AddModelError and returns an error only for fatal
	// faults.
	Inline InlineFunc

	// On restricts the rule to the listed scenarios. Empty means all
	// scenarios. Mutually exclusive with Except.
	On []string

	// Except excludes the listed scenarios. Mutually exclusive with On.
	Except []string

	// When gates the rule at run time. A nil predicate always passes.
	When func(Model) bool

	// SkipOnEmpty overrides the checker's default empty-input policy.
	// When nil, the checker decides (true unless it implements
	// SkipEmptyDefault and says otherwise).
	SkipOnEmpty *bool

	// SkipOnError controls whether the rule is bypassed for attributes that
	// already carry an error from an earlier rule. Defaults to true.
	SkipOnError *bool

	// IsEmpty overrides the default emptiness predicate for this rule.
	IsEmpty func(any) bool

	// Batch makes the rule receive its full attribute set in a single
	// invocation instead of once per attribute. Skip policies are then
	// evaluated all-or-nothing over the whole set.
	Batch bool

	// Params carries extra parameters for alias-built validators, including
	// an optional custom "message".
	Params map[string]any

	// Remove marks the rule for deletion inside MergeRules overrides. It has
	// no meaning in a plain rule list.
	Remove bool
}

// Bool returns a pointer to b, for use with the tri-state skip fields.
func Bool(b bool) *bool { return &b }

// appliesTo reports whether the rule's scenario filter admits the scenario.
// An unfiltered rule applies to every scenario.
func (r Rule) appliesTo(scenario string) bool {
	if len(r.On) > 0 {
		for _, s := range r.On {
			if s == scenario {
				return true
			}
		}
		return false
	}
	for _, s := range r.Except {
		if s == scenario {
			return false
		}
	}
	return true
}

// validate performs the eager structural checks shared by materialization and
// MergeRules. Removal markers are rejected outside a merge.
func (r Rule) validate() error {
	if len(r.On) > 0 && len(r.Except) > 0 {
		return fmt.Errorf("%w: rule %q", ErrConflictingScenarioFilter, r.describe())
	}
	if len(r.Attributes) == 0 {
		return fmt.Errorf("%w: rule %q", ErrMissingAttributes, r.describe())
	}
	refs := 0
	if r.Type != "" {
		refs++
	}
	if r.Checker != nil {
		refs++
	}
	if r.Inline != nil {
		refs++
	}
	switch refs {
	case 0:
		return fmt.Errorf("%w: rule %q", ErrMissingValidator, r.describe())
	case 1:
		return nil
	default:
		return fmt.Errorf("%w: rule %q", ErrAmbiguousValidator, r.describe())
	}
}

func (r Rule) describe() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Type != "" {
		return fmt.Sprintf("%s %v", r.Type, r.Attributes)
	}
	return fmt.Sprintf("%v", r.Attributes)
}

// MergeRules merges override rules into a base list, the way a child model
// refines the rules it inherits. An override whose Name matches a base rule
// replaces it in place, keeping the original position; an override with
// Remove set deletes it; overrides that match nothing are appended in order.
// Unnamed overrides always append.
func MergeRules(base, overrides []Rule) []Rule {
	merged := make([]Rule, len(base))
	copy(merged, base)

	for _, o := range overrides {
		if o.Name == "" {
			merged = append(merged, o)
			continue
		}
		idx := -1
		for i, b := range merged {
			if b.Name == o.Name {
				idx = i
				break
			}
		}
		switch {
		case idx < 0 && o.Remove:
			// Removing a rule that does not exist is a no-op.
		case idx < 0:
			merged = append(merged, o)
		case o.Remove:
			merged = append(merged[:idx], merged[idx+1:]...)
		default:
			merged[idx] = o
		}
	}
	return merged
}
