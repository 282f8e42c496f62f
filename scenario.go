package validkit

import "fmt"

// ScenarioDefault is the conventional scenario name for models validated
// outside any specific usage context.
const ScenarioDefault = "default"

// activeAttributes resolves the attributes active under a scenario.
//
// Models with an explicit scenario map get exactly the attributes listed for
// that scenario, in declaration order, deduplicated by first occurrence; an
// unknown scenario is a configuration fault unless fallback is set, in which
// case every declared attribute is active. Models without a scenario map
// activate all declared attributes in any scenario.
func activeAttributes(m Model, scenario string, fallback bool) ([]string, error) {
	if sm, ok := m.(ScenarioModel); ok {
		if scenarios := sm.Scenarios(); scenarios != nil {
			attrs, ok := scenarios[scenario]
			if !ok {
				if !fallback {
					return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, scenario)
				}
				return dedup(m.Attributes()), nil
			}
			return dedup(attrs), nil
		}
	}
	return dedup(m.Attributes()), nil
}

// dedup preserves first-occurrence order.
func dedup(attrs []string) []string {
	seen := make(map[string]struct{}, len(attrs))
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// intersect returns the members of attrs that are present in the active set,
// preserving the order of attrs.
func intersect(attrs, active []string) []string {
	set := make(map[string]struct{}, len(active))
	for _, a := range active {
		set[a] = struct{}{}
	}
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if _, ok := set[a]; ok {
			out = append(out, a)
		}
	}
	return out
}
