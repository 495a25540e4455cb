package network

import (
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
)

// SuffixRule strips a variant marker such as "Sepolia" or "-test" from the end
// of a network identifier. Class is what the marker says about the network.
type SuffixRule struct {
	Suffix   string              `yaml:"suffix" toml:"suffix"`
	Priority int                 `yaml:"priority,omitempty" toml:"priority"`
	Class    domain.NetworkClass `yaml:"class,omitempty" toml:"class"`
}

// Normalizer derives network families from raw identifiers
type Normalizer struct {
	rules   []SuffixRule      // longest suffix first
	aliases map[string]string // lower-cased alias -> canonical name
}

// NewNormalizer creates a normalizer from suffix rules and an alias map
// (raw identifier -> canonical name, matched case-insensitively).
func NewNormalizer(rules []SuffixRule, aliases map[string]string) *Normalizer {
	sorted := make([]SuffixRule, 0, len(rules))
	for _, r := range rules {
		r.Suffix = strings.ToLower(strings.TrimSpace(r.Suffix))
		if r.Suffix == "" {
			continue
		}
		sorted = append(sorted, r)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i].Suffix) != len(sorted[j].Suffix) {
			return len(sorted[i].Suffix) > len(sorted[j].Suffix)
		}
		return sorted[i].Priority > sorted[j].Priority
	})

	lowered := make(map[string]string, len(aliases))
	for alias, canonical := range aliases {
		lowered[strings.ToLower(alias)] = canonical
	}

	return &Normalizer{rules: sorted, aliases: lowered}
}

// Normalize returns the family of a raw network identifier
func (n *Normalizer) Normalize(raw string) domain.NetworkFamily {
	family, _ := n.Strip(raw)
	return domain.NetworkFamily(family)
}

// Strip returns the family key of raw along with the rules that were stripped
// to reach it, outermost first.
//
// Each step resolves an alias and strips at most one suffix. Steps repeat until
// the name stops changing, so the result is a fixed point and normalizing it
// again is a no-op. If misconfigured aliases form a cycle, the smallest name
// of the cycle is the family.
func (n *Normalizer) Strip(raw string) (string, []SuffixRule) {
	current := raw
	var stripped []SuffixRule
	var visited []string
	seen := make(map[string]int)

	for {
		if idx, ok := seen[current]; ok {
			return slices.Min(visited[idx:]), stripped
		}
		seen[current] = len(visited)
		visited = append(visited, current)

		next := current
		if canonical, ok := n.aliases[strings.ToLower(next)]; ok {
			next = canonical
		}
		rule, rest, ok := n.match(next)
		if ok {
			next = rest
		}
		if next == current {
			return current, stripped
		}
		if ok {
			stripped = append(stripped, rule)
		}
		current = next
	}
}

// match finds the longest rule ending name at a token boundary. A match that
// would leave nothing behind is not applied.
func (n *Normalizer) match(name string) (SuffixRule, string, bool) {
	for _, rule := range n.rules {
		if len(name) < len(rule.Suffix) {
			continue
		}
		cut := len(name) - len(rule.Suffix)
		if !strings.EqualFold(name[cut:], rule.Suffix) || !atBoundary(name, cut, rule.Suffix) {
			continue
		}
		rest := strings.TrimRightFunc(name[:cut], isSeparator)
		if rest == "" {
			return SuffixRule{}, "", false
		}
		return rule, rest, true
	}
	return SuffixRule{}, "", false
}

// atBoundary reports whether a suffix starting at cut begins a new token:
// after a separator, at a camelCase hump, or when the suffix carries its own
// separator ("-test").
func atBoundary(name string, cut int, suffix string) bool {
	if cut == 0 || isSeparator(rune(suffix[0])) {
		return true
	}
	prev := rune(name[cut-1])
	if isSeparator(prev) {
		return true
	}
	first := rune(name[cut])
	return unicode.IsUpper(first) && (unicode.IsLower(prev) || unicode.IsDigit(prev))
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.'
}
