package convert

import "strings"

type Strategy int

const (
	StrategyGeneric Strategy = iota
	StrategyFragments
)

func (s Strategy) String() string {
	if s == StrategyFragments {
		return "fragments"
	}
	return "generic"
}

// SiteRule switches a host over to fragment extraction. Matching is
// plain substring containment on the lowercased hostname.
type SiteRule struct {
	HostContains string `yaml:"host_contains"`
	MarkerAttr   string `yaml:"marker_attr"`
}

// DefaultRules covers claude.ai, which renders conversation turns as
// independent subtrees that whole-page extraction collapses or drops.
func DefaultRules() []SiteRule {
	return []SiteRule{
		{HostContains: "claude.ai", MarkerAttr: "data-test-render-count"},
	}
}

type Router struct {
	rules []SiteRule
}

// NewRouter builds a router from the default rules plus any extras
// loaded from configuration. Extras cannot remove the defaults.
func NewRouter(extra ...SiteRule) *Router {
	return &Router{rules: append(DefaultRules(), extra...)}
}

// Route returns the strategy for a hostname and, for the fragment
// strategy, the marker attribute to query. Empty or unknown hostnames
// fall back to generic extraction.
func (r *Router) Route(hostname string) (Strategy, string) {
	host := strings.ToLower(strings.TrimSpace(hostname))
	if host == "" {
		return StrategyGeneric, ""
	}
	for _, rule := range r.rules {
		if rule.HostContains == "" || rule.MarkerAttr == "" {
			continue
		}
		if strings.Contains(host, strings.ToLower(rule.HostContains)) {
			return StrategyFragments, rule.MarkerAttr
		}
	}
	return StrategyGeneric, ""
}
