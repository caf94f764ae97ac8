package convert

import "testing"

func TestRouterRoute(t *testing.T) {
	testCases := []struct {
		name       string
		hostname   string
		expected   Strategy
		wantMarker string
	}{
		{"EmptyHostname", "", StrategyGeneric, ""},
		{"PlainHost", "example.com", StrategyGeneric, ""},
		{"ClaudeBare", "claude.ai", StrategyFragments, "data-test-render-count"},
		{"ClaudeSubdomain", "www.claude.ai", StrategyFragments, "data-test-render-count"},
		{"ClaudeEmbeddedInOtherHost", "fake-claude.ai.evil.com", StrategyFragments, "data-test-render-count"},
		{"ClaudeUppercase", "WWW.CLAUDE.AI", StrategyFragments, "data-test-render-count"},
		{"NearMiss", "claude.dev", StrategyGeneric, ""},
	}

	router := NewRouter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			strategy, marker := router.Route(tc.hostname)
			if strategy != tc.expected {
				t.Errorf("expected strategy %v, got %v", tc.expected, strategy)
			}
			if marker != tc.wantMarker {
				t.Errorf("expected marker %q, got %q", tc.wantMarker, marker)
			}
		})
	}
}

func TestRouterExtraRules(t *testing.T) {
	router := NewRouter(SiteRule{HostContains: "chat.example", MarkerAttr: "data-turn"})

	strategy, marker := router.Route("chat.example.org")
	if strategy != StrategyFragments || marker != "data-turn" {
		t.Fatalf("expected fragment strategy with data-turn, got %v %q", strategy, marker)
	}

	// Extra rules never shadow the built-in claude.ai rule.
	strategy, marker = router.Route("claude.ai")
	if strategy != StrategyFragments || marker != "data-test-render-count" {
		t.Fatalf("built-in rule lost: got %v %q", strategy, marker)
	}
}

func TestRouterIgnoresIncompleteRules(t *testing.T) {
	router := NewRouter(SiteRule{HostContains: "broken.example"})

	strategy, _ := router.Route("broken.example")
	if strategy != StrategyGeneric {
		t.Fatalf("rule without marker attr must not route to fragments")
	}
}
