package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSiteRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	content := `sites:
  - host_contains: chat.example
    marker_attr: data-turn
  - host_contains: forum.example
    marker_attr: data-post-id
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	rules, err := LoadSiteRules(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].HostContains != "chat.example" || rules[0].MarkerAttr != "data-turn" {
		t.Errorf("unexpected first rule: %+v", rules[0])
	}
}

func TestLoadSiteRulesEmptyPath(t *testing.T) {
	rules, err := LoadSiteRules("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rules != nil {
		t.Errorf("expected nil rules for empty path, got %+v", rules)
	}
}

func TestLoadSiteRulesIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	content := `sites:
  - host_contains: chat.example
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadSiteRules(path); err == nil {
		t.Fatal("expected error for rule missing marker_attr")
	}
}

func TestLoadSiteRulesMissingFile(t *testing.T) {
	if _, err := LoadSiteRules(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
