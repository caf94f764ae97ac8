package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"clipmark/convert"
)

type siteRulesFile struct {
	Sites []convert.SiteRule `yaml:"sites"`
}

// LoadSiteRules reads extra fragment-extraction rules from a yaml file.
// An empty path means no extra rules; the built-in rules always apply.
func LoadSiteRules(path string) ([]convert.SiteRule, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site rules: %w", err)
	}

	var file siteRulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse site rules: %w", err)
	}

	for i, rule := range file.Sites {
		if rule.HostContains == "" || rule.MarkerAttr == "" {
			return nil, fmt.Errorf("site rule %d: host_contains and marker_attr are both required", i)
		}
	}
	return file.Sites, nil
}
