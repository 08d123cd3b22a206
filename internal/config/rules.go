package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// ProductRule maps one product regex pattern to its replacement token.
// Rules are applied in declared order so more specific patterns can be
// listed ahead of broader ones.
type ProductRule struct {
	Pattern string `yaml:"pattern" validate:"required"`
	Token   string `yaml:"token" validate:"required"`
}

// TickerRules is the per-ticker masking configuration: one company-name
// regex plus an ordered list of product rules. An empty product list is
// valid. An empty company pattern means the masker falls back to
// matching the literal ticker symbol as a whole word.
type TickerRules struct {
	Company  string        `yaml:"company"`
	Products []ProductRule `yaml:"products" validate:"dive"`
}

// RuleFile is the on-disk shape of a masking rule override file.
type RuleFile struct {
	Tickers map[string]TickerRules `yaml:"tickers" validate:"required,dive"`
}

// LoadRuleFile reads and validates a YAML masking rule file.
func LoadRuleFile(path string) (map[string]TickerRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file %s: %w", path, err)
	}

	var file RuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rule file %s: %w", path, err)
	}

	validate := validator.New()
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("rule file %s failed validation: %w", path, err)
	}

	return file.Tickers, nil
}
