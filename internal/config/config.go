// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ukaji3/blockup-go/internal/logging"
	"github.com/ukaji3/blockup-go/pkg/blockup"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Workbook names the sheets to read
	Workbook WorkbookConfig `json:"workbook"`

	// Pricing contains pricing switches
	Pricing PricingConfig `json:"pricing"`

	// Report contains the PDF report texts
	Report ReportConfig `json:"report"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// WorkbookConfig names the sheets of the input workbook
type WorkbookConfig struct {
	BOMSheet       string `json:"bom_sheet"`
	ChecklistSheet string `json:"checklist_sheet"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// PriceFlatParts costs flat parts with the main-plate formula
	PriceFlatParts bool `json:"price_flat_parts"`

	// CurrencySymbol prefixes amounts in reports
	CurrencySymbol string `json:"currency_symbol"`
}

// ReportConfig contains the texts printed on the PDF report
type ReportConfig struct {
	Company string `json:"company"`
	Title   string `json:"title"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default stdout format (json, text)
	DefaultFormat string `json:"default_format"`

	// Pretty indents JSON output
	Pretty bool `json:"pretty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Workbook: WorkbookConfig{
			BOMSheet:       blockup.DefaultBOMSheet,
			ChecklistSheet: blockup.DefaultChecklistSheet,
		},
		Pricing: PricingConfig{
			PriceFlatParts: false,
			CurrencySymbol: "₹",
		},
		Report: ReportConfig{
			Company: "Uday Precision Solutions",
			Title:   "Blockup Cost Sheet",
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			Pretty:        false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.blockup.json
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".blockup.json"
	}
	return filepath.Join(homeDir, ".blockup.json")
}

// Load loads configuration from a file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Options converts the configuration into extraction options.
func (c *Config) Options() blockup.Options {
	return blockup.Options{
		BOMSheet:       c.Workbook.BOMSheet,
		ChecklistSheet: c.Workbook.ChecklistSheet,
		PriceFlatParts: c.Pricing.PriceFlatParts,
		Logger:         logging.Logger,
	}
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
