package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the settings file name looked up in the working
// directory when no --config flag is given.
const DefaultFile = "finsight.yaml"

// Settings represents the top-level finsight.yaml configuration. The
// reference payment and its interval drive the fixed-payment
// prediction; keywords populate the description filter choices.
type Settings struct {
	ReferencePayment    string   `yaml:"reference_payment"`
	PaymentIntervalDays int      `yaml:"payment_interval_days"`
	Keywords            []string `yaml:"keywords"`
}

// ReferenceAmount parses the configured payment amount.
func (s *Settings) ReferenceAmount() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s.ReferencePayment)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing reference_payment %q: %w", s.ReferencePayment, err)
	}
	return d, nil
}

// Load reads a finsight.yaml file from disk.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &s, nil
}

// Save writes Settings to a YAML file.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns Settings matching the statement this tool was first
// built around: a fortnightly 1778.54 rent payment and the common
// description keywords.
func Default() *Settings {
	return &Settings{
		ReferencePayment:    "1778.54",
		PaymentIntervalDays: 14,
		Keywords: []string{
			"NRMA INSURANCE",
			"OSCAR PROPERTY",
			"Internal Transfer",
			"Osko Payment",
			"SUNCORP",
			"SWIFT transfer",
			"Trial",
		},
	}
}
