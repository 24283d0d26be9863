// Package config defines the data structures related to configuration and
// includes functions for loading and checking the config.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/wolfpack-lending/pkg/constants"
	"github.com/iwvelando/wolfpack-lending/pkg/lending"
	"github.com/iwvelando/wolfpack-lending/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for wolfpack-lending.
type Configuration struct {
	Policy  lending.Policy `mapstructure:"policy" yaml:"policy"`
	Logging LoggingConfig  `mapstructure:"logging" yaml:"logging,omitempty"`
	Output  OutputConfig   `mapstructure:"output" yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, yaml
	Schedule bool   `mapstructure:"schedule" yaml:"schedule,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys absent from the file keep their defaults, and
// WOLFPACK_-prefixed environment variables override both (for example
// WOLFPACK_POLICY_EXPRESSFEE). An empty path loads defaults and environment
// only.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

func setDefaults(v *viper.Viper) {
	policy := lending.DefaultPolicy()
	v.SetDefault("policy.minLoanAmount", policy.MinLoanAmount)
	v.SetDefault("policy.maxLoanAmount", policy.MaxLoanAmount)
	v.SetDefault("policy.minCreditScore", policy.MinCreditScore)
	v.SetDefault("policy.maxCreditScore", policy.MaxCreditScore)
	v.SetDefault("policy.minInterestRate", policy.MinInterestRate)
	v.SetDefault("policy.expressFee", policy.ExpressFee)
	v.SetDefault("policy.expressDays", policy.ExpressDays)
	v.SetDefault("policy.normalDays", policy.NormalDays)
	v.SetDefault("policy.termMonths", policy.TermMonths)
	v.SetDefault("policy.tiers", policy.Tiers)

	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.format", constants.DefaultLogFormat)
	v.SetDefault("logging.outputFile", "")

	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.schedule", false)
}

// Validate returns an error if the configuration cannot be used.
func (c *Configuration) Validate() error {
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			return err
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	policy := c.Policy

	if policy.ExpressDays >= policy.NormalDays {
		warnings = append(warnings, fmt.Sprintf("express processing (%d days) is not faster than normal processing (%d days)",
			policy.ExpressDays, policy.NormalDays))
	}

	for i, tier := range policy.Tiers {
		if tier.MinCreditScore > policy.MaxCreditScore {
			warnings = append(warnings, fmt.Sprintf("tier %s requires credit score %d above the maximum %d and can never match",
				tier.Name, tier.MinCreditScore, policy.MaxCreditScore))
		}
		if tier.MinCreditScore <= policy.MinCreditScore && tier.IncomeRatio == 0 && i < len(policy.Tiers)-1 {
			warnings = append(warnings, fmt.Sprintf("tier %s matches every application; later tiers are unreachable",
				tier.Name))
		}
	}

	return warnings
}
