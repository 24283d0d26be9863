// Package constants provides shared constants for the wolfpack-lending application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format (amortization schedule)
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format (full report)
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "WOLFPACK"
)

// Logging defaults
const (
	// DefaultLogLevel keeps log lines out of the interactive prompts
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the default zap encoder
	DefaultLogFormat = "json"
)
