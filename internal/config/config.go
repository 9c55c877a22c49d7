// Package config builds the runtime configuration from the environment and
// an optional .env file. All keys share the LABELGUARD_ prefix and the
// resulting Config is passed by parameter, never read from a global.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys understood by Load.
const (
	EnvLabelID           = "LABELGUARD_LABEL_ID"
	EnvExpirationFieldID = "LABELGUARD_EXPIRATION_FIELD_ID"
	EnvSignatoryFieldID  = "LABELGUARD_SIGNATORY_FIELD_ID"
	EnvFolderID          = "LABELGUARD_FOLDER_ID"
	EnvCCAddress         = "LABELGUARD_CC_ADDRESS"
	EnvSpreadsheetID     = "LABELGUARD_SPREADSHEET_ID"
	EnvSheetName         = "LABELGUARD_SHEET_NAME"
	EnvDaysThreshold     = "LABELGUARD_DAYS_THRESHOLD"
	EnvRunBudget         = "LABELGUARD_RUN_BUDGET"
)

// Defaults applied when the environment leaves a key unset.
const (
	DefaultSheetName     = "Expiring Documents"
	DefaultDaysThreshold = 90
	DefaultRunBudget     = 5 * time.Minute
)

// Config holds everything a pipeline run needs to know about its
// surroundings. Empty optional fields mean the corresponding feature is
// skipped (no folder scoping, no CC recipient).
type Config struct {
	// LabelID is the Drive label whose files are tracked
	LabelID string

	// ExpirationFieldID is the label field holding the expiration date
	ExpirationFieldID string

	// SignatoryFieldID is the label field naming the responsible signatory
	SignatoryFieldID string

	// FolderID restricts the scan to one folder subtree when set
	FolderID string

	// CCAddress is carbon-copied on every notification when set
	CCAddress string

	// SpreadsheetID is the spreadsheet the report is written to
	SpreadsheetID string

	// SheetName is the sheet tab inside the report spreadsheet
	SheetName string

	// DaysThreshold is the look-ahead window in days
	DaysThreshold int

	// RunBudget bounds the wall clock time of a pipeline run
	RunBudget time.Duration
}

// Load reads an optional .env file and then the process environment.
// A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	days, err := getEnvIntOrDefault(EnvDaysThreshold, DefaultDaysThreshold)
	if err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", EnvDaysThreshold, days)
	}

	budget, err := getEnvDurationOrDefault(EnvRunBudget, DefaultRunBudget)
	if err != nil {
		return nil, err
	}

	return &Config{
		LabelID:           os.Getenv(EnvLabelID),
		ExpirationFieldID: os.Getenv(EnvExpirationFieldID),
		SignatoryFieldID:  os.Getenv(EnvSignatoryFieldID),
		FolderID:          os.Getenv(EnvFolderID),
		CCAddress:         os.Getenv(EnvCCAddress),
		SpreadsheetID:     os.Getenv(EnvSpreadsheetID),
		SheetName:         getEnvOrDefault(EnvSheetName, DefaultSheetName),
		DaysThreshold:     days,
		RunBudget:         budget,
	}, nil
}

// ValidateForScan checks that the fields a scan run cannot do without are
// present.
func (c *Config) ValidateForScan() error {
	if c.LabelID == "" {
		return fmt.Errorf("%s is required", EnvLabelID)
	}
	if c.ExpirationFieldID == "" {
		return fmt.Errorf("%s is required", EnvExpirationFieldID)
	}
	return nil
}

// CC returns the CC recipient list for notifications, or nil when no CC
// address is configured.
func (c *Config) CC() []string {
	if c.CCAddress == "" {
		return nil
	}
	return []string{c.CCAddress}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return n, nil
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return d, nil
}
