package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the diagnostics configuration read from LINEGREP_*
// environment variables. None of these affect which lines match.
type Settings struct {
	// Verbose sets the diagnostic logging level
	Verbose int

	// NoColor disables colored error reporting
	NoColor bool
}

// LoadSettings reads diagnostics settings from the environment and validates
// them.
func LoadSettings() (Settings, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("verbose", 0)
	v.SetDefault("no_color", false)

	// Configure environment variables
	v.SetEnvPrefix("LINEGREP")
	v.AutomaticEnv()

	v.BindEnv("verbose")
	v.BindEnv("no_color")

	// Process verbosity level from string of 'v's
	if verboseStr := v.GetString("verbose"); verboseStr != "" {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	s := Settings{
		Verbose: v.GetInt("verbose"),
		NoColor: v.GetBool("no_color"),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks if the settings are valid
func (s Settings) Validate() error {
	if s.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	return nil
}
