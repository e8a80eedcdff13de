package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateRules(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.SourceDir) == "" {
		return errors.New("paths.source_dir must be set")
	}
	if strings.TrimSpace(c.Paths.ArchiveDir) == "" {
		return errors.New("paths.archive_dir must be set")
	}
	if c.Paths.SourceDir == c.Paths.ArchiveDir {
		return errors.New("paths.archive_dir must differ from paths.source_dir")
	}
	return nil
}

func (c *Config) validateRules() error {
	sep := c.Rules.Separator
	if len(sep) != 1 {
		return fmt.Errorf("rules.separator must be a single character, got %q", sep)
	}
	switch sep[0] {
	case '.', '/', '\\':
		return fmt.Errorf("rules.separator must not be %q", sep)
	}
	if sep[0] >= '0' && sep[0] <= '9' {
		return errors.New("rules.separator must not be a digit")
	}
	if err := ensurePositiveMap(map[string]int{
		"rules.max_day":   c.Rules.MaxDay,
		"rules.max_month": c.Rules.MaxMonth,
		"rules.max_year":  c.Rules.MaxYear,
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.PollInterval <= 0 {
		return errors.New("workflow.poll_interval must be positive (seconds)")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
