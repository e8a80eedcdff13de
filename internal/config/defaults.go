package config

const (
	defaultSourceDir    = "~/scans/inbox"
	defaultArchiveDir   = "~/scans/archive"
	defaultLogDir       = "~/.local/share/scansort/logs"
	defaultSeparator    = "_"
	defaultMaxDay       = 31
	defaultMaxMonth     = 12
	defaultMaxYear      = 2099
	defaultPollInterval = 60
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir:  defaultSourceDir,
			ArchiveDir: defaultArchiveDir,
			LogDir:     defaultLogDir,
		},
		Rules: Rules{
			Separator: defaultSeparator,
			MaxDay:    defaultMaxDay,
			MaxMonth:  defaultMaxMonth,
			MaxYear:   defaultMaxYear,
		},
		Workflow: Workflow{
			PollInterval: defaultPollInterval,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
