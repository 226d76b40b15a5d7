package config

const (
	defaultUploadDir  = "~/.local/share/cardpress/uploads"
	defaultOutputDir  = "~/.local/share/cardpress/cards"
	defaultAssetsDir  = "~/.local/share/cardpress/assets"
	defaultLogDir     = "~/.local/share/cardpress/logs"
	defaultBind       = "127.0.0.1:5003"
	defaultFontFile   = "Hopone.ttf"
	defaultSMTPPort   = 587
	defaultLogFormat  = "auto"
	defaultLogLevel   = "info"

	defaultJanitorIntervalHours = 12

	defaultOutboxDrainInterval  = 30
	defaultOutboxMaxAttempts    = 5
	defaultOutboxBackoffSeconds = 60
	defaultOutboxBatchLimit     = 20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			UploadDir: defaultUploadDir,
			OutputDir: defaultOutputDir,
			AssetsDir: defaultAssetsDir,
			LogDir:    defaultLogDir,
			Bind:      defaultBind,
		},
		Render: Render{
			// Resolved against assets_dir during normalization when relative.
			FontPath: defaultFontFile,
		},
		SMTP: SMTP{
			Port: defaultSMTPPort,
		},
		Outbox: Outbox{
			DrainInterval:  defaultOutboxDrainInterval,
			MaxAttempts:    defaultOutboxMaxAttempts,
			BackoffSeconds: defaultOutboxBackoffSeconds,
			BatchLimit:     defaultOutboxBatchLimit,
		},
		Janitor: Janitor{
			Enabled:       true,
			IntervalHours: defaultJanitorIntervalHours,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
