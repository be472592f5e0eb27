package config

const (
	defaultDataDir        = "~/.local/share/ymap"
	defaultSnapshotFile   = "y_map_channels.json"
	defaultExportFile     = "channels_all.csv"
	defaultHistoryFile    = "update_history.db"
	defaultRemoteURL      = "https://daodemo.tech/api/channels/with-map?source=inferred"
	defaultTimeoutSeconds = 60
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			SnapshotFile: defaultSnapshotFile,
			ExportFile:   defaultExportFile,
		},
		Remote: Remote{
			URL:            defaultRemoteURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
