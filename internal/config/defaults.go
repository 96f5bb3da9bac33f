package config

const (
	defaultConfigPath   = "~/.config/albumdupes/config.toml"
	projectConfigName   = "albumdupes.toml"
	defaultThreshold    = 0.85
	defaultAlgorithm    = "ratio"
	defaultArtistColumn = 1
	defaultAlbumColumn  = 2
	defaultOutputFormat = "text"
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
	defaultLogOutput    = "stderr"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Matching: Matching{
			Threshold: defaultThreshold,
			Algorithm: defaultAlgorithm,
		},
		Input: Input{
			ArtistColumn: defaultArtistColumn,
			AlbumColumn:  defaultAlbumColumn,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Output: defaultLogOutput,
		},
	}
}
