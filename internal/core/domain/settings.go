package domain

// Storage backend identifiers for workflow snapshots.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Settings is the application configuration persisted in the config file.
type Settings struct {
	// Storage selects the workflow snapshot backend.
	Storage string `toml:"storage"`

	// DataDir is where the SQLite database lives. Empty means the
	// default under the user's home directory.
	DataDir string `toml:"data_dir"`

	// RedisURL is the redis connection URL for the redis backend.
	RedisURL string `toml:"redis_url"`

	// Verbose enables debug logging to stderr.
	Verbose bool `toml:"verbose"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Storage:  StorageSQLite,
		RedisURL: "redis://localhost:6379/0",
	}
}
