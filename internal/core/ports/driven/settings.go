package driven

import "github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"

// SettingsStore persists application settings.
// Implementations handle the storage format (e.g. TOML files).
type SettingsStore interface {
	// Load reads settings from storage. A missing file yields the
	// defaults, not an error.
	Load() (domain.Settings, error)

	// Save persists the settings.
	Save(settings domain.Settings) error

	// Path returns the backing file path, for display.
	Path() string
}
