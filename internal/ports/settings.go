package ports

import (
	"net/http"
	"sculink/internal/types"
)

// SettingsProvider hands out the current general settings snapshot.
type SettingsProvider interface {
	GeneralSettings() types.GeneralConfig
}

// HTTPClientProvider hands out the currently active HTTP client.
type HTTPClientProvider interface {
	Client() *http.Client
}
