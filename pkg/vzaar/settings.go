package vzaar

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the root of the v2 API.
const DefaultBaseURL = "https://api.vzaar.com/api/v2/"

// Settings carries the credentials and upload configuration of a Client.
type Settings struct {
	ClientID    string
	AuthToken   string
	RedirectURL string
	// MaxVideoSize is the largest upload in bytes; zero disables the check.
	MaxVideoSize int64
	BaseURL      string
}

// SettingsSource supplies Settings from an external configuration provider.
type SettingsSource interface {
	VzaarSettings() (Settings, error)
}

// SettingsFunc adapts a function to SettingsSource.
type SettingsFunc func() (Settings, error)

// VzaarSettings calls f.
func (f SettingsFunc) VzaarSettings() (Settings, error) { return f() }

func sanitizeSettings(s Settings) Settings {
	s.ClientID = strings.TrimSpace(s.ClientID)
	s.AuthToken = strings.TrimSpace(s.AuthToken)
	s.RedirectURL = strings.TrimSpace(s.RedirectURL)
	s.BaseURL = strings.TrimSpace(s.BaseURL)
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(s.BaseURL, "/") {
		s.BaseURL += "/"
	}
	return s
}

func validateSettings(s Settings) error {
	if s.ClientID == "" || s.AuthToken == "" {
		return ErrMissingCredentials
	}
	if s.MaxVideoSize < 0 {
		return fmt.Errorf("vzaar: max video size must not be negative (got %d)", s.MaxVideoSize)
	}
	return nil
}
