package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/samvad-hq/vzaar-go/pkg/vzaar"
	"gopkg.in/yaml.v3"
)

// profilesFile represents the structure of the profiles configuration file.
type profilesFile struct {
	Profiles []Profile `json:"profiles" yaml:"profiles" toml:"profiles"`
}

// Profile is a named set of API credentials.
type Profile struct {
	ID           string `json:"id" yaml:"id" toml:"id"`
	ClientID     string `json:"client_id" yaml:"client_id" toml:"client_id"`
	AuthToken    string `json:"auth_token" yaml:"auth_token" toml:"auth_token"`
	RedirectURL  string `json:"redirect_url" yaml:"redirect_url" toml:"redirect_url"`
	MaxVideoSize int64  `json:"max_video_size" yaml:"max_video_size" toml:"max_video_size"`
	BaseURL      string `json:"base_url" yaml:"base_url" toml:"base_url"`
}

// Profiles materializes profile definitions loaded from a config file.
type Profiles struct {
	mu       sync.RWMutex
	profiles []Profile
	idx      map[string]Profile
}

// LoadProfiles loads profiles from a YAML, JSON or TOML file.
func LoadProfiles(path string) (*Profiles, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("profiles file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profiles file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	parsed, err := parseProfiles(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(parsed.Profiles) == 0 {
		return nil, errors.New("profiles file contains no profiles entries")
	}

	reg := &Profiles{
		profiles: make([]Profile, len(parsed.Profiles)),
		idx:      make(map[string]Profile, len(parsed.Profiles)),
	}
	for i := range parsed.Profiles {
		p := sanitizeProfile(parsed.Profiles[i])
		if err := validateProfile(p); err != nil {
			return nil, fmt.Errorf("profiles[%d]: %w", i, err)
		}
		if _, exists := reg.idx[p.ID]; exists {
			return nil, fmt.Errorf("duplicate profile id %q", p.ID)
		}
		reg.profiles[i] = p
		reg.idx[p.ID] = p
	}
	return reg, nil
}

// parseProfiles decodes the file with the decoder matching ext, or tries each when ext is unknown.
func parseProfiles(data []byte, ext string) (profilesFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
		{name: "toml", ext: ".toml", fn: toml.Unmarshal},
	}

	known := false
	for _, d := range decoders {
		if ext == d.ext {
			known = true
		}
	}

	for _, d := range decoders {
		if known && ext != d.ext {
			continue
		}
		var out profilesFile
		if err := d.fn(data, &out); err != nil {
			continue
		}
		// Without a known extension a lenient decoder may accept foreign input
		// and find nothing, so keep trying until one yields profiles.
		if known || len(out.Profiles) > 0 {
			return out, nil
		}
	}
	return profilesFile{}, errors.New("profiles file format not recognized (expected YAML, JSON or TOML)")
}

func sanitizeProfile(p Profile) Profile {
	p.ID = strings.TrimSpace(p.ID)
	p.ClientID = strings.TrimSpace(p.ClientID)
	p.AuthToken = strings.TrimSpace(p.AuthToken)
	p.RedirectURL = strings.TrimSpace(p.RedirectURL)
	p.BaseURL = strings.TrimSpace(p.BaseURL)
	return p
}

func validateProfile(p Profile) error {
	if p.ID == "" {
		return errors.New("id is required")
	}
	if p.ClientID == "" {
		return fmt.Errorf("client_id is required for profile %q", p.ID)
	}
	if p.AuthToken == "" {
		return fmt.Errorf("auth_token is required for profile %q", p.ID)
	}
	if p.MaxVideoSize < 0 {
		return fmt.Errorf("max_video_size must not be negative for profile %q", p.ID)
	}
	return nil
}

// ByID returns the profile by id.
func (r *Profiles) ByID(id string) (Profile, bool) {
	if r == nil {
		return Profile{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.idx[id]
	return p, ok
}

// All returns all configured profiles.
func (r *Profiles) All() []Profile {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// apply overlays the non-empty profile values on base.
func (p Profile) apply(base vzaar.Settings) vzaar.Settings {
	base.ClientID = p.ClientID
	base.AuthToken = p.AuthToken
	if p.RedirectURL != "" {
		base.RedirectURL = p.RedirectURL
	}
	if p.MaxVideoSize > 0 {
		base.MaxVideoSize = p.MaxVideoSize
	}
	if p.BaseURL != "" {
		base.BaseURL = p.BaseURL
	}
	return base
}
