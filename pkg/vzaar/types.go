package vzaar

import (
	"fmt"
	"strconv"
	"strings"
)

// Params are query parameters forwarded unchanged to the API.
type Params map[string]string

// ListOptions filters and paginates a video listing.
type ListOptions struct {
	// Count is the page size (API default 20, maximum 100).
	Count int
	Page  int
	// Sort is "asc" (least recent first) or "desc".
	Sort  string
	Title string
	Extra Params
}

// Params returns the query parameters for the listing.
func (o ListOptions) Params() Params {
	out := make(Params, len(o.Extra)+4)
	for k, v := range o.Extra {
		out[k] = v
	}
	if o.Count > 0 {
		out["count"] = strconv.Itoa(o.Count)
	}
	if o.Page > 0 {
		out["page"] = strconv.Itoa(o.Page)
	}
	if s := strings.TrimSpace(o.Sort); s != "" {
		out["sort"] = s
	}
	if s := strings.TrimSpace(o.Title); s != "" {
		out["title"] = s
	}
	return out
}

// Signature is the upload authorisation returned by PrepareUpload.
type Signature map[string]any

func (s Signature) str(key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// GUID identifies the upload when it is later processed.
func (s Signature) GUID() string { return s.str("guid") }

// UploadHostname is where the file must be sent.
func (s Signature) UploadHostname() string { return s.str("upload_hostname") }

// Key is the object key the upload is stored under.
func (s Signature) Key() string { return s.str("key") }

// Profile selects the encoding size of a processed video.
type Profile int

const (
	ProfileSmall Profile = iota + 1
	ProfileMedium
	ProfileLarge
	ProfileHighDefinition
	ProfileOriginal
)

var profileNames = map[Profile]string{
	ProfileSmall:          "small",
	ProfileMedium:         "medium",
	ProfileLarge:          "large",
	ProfileHighDefinition: "high_definition",
	ProfileOriginal:       "original",
}

// Valid reports whether p is one of the five known profiles.
func (p Profile) Valid() bool {
	_, ok := profileNames[p]
	return ok
}

func (p Profile) String() string {
	if name, ok := profileNames[p]; ok {
		return name
	}
	return fmt.Sprintf("profile(%d)", int(p))
}

// ParseProfile accepts a profile name or its number.
func ParseProfile(s string) (Profile, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if p := Profile(n); p.Valid() {
			return p, nil
		}
		return 0, fmt.Errorf("unknown profile %q", s)
	}
	for p, name := range profileNames {
		if name == s || strings.ReplaceAll(name, "_", " ") == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown profile %q", s)
}

// PrepareUploadOptions describe the file about to be uploaded.
type PrepareUploadOptions struct {
	Uploader string
	Filename string
	Filesize int64
}

// ProcessOptions describe the video created from an uploaded file.
type ProcessOptions struct {
	GUID           string
	IngestRecipeID string
	Title          string
	Description    string
	// Profile is left to the account default when zero.
	Profile Profile
	// ReplaceID names an existing video to replace.
	ReplaceID int64
	// Transcoding forces (true) or skips (false) transcoding of mp4/flv sources.
	Transcoding *bool
	Labels      []string
}

// EditOptions hold the video fields to change; zero values are left untouched.
type EditOptions struct {
	Title       string
	Description string
	Private     *bool
	SEOURL      string
}

// EmbedMetadata holds the oEmbed style fields returned by Edit.
type EmbedMetadata map[string]string

// embedKeys are extracted from the edit response, in this order.
var embedKeys = []string{
	"type", "version", "title", "author_name", "author_url",
	"provider_name", "provider_url", "html", "height", "width",
}

// Bool returns a pointer to b, for optional flags.
func Bool(b bool) *bool { return &b }
