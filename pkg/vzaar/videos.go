package vzaar

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/samvad-hq/vzaar-go/pkg/markup"
)

const (
	defaultTitle       = "Untitled"
	defaultDescription = "No description"
)

type dataEnvelope struct {
	Data map[string]any `json:"data"`
}

// VideoDetails returns the data of video id. params are sent as-is, e.g.
// borderless=true or embed_only=true.
func (c *Client) VideoDetails(ctx context.Context, id int64, params Params) (map[string]any, error) {
	endpoint := fmt.Sprintf("videos/%d", id)
	body, err := c.do(ctx, call{method: http.MethodGet, endpoint: endpoint, query: params})
	if err != nil {
		return nil, err
	}

	var env dataEnvelope
	if err := decodeJSON(endpoint, body, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: %s has no data", ErrMalformedResponse, endpoint)
	}
	return env.Data, nil
}

// VideoList returns one page of videos. The listing is scoped by the client
// credentials; username is only recorded in the request log.
func (c *Client) VideoList(ctx context.Context, username string, opts ListOptions) (map[string]any, error) {
	const endpoint = "videos"
	c.log.DebugObj("vzaar listing videos", "vzaar_video_list", map[string]any{
		"username": username,
		"page":     opts.Page,
		"count":    opts.Count,
	})

	body, err := c.do(ctx, call{method: http.MethodGet, endpoint: endpoint, query: opts.Params()})
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := decodeJSON(endpoint, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type prepareUploadBody struct {
	Uploader string `json:"uploader"`
	Filename string `json:"filename,omitempty"`
	Filesize int64  `json:"filesize,omitempty"`
}

// PrepareUpload requests a signature for a single-part upload. The returned
// GUID is passed to Process once the file has been sent to UploadHostname.
func (c *Client) PrepareUpload(ctx context.Context, opts PrepareUploadOptions) (Signature, error) {
	const endpoint = "signature/single/2"

	if limit := c.settings.MaxVideoSize; limit > 0 && opts.Filesize > limit {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrUploadTooLarge, opts.Filesize, limit)
	}

	payload := prepareUploadBody{
		Uploader: strings.TrimSpace(opts.Uploader),
		Filename: strings.TrimSpace(opts.Filename),
		Filesize: opts.Filesize,
	}
	if payload.Uploader == "" {
		payload.Uploader = "vzaar-go/" + Version
	}

	body, err := c.doJSON(ctx, call{method: http.MethodPost, endpoint: endpoint, expected: http.StatusCreated}, payload)
	if err != nil {
		return nil, err
	}

	var env dataEnvelope
	if err := decodeJSON(endpoint, body, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: %s has no data", ErrMalformedResponse, endpoint)
	}
	return Signature(env.Data), nil
}

// processBody mirrors the fields accepted when creating a video.
type processBody struct {
	GUID           string `json:"guid"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	IngestRecipeID string `json:"ingest_recipe_id,omitempty"`
	Profile        int    `json:"profile,omitempty"`
	ReplaceID      int64  `json:"replace_id,omitempty"`
	Transcoding    *bool  `json:"transcoding,omitempty"`
	Labels         string `json:"labels,omitempty"`
}

// Process creates a video from an uploaded file and returns its id.
func (c *Client) Process(ctx context.Context, opts ProcessOptions) (int64, error) {
	const endpoint = "videos"

	payload := processBody{
		GUID:           opts.GUID,
		Title:          opts.Title,
		Description:    opts.Description,
		IngestRecipeID: opts.IngestRecipeID,
		Profile:        int(opts.Profile),
		ReplaceID:      opts.ReplaceID,
		Transcoding:    opts.Transcoding,
		Labels:         strings.Join(opts.Labels, ","),
	}
	if payload.Title == "" {
		payload.Title = defaultTitle
	}
	if payload.Description == "" {
		payload.Description = defaultDescription
	}

	body, err := c.doJSON(ctx, call{method: http.MethodPost, endpoint: endpoint, expected: http.StatusCreated}, payload)
	if err != nil {
		return 0, err
	}

	var env struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	if err := decodeJSON(endpoint, body, &env); err != nil {
		return 0, err
	}
	if env.Data.ID == 0 {
		return 0, fmt.Errorf("%w: %s returned no video id", ErrMalformedResponse, endpoint)
	}

	c.log.InfoObj("vzaar video processing", "vzaar_video", map[string]any{
		"guid":     opts.GUID,
		"video_id": env.Data.ID,
	})
	return env.Data.ID, nil
}

// Delete removes video id and returns the raw response body.
func (c *Client) Delete(ctx context.Context, id int64) ([]byte, error) {
	return c.do(ctx, call{method: http.MethodDelete, endpoint: fmt.Sprintf("videos/%d", id)})
}

// Edit updates the metadata of video id and returns its embed metadata.
func (c *Client) Edit(ctx context.Context, id int64, opts EditOptions) (EmbedMetadata, error) {
	endpoint := fmt.Sprintf("videos/%d.xml", id)

	doc, err := markup.Marshal(editDocument(opts))
	if err != nil {
		return nil, fmt.Errorf("vzaar: encode %s body: %w", endpoint, err)
	}

	body, err := c.do(ctx, call{
		method:      http.MethodPut,
		endpoint:    endpoint,
		body:        doc,
		contentType: contentTypeXML,
	})
	if err != nil {
		return nil, err
	}
	return parseEmbedXML(body, embedKeys)
}

// editDocument wraps the changed fields as vzaar-api/video.
func editDocument(opts EditOptions) markup.Mapping {
	video := markup.Mapping{}
	if opts.Title != "" {
		video = video.Set("title", markup.Scalar{Value: opts.Title})
	}
	if opts.Description != "" {
		video = video.Set("description", markup.Scalar{Value: opts.Description})
	}
	if opts.Private != nil {
		video = video.Set("private", markup.Scalar{Value: *opts.Private})
	}
	if opts.SEOURL != "" {
		video = video.Set("seo_url", markup.Scalar{Value: opts.SEOURL})
	}
	return markup.Mapping{{Key: "vzaar-api", Value: markup.Mapping{{Key: "video", Value: video}}}}
}
