package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samvad-hq/vzaar-go/internal/config"
	"github.com/samvad-hq/vzaar-go/pkg/vzaar"
)

// api is the part of *vzaar.Client the commands use.
type api interface {
	AccountDetails(ctx context.Context, account int64) (map[string]any, error)
	UserDetails(ctx context.Context, username string) (map[string]any, error)
	VideoDetails(ctx context.Context, id int64, params vzaar.Params) (map[string]any, error)
	VideoList(ctx context.Context, username string, opts vzaar.ListOptions) (map[string]any, error)
	PrepareUpload(ctx context.Context, opts vzaar.PrepareUploadOptions) (vzaar.Signature, error)
	Process(ctx context.Context, opts vzaar.ProcessOptions) (int64, error)
	Delete(ctx context.Context, id int64) ([]byte, error)
	Edit(ctx context.Context, id int64, opts vzaar.EditOptions) (vzaar.EmbedMetadata, error)
}

type runtime struct {
	ctx context.Context
	api api
	out io.Writer
}

func (r *runtime) print(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(raw))
	return err
}

// Globals override values loaded from the environment.
type Globals struct {
	Profile      string `help:"Credentials profile from the profiles file."`
	ProfilesFile string `help:"YAML, JSON or TOML file with credential profiles." type:"path"`
	LogLevel     string `help:"Log level: debug, info, warn or error."`
}

func (g Globals) apply(cfg *config.Config) {
	if g.Profile != "" {
		cfg.Profile = g.Profile
	}
	if g.ProfilesFile != "" {
		cfg.ProfilesFile = g.ProfilesFile
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
}

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Account       AccountCmd       `cmd:"" help:"Show details of an account type."`
	User          UserCmd          `cmd:"" help:"Show details of a user."`
	Video         VideoCmd         `cmd:"" help:"Show details of a video."`
	Videos        VideosCmd        `cmd:"" help:"List videos."`
	PrepareUpload PrepareUploadCmd `cmd:"" help:"Request a signature for uploading a file."`
	Process       ProcessCmd       `cmd:"" help:"Create a video from an uploaded file."`
	Delete        DeleteCmd        `cmd:"" help:"Delete a video."`
	Edit          EditCmd          `cmd:"" help:"Edit the metadata of a video."`
}

type AccountCmd struct {
	ID int64 `arg:"" help:"Account type id."`
}

func (c *AccountCmd) Run(rt *runtime) error {
	out, err := rt.api.AccountDetails(rt.ctx, c.ID)
	if err != nil {
		return err
	}
	return rt.print(out)
}

type UserCmd struct {
	Username string `arg:"" help:"Login name (not the email address)."`
}

func (c *UserCmd) Run(rt *runtime) error {
	out, err := rt.api.UserDetails(rt.ctx, c.Username)
	if err != nil {
		return err
	}
	return rt.print(out)
}

type VideoCmd struct {
	ID         int64             `arg:"" help:"Video id."`
	Borderless bool              `help:"Return the borderless player embed."`
	EmbedOnly  bool              `help:"Return only the embed fields."`
	Param      map[string]string `help:"Extra query parameter (key=value)."`
}

func (c *VideoCmd) Run(rt *runtime) error {
	params := vzaar.Params{}
	for k, v := range c.Param {
		params[k] = v
	}
	if c.Borderless {
		params["borderless"] = "true"
	}
	if c.EmbedOnly {
		params["embed_only"] = "true"
	}

	out, err := rt.api.VideoDetails(rt.ctx, c.ID, params)
	if err != nil {
		return err
	}
	return rt.print(out)
}

type VideosCmd struct {
	Username string `arg:"" help:"Login name of the owner."`
	Count    int    `help:"Videos per page (max 100)."`
	Page     int    `help:"Page number."`
	Sort     string `help:"Sort order: asc or desc."`
	Title    string `help:"Only videos whose title contains this text."`
}

func (c *VideosCmd) Run(rt *runtime) error {
	out, err := rt.api.VideoList(rt.ctx, c.Username, vzaar.ListOptions{
		Count: c.Count,
		Page:  c.Page,
		Sort:  c.Sort,
		Title: c.Title,
	})
	if err != nil {
		return err
	}
	return rt.print(out)
}

type PrepareUploadCmd struct {
	File     string `help:"File that will be uploaded; its name and size are sent with the request." type:"existingfile"`
	Uploader string `help:"Uploader name reported to the API."`
}

func (c *PrepareUploadCmd) Run(rt *runtime) error {
	opts := vzaar.PrepareUploadOptions{Uploader: c.Uploader}
	if c.File != "" {
		info, err := os.Stat(c.File)
		if err != nil {
			return fmt.Errorf("stat upload file: %w", err)
		}
		opts.Filename = filepath.Base(c.File)
		opts.Filesize = info.Size()
	}

	sig, err := rt.api.PrepareUpload(rt.ctx, opts)
	if err != nil {
		return err
	}
	return rt.print(sig)
}

type ProcessCmd struct {
	GUID           string   `arg:"" help:"GUID returned by prepare-upload."`
	Title          string   `help:"Video title."`
	Description    string   `help:"Video description."`
	Profile        string   `name:"encoding-profile" help:"Encoding profile: small, medium, large, high_definition, original or 1-5."`
	ReplaceID      int64    `help:"Id of an existing video to replace."`
	Transcoding    string   `help:"Force (true) or skip (false) transcoding."`
	Labels         []string `help:"Labels to assign." sep:","`
	IngestRecipeID string   `help:"Ingest recipe to apply."`
}

func (c *ProcessCmd) Run(rt *runtime) error {
	opts := vzaar.ProcessOptions{
		GUID:           c.GUID,
		IngestRecipeID: c.IngestRecipeID,
		Title:          c.Title,
		Description:    c.Description,
		ReplaceID:      c.ReplaceID,
		Labels:         c.Labels,
	}
	if strings.TrimSpace(c.Profile) != "" {
		p, err := vzaar.ParseProfile(c.Profile)
		if err != nil {
			return err
		}
		opts.Profile = p
	}
	if c.Transcoding != "" {
		b, err := strconv.ParseBool(c.Transcoding)
		if err != nil {
			return fmt.Errorf("invalid transcoding value %q: %w", c.Transcoding, err)
		}
		opts.Transcoding = vzaar.Bool(b)
	}

	id, err := rt.api.Process(rt.ctx, opts)
	if err != nil {
		return err
	}
	return rt.print(map[string]int64{"id": id})
}

type DeleteCmd struct {
	ID int64 `arg:"" help:"Video id."`
}

func (c *DeleteCmd) Run(rt *runtime) error {
	body, err := rt.api.Delete(rt.ctx, c.ID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rt.out, strings.TrimSpace(string(body)))
	return err
}

type EditCmd struct {
	ID          int64  `arg:"" help:"Video id."`
	Title       string `help:"New title."`
	Description string `help:"New description."`
	Private     string `help:"Mark the video private (true) or public (false)."`
	SEOURL      string `name:"seo-url" help:"SEO url slug."`
}

func (c *EditCmd) Run(rt *runtime) error {
	opts := vzaar.EditOptions{
		Title:       c.Title,
		Description: c.Description,
		SEOURL:      c.SEOURL,
	}
	if c.Private != "" {
		b, err := strconv.ParseBool(c.Private)
		if err != nil {
			return fmt.Errorf("invalid private value %q: %w", c.Private, err)
		}
		opts.Private = vzaar.Bool(b)
	}

	out, err := rt.api.Edit(rt.ctx, c.ID, opts)
	if err != nil {
		return err
	}
	return rt.print(out)
}
