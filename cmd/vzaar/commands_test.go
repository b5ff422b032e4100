package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/samvad-hq/vzaar-go/internal/config"
	"github.com/samvad-hq/vzaar-go/pkg/vzaar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	params  vzaar.Params
	list    vzaar.ListOptions
	upload  vzaar.PrepareUploadOptions
	process vzaar.ProcessOptions
	edit    vzaar.EditOptions
	deleted int64
}

func (f *fakeAPI) AccountDetails(_ context.Context, account int64) (map[string]any, error) {
	return map[string]any{"account_id": account}, nil
}

func (f *fakeAPI) UserDetails(_ context.Context, username string) (map[string]any, error) {
	return map[string]any{"author_name": username}, nil
}

func (f *fakeAPI) VideoDetails(_ context.Context, id int64, params vzaar.Params) (map[string]any, error) {
	f.params = params
	return map[string]any{"id": id}, nil
}

func (f *fakeAPI) VideoList(_ context.Context, _ string, opts vzaar.ListOptions) (map[string]any, error) {
	f.list = opts
	return map[string]any{"data": []any{}}, nil
}

func (f *fakeAPI) PrepareUpload(_ context.Context, opts vzaar.PrepareUploadOptions) (vzaar.Signature, error) {
	f.upload = opts
	return vzaar.Signature{"guid": "vz1"}, nil
}

func (f *fakeAPI) Process(_ context.Context, opts vzaar.ProcessOptions) (int64, error) {
	f.process = opts
	return 99, nil
}

func (f *fakeAPI) Delete(_ context.Context, id int64) ([]byte, error) {
	f.deleted = id
	return []byte(" {\"ok\":true}\n"), nil
}

func (f *fakeAPI) Edit(_ context.Context, _ int64, opts vzaar.EditOptions) (vzaar.EmbedMetadata, error) {
	f.edit = opts
	return vzaar.EmbedMetadata{"title": opts.Title}, nil
}

func execute(t *testing.T, args ...string) (*fakeAPI, string) {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("vzaar"))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	api := &fakeAPI{}
	var out bytes.Buffer
	require.NoError(t, kctx.Run(&runtime{ctx: context.Background(), api: api, out: &out}))
	return api, out.String()
}

func TestAccountCommand(t *testing.T) {
	_, out := execute(t, "account", "34")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.EqualValues(t, 34, got["account_id"])
}

func TestVideoCommandPassesParams(t *testing.T) {
	api, _ := execute(t, "video", "912345", "--embed-only", "--param", "foo=bar")
	assert.Equal(t, vzaar.Params{"embed_only": "true", "foo": "bar"}, api.params)
}

func TestVideosCommand(t *testing.T) {
	api, _ := execute(t, "videos", "jane", "--count", "5", "--sort", "asc")
	assert.Equal(t, vzaar.ListOptions{Count: 5, Sort: "asc"}, api.list)
}

func TestPrepareUploadCommandReadsFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, make([]byte, 1234), 0o600))

	api, out := execute(t, "prepare-upload", "--file", path)
	assert.Equal(t, "clip.mp4", api.upload.Filename)
	assert.EqualValues(t, 1234, api.upload.Filesize)
	assert.Contains(t, out, `"guid": "vz1"`)
}

func TestProcessCommand(t *testing.T) {
	api, out := execute(t, "process", "vz1",
		"--title", "Clip", "--encoding-profile", "high_definition",
		"--transcoding", "false", "--labels", "a,b", "--replace-id", "7")

	assert.Equal(t, "vz1", api.process.GUID)
	assert.Equal(t, vzaar.ProfileHighDefinition, api.process.Profile)
	require.NotNil(t, api.process.Transcoding)
	assert.False(t, *api.process.Transcoding)
	assert.Equal(t, []string{"a", "b"}, api.process.Labels)
	assert.EqualValues(t, 7, api.process.ReplaceID)
	assert.JSONEq(t, `{"id":99}`, out)
}

func TestDeleteCommand(t *testing.T) {
	api, out := execute(t, "delete", "12")
	assert.EqualValues(t, 12, api.deleted)
	assert.Equal(t, "{\"ok\":true}\n", out)
}

func TestEditCommand(t *testing.T) {
	api, _ := execute(t, "edit", "12", "--title", "New", "--private", "true", "--seo-url", "new")
	assert.Equal(t, "New", api.edit.Title)
	assert.Equal(t, "new", api.edit.SEOURL)
	require.NotNil(t, api.edit.Private)
	assert.True(t, *api.edit.Private)
	assert.Empty(t, api.edit.Description)
}

func TestGlobalsApply(t *testing.T) {
	cfg := &config.Config{LogLevel: "info", Profile: "env"}
	Globals{Profile: "cli", LogLevel: "debug"}.apply(cfg)
	assert.Equal(t, "cli", cfg.Profile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.ProfilesFile)
}
