package vzaar

import (
	"testing"

	"github.com/samvad-hq/vzaar-go/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	cases := map[string]Profile{
		"1":               ProfileSmall,
		"medium":          ProfileMedium,
		"Large":           ProfileLarge,
		"high definition": ProfileHighDefinition,
		"high_definition": ProfileHighDefinition,
		"5":               ProfileOriginal,
	}
	for in, want := range cases {
		got, err := ParseProfile(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseProfile("6")
	assert.Error(t, err)
	_, err = ParseProfile("huge")
	assert.Error(t, err)
}

func TestProfileString(t *testing.T) {
	assert.Equal(t, "original", ProfileOriginal.String())
	assert.Equal(t, "profile(9)", Profile(9).String())
	assert.False(t, Profile(0).Valid())
}

func TestListOptionsParams(t *testing.T) {
	params := ListOptions{Count: 10, Sort: " desc ", Extra: Params{"count": "99", "q": "x"}}.Params()
	assert.Equal(t, Params{"count": "10", "sort": "desc", "q": "x"}, params)
	assert.Empty(t, ListOptions{}.Params())
}

func TestEditDocumentOmitsUnsetFields(t *testing.T) {
	doc := editDocument(EditOptions{Description: "d"})
	require.Len(t, doc, 1)
	assert.Equal(t, "vzaar-api", doc[0].Key)

	api, ok := doc[0].Value.(markup.Mapping)
	require.True(t, ok)
	require.Len(t, api, 1)
	video, ok := api[0].Value.(markup.Mapping)
	require.True(t, ok)
	require.Len(t, video, 1)
	assert.Equal(t, "description", video[0].Key)
}
