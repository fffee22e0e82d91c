package tenor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireHelpers(t *testing.T) {
	assert.Equal(t, "true", Bool(true))
	assert.Equal(t, "false", Bool(false))
	assert.Equal(t, "20", Int(20))
	assert.Equal(t, "0", Int(0))
}

func TestBuildValues(t *testing.T) {
	client, err := NewClient("K")
	require.NoError(t, err)

	t.Run("search parameters", func(t *testing.T) {
		params := &SearchParameters{
			LocaleParameters: LocaleParameters{Country: "GB", Locale: "en_GB"},
			FilterParameters: FilterParameters{
				SearchFilter:     SearchFilterAnimatedSticker,
				ContentFilter:    ContentFilterHigh,
				MediaFilter:      "gif,tinygif",
				AspectRatioRange: AspectRatioWide,
				Limit:            Int(10),
				Pos:              "CAgQ",
			},
			Random: Bool(true),
		}

		values, err := client.buildValues(params, map[string]string{"q": "wave"})
		require.NoError(t, err)

		assert.Equal(t, "K", values.Get("key"))
		assert.Equal(t, "wave", values.Get("q"))
		assert.Equal(t, "GB", values.Get("country"))
		assert.Equal(t, "en_GB", values.Get("locale"))
		assert.Equal(t, "sticker,-static", values.Get("searchfilter"))
		assert.Equal(t, "high", values.Get("contentfilter"))
		assert.Equal(t, "gif,tinygif", values.Get("media_filter"))
		assert.Equal(t, "wide", values.Get("ar_range"))
		assert.Equal(t, "10", values.Get("limit"))
		assert.Equal(t, "CAgQ", values.Get("pos"))
		assert.Equal(t, "true", values.Get("random"))
		assert.False(t, values.Has("client_key"))
	})

	t.Run("empty fields are omitted", func(t *testing.T) {
		values, err := client.buildValues(&FeaturedParameters{}, nil)
		require.NoError(t, err)
		assert.Len(t, values, 1)
		assert.Equal(t, "K", values.Get("key"))
	})

	t.Run("enumerations are passed verbatim", func(t *testing.T) {
		values, err := client.buildValues(&CategoriesParameters{Type: "weekly", ContentFilter: "extreme"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "weekly", values.Get("type"))
		assert.Equal(t, "extreme", values.Get("contentfilter"))
	})

	t.Run("each key once", func(t *testing.T) {
		params := &PostParameters{MediaFilter: "mp4"}
		params.Extra = map[string]string{"media_filter": "webm"}

		values, err := client.buildValues(params, map[string]string{"ids": "1,2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"webm"}, values["media_filter"])
		assert.Equal(t, []string{"1,2"}, values["ids"])
		assert.Equal(t, []string{"K"}, values["key"])
	})
}
