package tenor

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"
)

// Accepted values for SearchFilter.
const (
	SearchFilterSticker         = "sticker"
	SearchFilterAnimatedSticker = "sticker,-static"
	SearchFilterStaticSticker   = "sticker,static"
)

// Accepted values for ContentFilter.
const (
	ContentFilterOff    = "off"
	ContentFilterLow    = "low"
	ContentFilterMedium = "medium"
	ContentFilterHigh   = "high"
)

// Accepted values for AspectRatioRange.
const (
	AspectRatioAll      = "all"
	AspectRatioWide     = "wide"
	AspectRatioStandard = "standard"
)

// Accepted values for CategoriesParameters.Type.
const (
	CategoryTypeFeatured = "featured"
	CategoryTypeTrending = "trending"
)

// Bool returns the wire form of b ("true" or "false").
func Bool(b bool) string {
	return strconv.FormatBool(b)
}

// Int returns the wire form of n.
func Int(n int) string {
	return strconv.Itoa(n)
}

// BaseParameters are accepted by every endpoint.
type BaseParameters struct {
	// ClientKey distinguishes integrations that share one API key.
	ClientKey string `url:"client_key,omitempty"`
	// Extra holds parameters this package has no field for. They are sent as is.
	Extra map[string]string `url:"-"`
}

// LocaleParameters select the country and language of a request.
type LocaleParameters struct {
	BaseParameters
	// Country is an ISO 3166-1 two-letter code. The service defaults to US.
	Country string `url:"country,omitempty"`
	// Locale is xx_YY, e.g. en_US (the service default).
	Locale string `url:"locale,omitempty"`
}

// FilterParameters narrow the result objects of search and featured.
type FilterParameters struct {
	// SearchFilter selects non-GIF content, see the SearchFilter constants.
	SearchFilter string `url:"searchfilter,omitempty"`
	// ContentFilter is the content safety level, see the ContentFilter constants.
	ContentFilter string `url:"contentfilter,omitempty"`
	// MediaFilter is a comma-separated list of content formats, e.g. "gif,tinymp4".
	MediaFilter string `url:"media_filter,omitempty"`
	// AspectRatioRange is all, wide (0.42-2.36) or standard (0.56-1.78).
	AspectRatioRange string `url:"ar_range,omitempty"`
	// Limit is the maximum number of results; the service defaults to 20, max 50.
	Limit string `url:"limit,omitempty"`
	// Pos is the cursor returned as Next by the previous page.
	Pos string `url:"pos,omitempty"`
}

// SearchParameters are the optional parameters of SearchByQuery.
type SearchParameters struct {
	LocaleParameters
	FilterParameters
	// Random is "true" to shuffle results instead of ranking by relevance.
	Random string `url:"random,omitempty"`
}

// FeaturedParameters are the optional parameters of Featured.
type FeaturedParameters struct {
	LocaleParameters
	FilterParameters
}

// CategoriesParameters are the optional parameters of Categories.
type CategoriesParameters struct {
	LocaleParameters
	// Type is featured (the default) or trending.
	Type          string `url:"type,omitempty"`
	ContentFilter string `url:"contentfilter,omitempty"`
}

// SuggestionParameters are the optional parameters of SearchSuggestions,
// Autocomplete and TrendingTerms.
type SuggestionParameters struct {
	LocaleParameters
	Limit string `url:"limit,omitempty"`
}

// PostParameters are the optional parameters of PostsByID.
type PostParameters struct {
	BaseParameters
	MediaFilter string `url:"media_filter,omitempty"`
}

// RegisterShareParameters are the optional parameters of RegisterShare.
type RegisterShareParameters struct {
	LocaleParameters
	// Query is the search term that led to the shared result.
	Query string `url:"q,omitempty"`
}

func (p *BaseParameters) extra() map[string]string {
	if p == nil {
		return nil
	}
	return p.Extra
}

type extraParameters interface {
	extra() map[string]string
}

// buildValues merges optional parameters with the required fields of a call.
// Struct fields are encoded first, then Extra, then the client default
// client_key, then required; later values replace earlier ones.
func (c *Client) buildValues(params any, required map[string]string) (url.Values, error) {
	values, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parameters: %w", err)
	}

	if p, ok := params.(extraParameters); ok {
		for k, v := range p.extra() {
			values.Set(k, v)
		}
	}

	if c.clientKey != "" && values.Get("client_key") == "" {
		values.Set("client_key", c.clientKey)
	}

	for k, v := range required {
		values.Set(k, v)
	}
	values.Set("key", c.apiKey)

	return values, nil
}
