package tenor

import (
	"math"
	"slices"
	"time"
)

// ContentFormat is a media encoding offered for each result.
type ContentFormat string

const (
	FormatGIF                        ContentFormat = "gif"
	FormatGIFPreview                 ContentFormat = "gifpreview"
	FormatMediumGIF                  ContentFormat = "mediumgif"
	FormatMediumGIFPreview           ContentFormat = "mediumgifpreview"
	FormatTinyGIF                    ContentFormat = "tinygif"
	FormatTinyGIFPreview             ContentFormat = "tinygifpreview"
	FormatNanoGIF                    ContentFormat = "nanogif"
	FormatNanoGIFPreview             ContentFormat = "nanogifpreview"
	FormatMP4                        ContentFormat = "mp4"
	FormatLoopedMP4                  ContentFormat = "loopedmp4"
	FormatTinyMP4                    ContentFormat = "tinymp4"
	FormatNanoMP4                    ContentFormat = "nanomp4"
	FormatWebM                       ContentFormat = "webm"
	FormatTinyWebM                   ContentFormat = "tinywebm"
	FormatNanoWebM                   ContentFormat = "nanowebm"
	FormatWebPTransparent            ContentFormat = "webp_transparent"
	FormatWebPPreviewTransparent     ContentFormat = "webppreview_transparent"
	FormatTinyWebPTransparent        ContentFormat = "tinywebp_transparent"
	FormatTinyWebPPreviewTransparent ContentFormat = "tinywebppreview_transparent"
	FormatNanoWebPTransparent        ContentFormat = "nanowebp_transparent"
	FormatNanoWebPPreviewTransparent ContentFormat = "nanowebppreview_transparent"
	FormatGIFTransparent             ContentFormat = "gif_transparent"
	FormatTinyGIFTransparent         ContentFormat = "tinygif_transparent"
	FormatNanoGIFTransparent         ContentFormat = "nanogif_transparent"
)

// Result flags.
const (
	FlagSticker = "sticker"
	FlagStatic  = "static"
	FlagAudio   = "audio"
)

// MediaObject describes one encoding of a result.
type MediaObject struct {
	URL string `json:"url"`
	// Dims is width and height in pixels
	Dims []int `json:"dims"`
	// Duration of one loop in seconds, 0 for static content
	Duration float64 `json:"duration"`
	// Size in bytes
	Size int64 `json:"size"`
}

// Width returns the first dimension, or 0
func (m MediaObject) Width() int {
	if len(m.Dims) < 1 {
		return 0
	}
	return m.Dims[0]
}

// Height returns the second dimension, or 0
func (m MediaObject) Height() int {
	if len(m.Dims) < 2 {
		return 0
	}
	return m.Dims[1]
}

// ResponseObject is a single post returned by the API.
type ResponseObject struct {
	// Created is a Unix timestamp, possibly fractional
	Created            float64                       `json:"created"`
	HasAudio           bool                          `json:"hasaudio"`
	ID                 string                        `json:"id"`
	MediaFormats       map[ContentFormat]MediaObject `json:"media_formats"`
	Tags               []string                      `json:"tags"`
	Title              string                        `json:"title"`
	ContentDescription string                        `json:"content_description"`
	ItemURL            string                        `json:"itemurl"`
	HasCaption         bool                          `json:"hascaption"`
	Flags              []string                      `json:"flags"`
	BgColor            string                        `json:"bg_color"`
	URL                string                        `json:"url"`
}

// CreatedAt converts Created to a time
func (r *ResponseObject) CreatedAt() time.Time {
	if r.Created <= 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(r.Created)
	return time.Unix(int64(sec), int64(frac*1e9))
}

// Media returns the requested encoding if the post offers it
func (r *ResponseObject) Media(format ContentFormat) (MediaObject, bool) {
	m, ok := r.MediaFormats[format]
	return m, ok
}

// Formats returns the offered encodings in sorted order
func (r *ResponseObject) Formats() []ContentFormat {
	formats := make([]ContentFormat, 0, len(r.MediaFormats))
	for f := range r.MediaFormats {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}

// HasFlag checks if the post carries the given flag
func (r *ResponseObject) HasFlag(flag string) bool {
	return slices.Contains(r.Flags, flag)
}

// IsSticker checks if the post is a sticker rather than a GIF
func (r *ResponseObject) IsSticker() bool {
	return r.HasFlag(FlagSticker)
}

// IsStatic checks if the post is a still image
func (r *ResponseObject) IsStatic() bool {
	return r.HasFlag(FlagStatic)
}

// CategoryObject is one entry of the categories endpoint.
type CategoryObject struct {
	// SearchTerm is translated to the request locale
	SearchTerm string `json:"searchterm"`
	// Path is the search URL to request when the category is selected
	Path string `json:"path"`
	// Image is the URL of the category's example GIF
	Image string `json:"image"`
	// Name is the overlay text, translated to the request locale
	Name string `json:"name"`
}

// SearchResponse is returned by SearchByQuery.
type SearchResponse struct {
	// Next is the cursor for the following page, empty when there are no more results
	Next    string           `json:"next"`
	Results []ResponseObject `json:"results"`
}

// HasMore checks if another page can be requested with Next
func (sr *SearchResponse) HasMore() bool {
	return sr.Next != "" && sr.Next != "0"
}

// FeaturedResponse is returned by Featured.
type FeaturedResponse = SearchResponse

// CategoriesResponse is returned by Categories.
type CategoriesResponse struct {
	Tags []CategoryObject `json:"tags"`
}

// SuggestionsResponse is returned by SearchSuggestions, Autocomplete and
// TrendingTerms. Trending terms are ordered by trending rank.
type SuggestionsResponse struct {
	Results []string `json:"results"`
}

// PostsResponse is returned by PostsByID.
type PostsResponse struct {
	Results []ResponseObject `json:"results"`
}
