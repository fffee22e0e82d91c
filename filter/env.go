package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/s0up4200/tenor/tenor"
)

// newEnvironment exposes a post to expressions. Property names are
// capitalised, helpers are camelCase.
func newEnvironment(post tenor.ResponseObject) map[string]any {
	env := make(map[string]any, 24)

	formats := post.Formats()
	formatNames := make([]string, len(formats))
	for i, f := range formats {
		formatNames[i] = string(f)
	}

	env["ID"] = post.ID
	env["Title"] = post.Title
	env["Description"] = post.ContentDescription
	env["Tags"] = post.Tags
	env["Flags"] = post.Flags
	env["Formats"] = formatNames
	env["HasAudio"] = post.HasAudio
	env["HasCaption"] = post.HasCaption
	env["IsSticker"] = post.IsSticker()
	env["IsStatic"] = post.IsStatic()
	env["Created"] = post.CreatedAt()
	env["URL"] = post.URL
	env["ItemURL"] = post.ItemURL

	env["hasTag"] = createHasTagFunc(post.Tags)
	env["hasFlag"] = post.HasFlag
	env["hasFormat"] = createHasFormatFunc(post.MediaFormats)
	env["formatSize"] = createFormatSizeFunc(post.MediaFormats)
	env["formatDuration"] = createFormatDurationFunc(post.MediaFormats)
	env["formatWidth"] = createFormatWidthFunc(post.MediaFormats)

	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}

	return env
}

func createHasTagFunc(tags []string) func(string) bool {
	lowerTags := make([]string, len(tags))
	for i, tag := range tags {
		lowerTags[i] = strings.ToLower(tag)
	}
	return func(tag string) bool {
		return slices.Contains(lowerTags, strings.ToLower(tag))
	}
}

func createHasFormatFunc(formats map[tenor.ContentFormat]tenor.MediaObject) func(string) bool {
	return func(name string) bool {
		_, ok := formats[tenor.ContentFormat(name)]
		return ok
	}
}

// createFormatSizeFunc returns the size in bytes of a format, or -1 if absent
func createFormatSizeFunc(formats map[tenor.ContentFormat]tenor.MediaObject) func(string) int {
	return func(name string) int {
		if m, ok := formats[tenor.ContentFormat(name)]; ok {
			return int(m.Size)
		}
		return -1
	}
}

func createFormatDurationFunc(formats map[tenor.ContentFormat]tenor.MediaObject) func(string) float64 {
	return func(name string) float64 {
		return formats[tenor.ContentFormat(name)].Duration
	}
}

func createFormatWidthFunc(formats map[tenor.ContentFormat]tenor.MediaObject) func(string) int {
	return func(name string) int {
		return formats[tenor.ContentFormat(name)].Width()
	}
}
