package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tenor/tenor"
)

func testPosts() []tenor.ResponseObject {
	return []tenor.ResponseObject{
		{
			ID:       "1",
			Title:    "Dancing Cat",
			Tags:     []string{"Cat", "dance"},
			HasAudio: true,
			Created:  float64(time.Now().Add(-48 * time.Hour).Unix()),
			MediaFormats: map[tenor.ContentFormat]tenor.MediaObject{
				tenor.FormatGIF:     {Size: 2_000_000, Dims: []int{498, 280}, Duration: 2.4},
				tenor.FormatTinyMP4: {Size: 80_000, Dims: []int{320, 180}, Duration: 2.4},
			},
		},
		{
			ID:    "2",
			Title: "Thumbs up",
			Tags:  []string{"ok"},
			Flags: []string{tenor.FlagSticker, tenor.FlagStatic},
			MediaFormats: map[tenor.ContentFormat]tenor.MediaObject{
				tenor.FormatGIF: {Size: 300_000, Dims: []int{200, 200}},
			},
		},
		{
			ID:      "3",
			Title:   "Old dance",
			Tags:    []string{"dance"},
			Created: float64(time.Now().AddDate(-3, 0, 0).Unix()),
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasTag("cat")`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasTag("unclosed`,
			wantErr:    true,
		},
		{
			name:       "unknown property",
			expression: `Rating > 3`,
			wantErr:    true,
		},
		{
			name:       "non-boolean result",
			expression: `Title`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `IsSticker and formatSize("gif") < 500000 or daysSince(Created) < 30`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantIDs    []string
	}{
		{"tag helper is case insensitive", `hasTag("CAT")`, []string{"1"}},
		{"in operator", `"dance" in Tags`, []string{"1", "3"}},
		{"sticker flag", `IsSticker and IsStatic`, []string{"2"}},
		{"audio", `HasAudio`, []string{"1"}},
		{"format presence", `hasFormat("tinymp4")`, []string{"1"}},
		{"format size", `formatSize("gif") >= 0 and formatSize("gif") < 1000000`, []string{"2"}},
		{"format width", `formatWidth("gif") > 300`, []string{"1"}},
		{"recent posts", `Created > daysAgo(30)`, []string{"1"}},
		{"title operator", `Title contains "dance"`, []string{"3"}},
		{"no match", `len(Formats) > 5`, []string{}},
	}

	posts := testPosts()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Apply(posts)
			require.NoError(t, err)

			ids := make([]string, 0, len(matched))
			for _, p := range matched {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEvaluate_RuntimeError(t *testing.T) {
	f, err := Compile(`Tags[5] == "x"`)
	require.NoError(t, err)

	_, err = f.Evaluate(testPosts()[1])
	require.Error(t, err)

	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "2", evalErr.PostID)
	assert.Contains(t, err.Error(), `Tags[5] == "x"`)

	_, err = f.Apply(testPosts())
	assert.Error(t, err)
}

func TestCompilerCache(t *testing.T) {
	c := NewCompiler(WithCache(2))

	first, err := c.Compile(`HasAudio`)
	require.NoError(t, err)
	second, err := c.Compile(`  HasAudio  `)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.CacheLen())

	_, err = c.Compile(`IsSticker`)
	require.NoError(t, err)
	_, err = c.Compile(`IsStatic`)
	require.NoError(t, err)
	assert.Equal(t, 2, c.CacheLen())

	again, err := c.Compile(`HasAudio`)
	require.NoError(t, err)
	assert.NotSame(t, first, again, "least recently used entry should have been evicted")

	assert.Equal(t, 0, NewCompiler().CacheLen())
}

func TestLRUCache(t *testing.T) {
	cache := newLRUCache[int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	_, _ = cache.Get("a")
	cache.Put("c", 3)

	_, ok := cache.Get("b")
	assert.False(t, ok)

	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	cache.Put("a", 10)
	v, _ = cache.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, cache.Len())
}
