package tenor

import (
	"context"
)

// API defines the Tenor operations
type API interface {
	// SearchByQuery returns the most relevant posts for a search term
	SearchByQuery(ctx context.Context, query string, params *SearchParameters) (*SearchResponse, error)

	// Featured returns the current global featured posts
	Featured(ctx context.Context, params *FeaturedParameters) (*FeaturedResponse, error)

	// Categories returns the categories of the requested type
	Categories(ctx context.Context, params *CategoriesParameters) (*CategoriesResponse, error)

	// SearchSuggestions returns alternative search terms for a term
	SearchSuggestions(ctx context.Context, query string, params *SuggestionParameters) (*SuggestionsResponse, error)

	// Autocomplete returns completions for a partial search term
	Autocomplete(ctx context.Context, query string, params *SuggestionParameters) (*SuggestionsResponse, error)

	// TrendingTerms returns the current trending search terms
	TrendingTerms(ctx context.Context, params *SuggestionParameters) (*SuggestionsResponse, error)

	// PostsByID returns the posts for a comma-separated list of IDs
	PostsByID(ctx context.Context, ids string, params *PostParameters) (*PostsResponse, error)

	// RegisterShare records that the user shared a post
	RegisterShare(ctx context.Context, id string, params *RegisterShareParameters) error
}

var _ API = (*Client)(nil)

// SearchByQuery fetches the most relevant GIFs for a search term, category,
// emoji or any combination of these.
func (c *Client) SearchByQuery(ctx context.Context, query string, params *SearchParameters) (*SearchResponse, error) {
	if params == nil {
		params = &SearchParameters{}
	}

	values, err := c.buildValues(params, map[string]string{"q": query})
	if err != nil {
		return nil, err
	}

	return fetch[SearchResponse](ctx, c, EndpointSearch, values)
}

// Featured fetches the current global featured GIFs.
func (c *Client) Featured(ctx context.Context, params *FeaturedParameters) (*FeaturedResponse, error) {
	if params == nil {
		params = &FeaturedParameters{}
	}

	values, err := c.buildValues(params, nil)
	if err != nil {
		return nil, err
	}

	return fetch[FeaturedResponse](ctx, c, EndpointFeatured, values)
}

// Categories fetches the GIF categories of the requested type, translated to
// the request locale.
func (c *Client) Categories(ctx context.Context, params *CategoriesParameters) (*CategoriesResponse, error) {
	if params == nil {
		params = &CategoriesParameters{}
	}

	values, err := c.buildValues(params, nil)
	if err != nil {
		return nil, err
	}

	return fetch[CategoriesResponse](ctx, c, EndpointCategories, values)
}

// SearchSuggestions fetches alternative search terms for a search term.
func (c *Client) SearchSuggestions(ctx context.Context, query string, params *SuggestionParameters) (*SuggestionsResponse, error) {
	return c.suggestions(ctx, EndpointSearchSuggestions, map[string]string{"q": query}, params)
}

// Autocomplete fetches completed search terms for a partial search term.
func (c *Client) Autocomplete(ctx context.Context, query string, params *SuggestionParameters) (*SuggestionsResponse, error) {
	return c.suggestions(ctx, EndpointAutocomplete, map[string]string{"q": query}, params)
}

// TrendingTerms fetches the current trending search terms.
func (c *Client) TrendingTerms(ctx context.Context, params *SuggestionParameters) (*SuggestionsResponse, error) {
	return c.suggestions(ctx, EndpointTrendingTerms, nil, params)
}

func (c *Client) suggestions(ctx context.Context, endpoint Endpoint, required map[string]string, params *SuggestionParameters) (*SuggestionsResponse, error) {
	if params == nil {
		params = &SuggestionParameters{}
	}

	values, err := c.buildValues(params, required)
	if err != nil {
		return nil, err
	}

	return fetch[SuggestionsResponse](ctx, c, endpoint, values)
}

// PostsByID fetches the GIFs, stickers, or a combination of the two for a
// comma-separated list of IDs.
func (c *Client) PostsByID(ctx context.Context, ids string, params *PostParameters) (*PostsResponse, error) {
	if params == nil {
		params = &PostParameters{}
	}

	values, err := c.buildValues(params, map[string]string{"ids": ids})
	if err != nil {
		return nil, err
	}

	return fetch[PostsResponse](ctx, c, EndpointPosts, values)
}

// RegisterShare tells Tenor that the user shared the post with the given ID,
// which improves future search ranking.
func (c *Client) RegisterShare(ctx context.Context, id string, params *RegisterShareParameters) error {
	if params == nil {
		params = &RegisterShareParameters{}
	}

	values, err := c.buildValues(params, map[string]string{"id": id})
	if err != nil {
		return err
	}

	_, err = fetch[map[string]any](ctx, c, EndpointRegisterShare, values)
	return err
}
