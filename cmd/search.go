package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tenor/config"
	"github.com/s0up4200/tenor/filter"
	"github.com/s0up4200/tenor/tenor"
)

// MaxConcurrentSearches limits the number of terms searched at once
const MaxConcurrentSearches = 4

var compiler = filter.NewCompiler(filter.WithCache(16))

var (
	pos          string
	random       bool
	searchFilter string
	arRange      string
	mediaFilter  string
	contentLevel string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term> [term...]",
	Short: "Search for GIFs and stickers",
	Long: `Search Tenor for each term. Several terms are searched concurrently and
printed in the order given.

Results can be narrowed with --where, an expression evaluated against each
result, for example:

  tenor search cat --where 'IsSticker and formatSize("gif") < 500000'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

// featuredCmd represents the featured command
var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "List featured GIFs and stickers",
	Args:  cobra.NoArgs,
	RunE:  runFeatured,
}

func init() {
	for _, c := range []*cobra.Command{searchCmd, featuredCmd} {
		c.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results (1-50)")
		c.Flags().StringVar(&pos, "pos", "", "position cursor returned by a previous request")
		c.Flags().StringVar(&searchFilter, "searchfilter", "", "sticker, sticker,-static or sticker,static")
		c.Flags().StringVar(&arRange, "ar-range", "", "aspect ratio range: all, wide or standard")
		c.Flags().StringVar(&mediaFilter, "media-filter", "", "comma-separated content formats to return")
		c.Flags().StringVar(&contentLevel, "contentfilter", "", "content safety level: off, low, medium or high")
		c.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression applied to the results")
	}
	searchCmd.Flags().BoolVar(&random, "random", false, "shuffle results instead of ranking by relevance")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(featuredCmd)
}

// termResult is the outcome of searching a single term
type termResult struct {
	Term    string                 `json:"term"`
	Next    string                 `json:"next"`
	Results []tenor.ResponseObject `json:"results"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	var where *filter.Filter
	if whereExpr != "" {
		f, err := filterFor(whereExpr)
		if err != nil {
			return err
		}
		where = f
	}

	params := searchParameters(cfg)
	params.Random = boolFlag(cmd, "random", random)

	logger.Info().Strs("terms", args).Msg("Searching Tenor")

	results, err := searchTerms(cmd.Context(), client, args, params)
	if err != nil {
		return err
	}

	if where != nil {
		for i := range results {
			results[i].Results, err = where.Apply(results[i].Results)
			if err != nil {
				return fmt.Errorf("failed to apply filter: %w", err)
			}
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return writeJSON(out, results)
	}

	formatter := NewConsoleFormatter()
	for _, r := range results {
		fmt.Fprint(out, formatter.FormatPosts(fmt.Sprintf("Results for %q", r.Term), r.Results, formatOptions()))
		if r.Next != "" && r.Next != "0" {
			fmt.Fprintf(out, "Next page: --pos %s\n", r.Next)
		}
	}
	return nil
}

// searchTerms searches every term concurrently and returns the results in
// the order of terms. The first failure cancels the remaining searches.
func searchTerms(ctx context.Context, api tenor.API, terms []string, params *tenor.SearchParameters) ([]termResult, error) {
	results := make([]termResult, len(terms))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentSearches)

	for i, term := range terms {
		i, term := i, term
		g.Go(func() error {
			resp, err := api.SearchByQuery(ctx, term, params)
			if err != nil {
				return fmt.Errorf("search %q: %w", term, err)
			}
			logger.Debug().
				Str("term", term).
				Int("results", len(resp.Results)).
				Msg("Search complete")

			results[i] = termResult{Term: term, Next: resp.Next, Results: resp.Results}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runFeatured(cmd *cobra.Command, args []string) error {
	var where *filter.Filter
	if whereExpr != "" {
		f, err := filterFor(whereExpr)
		if err != nil {
			return err
		}
		where = f
	}

	sp := searchParameters(cfg)
	params := &tenor.FeaturedParameters{
		LocaleParameters: sp.LocaleParameters,
		FilterParameters: sp.FilterParameters,
	}

	resp, err := client.Featured(cmd.Context(), params)
	if err != nil {
		return err
	}

	if where != nil {
		if resp.Results, err = where.Apply(resp.Results); err != nil {
			return fmt.Errorf("failed to apply filter: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return writeJSON(out, resp)
	}

	fmt.Fprint(out, NewConsoleFormatter().FormatPosts("Featured", resp.Results, formatOptions()))
	if resp.HasMore() {
		fmt.Fprintf(out, "Next page: --pos %s\n", resp.Next)
	}
	return nil
}

// filterFor compiles a --where expression
func filterFor(expression string) (*filter.Filter, error) {
	f, err := compiler.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// searchParameters builds search parameters from the configured defaults and
// the command flags. Flags win over configuration.
func searchParameters(cfg *config.Config) *tenor.SearchParameters {
	params := &tenor.SearchParameters{}
	params.Country = cfg.Search.Country
	params.Locale = cfg.Search.Locale
	params.ContentFilter = firstNonEmpty(contentLevel, cfg.Search.ContentFilter)
	params.MediaFilter = firstNonEmpty(mediaFilter, cfg.Search.MediaFilter)
	params.SearchFilter = searchFilter
	params.AspectRatioRange = arRange
	params.Pos = pos

	n := cfg.Search.Limit
	if limit > 0 {
		n = limit
	}
	if n > 0 {
		params.Limit = tenor.Int(n)
	}
	return params
}

// suggestionParameters builds suggestion parameters from the configured
// defaults and the --limit flag
func suggestionParameters(cfg *config.Config) *tenor.SuggestionParameters {
	params := &tenor.SuggestionParameters{}
	params.Country = cfg.Search.Country
	params.Locale = cfg.Search.Locale
	if limit > 0 {
		params.Limit = tenor.Int(limit)
	}
	return params
}

// boolFlag returns the wire form of a boolean flag, or "" when it was not set
func boolFlag(cmd *cobra.Command, name string, value bool) string {
	if !cmd.Flags().Changed(name) {
		return ""
	}
	return tenor.Bool(value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
