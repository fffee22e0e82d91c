package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tenor/tenor"
)

var categoryType string

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List GIF categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest <term>",
	Short: "List alternative search terms for a term",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		resp, err := client.SearchSuggestions(cmd.Context(), query, suggestionParameters(cfg))
		if err != nil {
			return err
		}
		return printTerms(cmd, fmt.Sprintf("Suggestions for %q", query), resp)
	},
}

// autocompleteCmd represents the autocomplete command
var autocompleteCmd = &cobra.Command{
	Use:   "autocomplete <prefix>",
	Short: "Complete a partial search term",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		resp, err := client.Autocomplete(cmd.Context(), query, suggestionParameters(cfg))
		if err != nil {
			return err
		}
		return printTerms(cmd, fmt.Sprintf("Completions for %q", query), resp)
	},
}

// trendingCmd represents the trending command
var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List trending search terms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.TrendingTerms(cmd.Context(), suggestionParameters(cfg))
		if err != nil {
			return err
		}
		return printTerms(cmd, "Trending terms", resp)
	},
}

func init() {
	categoriesCmd.Flags().StringVar(&categoryType, "type", "", "featured or trending")
	categoriesCmd.Flags().StringVar(&contentLevel, "contentfilter", "", "content safety level: off, low, medium or high")

	for _, c := range []*cobra.Command{suggestCmd, autocompleteCmd, trendingCmd} {
		c.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of terms")
	}

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(autocompleteCmd)
	rootCmd.AddCommand(trendingCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	params := &tenor.CategoriesParameters{
		Type:          categoryType,
		ContentFilter: firstNonEmpty(contentLevel, cfg.Search.ContentFilter),
	}
	params.Country = cfg.Search.Country
	params.Locale = cfg.Search.Locale

	resp, err := client.Categories(cmd.Context(), params)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprint(cmd.OutOrStdout(), NewConsoleFormatter().FormatCategories(resp.Tags))
	return nil
}

func printTerms(cmd *cobra.Command, heading string, resp *tenor.SuggestionsResponse) error {
	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprint(cmd.OutOrStdout(), NewConsoleFormatter().FormatTerms(heading, resp.Results))
	return nil
}
