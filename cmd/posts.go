package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tenor/tenor"
)

var shareQuery string

// postsCmd represents the posts command
var postsCmd = &cobra.Command{
	Use:   "posts <id> [id...]",
	Short: "Fetch GIFs and stickers by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPosts,
}

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Register that a result was shared",
	Long: `Register a share of a result with Tenor. Pass --query with the search
term that led to the result to improve future search ranking.`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

func init() {
	postsCmd.Flags().StringVar(&mediaFilter, "media-filter", "", "comma-separated content formats to return")
	postsCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression applied to the results")

	shareCmd.Flags().StringVarP(&shareQuery, "query", "q", "", "search term that led to the shared result")

	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(shareCmd)
}

func runPosts(cmd *cobra.Command, args []string) error {
	params := &tenor.PostParameters{
		MediaFilter: firstNonEmpty(mediaFilter, cfg.Search.MediaFilter),
	}

	resp, err := client.PostsByID(cmd.Context(), joinIDs(args), params)
	if err != nil {
		return err
	}

	if whereExpr != "" {
		f, err := filterFor(whereExpr)
		if err != nil {
			return err
		}
		if resp.Results, err = f.Apply(resp.Results); err != nil {
			return fmt.Errorf("failed to apply filter: %w", err)
		}
	}

	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprint(cmd.OutOrStdout(), NewConsoleFormatter().FormatPosts("Posts", resp.Results, formatOptions()))
	return nil
}

func runShare(cmd *cobra.Command, args []string) error {
	params := &tenor.RegisterShareParameters{Query: shareQuery}
	params.Country = cfg.Search.Country
	params.Locale = cfg.Search.Locale

	if err := client.RegisterShare(cmd.Context(), args[0], params); err != nil {
		return err
	}

	logger.Info().Str("id", args[0]).Msg("Share registered")
	return nil
}

// joinIDs accepts IDs as separate arguments or comma-separated lists
func joinIDs(args []string) string {
	var ids []string
	for _, arg := range args {
		for _, id := range strings.Split(arg, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return strings.Join(ids, ",")
}
