package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/s0up4200/tenor/tenor"
)

// FormatOptions controls the text rendering of posts
type FormatOptions struct {
	ShowDetails bool
	Formats     []tenor.ContentFormat
}

// ConsoleFormatter provides console output formatting for Tenor results
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatPosts formats result objects as a tree
func (f *ConsoleFormatter) FormatPosts(heading string, posts []tenor.ResponseObject, options FormatOptions) string {
	if len(posts) == 0 {
		return fmt.Sprintf("No results for %s\n", heading)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", heading, len(posts))

	for i, post := range posts {
		isLast := i == len(posts)-1
		f.formatPost(&sb, post, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func (f *ConsoleFormatter) formatPost(sb *strings.Builder, post tenor.ResponseObject, isLast bool, options FormatOptions) {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}

	title := post.Title
	if title == "" {
		title = post.ContentDescription
	}
	if title == "" {
		title = post.ID
	}

	fmt.Fprintf(sb, "%s── %s", prefix, title)
	if len(post.Flags) > 0 {
		fmt.Fprintf(sb, " [%s]", strings.Join(post.Flags, ", "))
	}
	sb.WriteString("\n")

	for _, format := range options.Formats {
		media, ok := post.Media(format)
		if !ok {
			continue
		}
		fmt.Fprintf(sb, "%s%s: %s", indent, format, media.URL)
		if media.Width() > 0 && media.Height() > 0 {
			fmt.Fprintf(sb, " (%dx%d, %s)", media.Width(), media.Height(), formatBytes(media.Size))
		}
		sb.WriteString("\n")
	}

	if !options.ShowDetails {
		return
	}

	var parts []string
	parts = append(parts, "ID: "+post.ID)
	if created := post.CreatedAt(); !created.IsZero() {
		parts = append(parts, "Created: "+created.UTC().Format("2006-01-02"))
	}
	if post.HasAudio {
		parts = append(parts, "Audio")
	}
	fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(parts, " | "))

	if len(post.Tags) > 0 {
		fmt.Fprintf(sb, "%sTags: %s\n", indent, strings.Join(post.Tags, ", "))
	}
	if post.ItemURL != "" {
		fmt.Fprintf(sb, "%sPage: %s\n", indent, post.ItemURL)
	}
}

// FormatCategories formats categories as a tree
func (f *ConsoleFormatter) FormatCategories(categories []tenor.CategoryObject) string {
	if len(categories) == 0 {
		return "No categories found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nCategories (%d):\n\n", len(categories))

	for i, category := range categories {
		prefix := "├"
		if i == len(categories)-1 {
			prefix = "╰"
		}
		fmt.Fprintf(&sb, "%s── %s\n", prefix, category.SearchTerm)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatTerms formats a list of suggested or trending terms
func (f *ConsoleFormatter) FormatTerms(heading string, terms []string) string {
	if len(terms) == 0 {
		return fmt.Sprintf("No %s found\n", strings.ToLower(heading))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", heading, len(terms))

	for i, term := range terms {
		prefix := "├"
		if i == len(terms)-1 {
			prefix = "╰"
		}
		fmt.Fprintf(&sb, "%s── %s\n", prefix, term)
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatBytes renders a byte count in binary units
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// outputFormats converts the configured format names
func outputFormats(names []string) []tenor.ContentFormat {
	formats := make([]tenor.ContentFormat, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			formats = append(formats, tenor.ContentFormat(name))
		}
	}
	return formats
}

func formatOptions() FormatOptions {
	return FormatOptions{
		ShowDetails: cfg.Output.ShowDetails,
		Formats:     outputFormats(cfg.Output.Formats),
	}
}

func jsonOutput() bool {
	return cfg.Output.Format == "json"
}
