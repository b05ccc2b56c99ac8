package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/nasa-images/internal/failure"
	"github.com/ytget/nasa-images/internal/logger"
	"github.com/ytget/nasa-images/internal/model"
	"github.com/ytget/nasa-images/internal/nasa"
)

// Console output
const (
	QueryPrompt    = "Enter a query: "
	NoResultsText  = "No results for this query."
	NoLinkText     = "No link"
	ResultRuleChar = "-"
	ResultRuleLen  = 40
)

// ErrSearchFailed is returned after a failed search was reported to the user
var ErrSearchFailed = errors.New("search failed")

type searchResult struct {
	Title string `json:"title,omitempty"`
	Link  string `json:"link,omitempty"`

	hasTitle bool
	hasLink  bool
}

func newSearchCommand(v *viper.Viper) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search for images and print the first results",
		Long: `Search the NASA image library and print title and link of the first results.

Without arguments the query is read from standard input.

Examples:
  nasa-search search sun
  nasa-search search --limit 3 apollo 11
  nasa-search search --json "mars rover"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			if len(args) == 0 {
				query, err = promptQuery(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			opts := append(cfg.ClientOptions(), nasa.WithLogger(logger.Named("nasa")))
			client := nasa.NewClient(opts...)
			return runSearch(cmd.Context(), client, query, cfg.Limit, asJSON, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output results as JSON")
	return cmd
}

// searcher is the part of nasa.Client the command needs
type searcher interface {
	Search(ctx context.Context, query string) ([]model.ResultItem, error)
}

func runSearch(ctx context.Context, client searcher, query string, limit int, asJSON bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	query = strings.TrimSpace(query)
	if query == "" {
		fmt.Fprintln(out, "Error: enter a search query.")
		return ErrSearchFailed
	}

	items, err := client.Search(ctx, query)
	if err != nil {
		logger.Logger.Debugw("Search failed", logger.FieldQuery, query, logger.FieldError, err)
		fmt.Fprintln(out, failure.Describe(err, "searching"))
		return ErrSearchFailed
	}

	if len(items) > limit {
		items = items[:limit]
	}
	results := make([]searchResult, 0, len(items))
	for _, item := range items {
		results = append(results, summarize(item))
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, NoResultsText)
		return nil
	}

	rule := strings.Repeat(ResultRuleChar, ResultRuleLen)
	for _, r := range results {
		if r.hasTitle {
			fmt.Fprintf(out, "Title: %s\n", r.Title)
		}
		if r.hasLink {
			fmt.Fprintf(out, "Link: %s\n", r.Link)
		}
		fmt.Fprintln(out, rule)
	}
	return nil
}

// summarize reads the first data title and first link of an item.
// A field is only printed when its array has at least one element.
func summarize(item model.ResultItem) searchResult {
	var r searchResult

	if _, _, _, err := jsonparser.Get(item.Raw, "data", "[0]"); err == nil {
		r.hasTitle = true
		r.Title = model.NoTitle
		if title, err := jsonparser.GetString(item.Raw, "data", "[0]", "title"); err == nil {
			r.Title = title
		}
	}

	if _, _, _, err := jsonparser.Get(item.Raw, "links", "[0]"); err == nil {
		r.hasLink = true
		r.Link = NoLinkText
		if href, err := jsonparser.GetString(item.Raw, "links", "[0]", "href"); err == nil {
			r.Link = href
		}
	}

	return r
}

func promptQuery(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, QueryPrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read query")
	}
	return strings.TrimSpace(line), nil
}
