package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
)

var (
	searchJSON    bool
	searchTimeout time.Duration
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Send one search request and print the response",
	Long: `Sends one search request through a fresh bridge and prints what it publishes.

The query is either a full http(s) URL, sent unchanged, or search terms that
are appended to the configured search.endpoint. GitHub repository search
responses are printed as a list; anything else is printed as JSON.

The command fails with "no response" when the bridge publishes nothing,
which happens on network errors and bodies that are not valid JSON.`,
	Example: `  sercha-bridge search "language:go stars:>1000"
  sercha-bridge search https://api.github.com/search/repositories?q=elm --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print the response as JSON")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 0, "give up after this long (0 = wait for the bridge)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}
	ex, err := exchanger()
	if err != nil {
		return err
	}

	ctx := cmdContext(cmd)
	if searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, searchTimeout)
		defer cancel()
	}

	query := settings.Search.QueryURL(strings.Join(args, " "))
	value, ok, err := ex.Exchange(ctx, query)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", query, errNoResponse)
	}

	repos := domain.RepositoriesFrom(value)
	if searchJSON || len(repos) == 0 {
		return outputSearchJSON(cmd.OutOrStdout(), value)
	}
	outputSearchTable(cmd.OutOrStdout(), repos, domain.TotalCount(value))
	return nil
}

func outputSearchJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func outputSearchTable(w io.Writer, repos []domain.Repository, total int64) {
	if len(repos) == 0 {
		fmt.Fprintln(w, "No repositories found.")
		return
	}

	width := outputWidth(w)
	if total >= 0 {
		fmt.Fprintf(w, "Repositories (%d of %d):\n\n", len(repos), total)
	} else {
		fmt.Fprintf(w, "Repositories (%d):\n\n", len(repos))
	}

	for i := range repos {
		r := &repos[i]
		fmt.Fprintf(w, "  [%d] %s ★ %d", i+1, r.Name, r.Stars)
		if r.Language != "" {
			fmt.Fprintf(w, " (%s)", r.Language)
		}
		fmt.Fprintln(w)
		if r.Description != "" {
			fmt.Fprintf(w, "      %s\n", clip(r.Description, width-6))
		}
		if r.URL != "" {
			fmt.Fprintf(w, "      %s\n", r.URL)
		}
		fmt.Fprintln(w)
	}
}

// outputWidth returns the terminal width when w is a terminal, or 0.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// clip shortens s to limit runes. A non-positive limit disables clipping.
func clip(s string, limit int) string {
	runes := []rune(s)
	if limit <= 3 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
