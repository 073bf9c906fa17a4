package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"usersearch/internal/config"
	"usersearch/internal/debounce"
	"usersearch/internal/directory"
	"usersearch/internal/domain"
	"usersearch/internal/ui/logic"
)

// errFetchFailed is what a headless user sees when the directory cannot be
// read; the cause goes to the log
var errFetchFailed = errors.New(domain.FetchErrorMessage)

// runHeadless performs one debounced search and prints the matching names,
// one per line
func runHeadless(ctx context.Context, fetcher directory.Fetcher, cfg *config.Config, query string, out io.Writer) error {
	query = strings.TrimSpace(query)
	if r := []rune(query); cfg.MaxQueryLength > 0 && len(r) > cfg.MaxQueryLength {
		query = string(r[:cfg.MaxQueryLength])
	}

	settled := make(chan string, 1)
	d := debounce.New(cfg.DebounceDelay(), func(q string) {
		settled <- q
	})
	defer d.Stop()
	d.Set(query)

	var q string
	select {
	case q = <-settled:
	case <-ctx.Done():
		return ctx.Err()
	}

	if q == "" {
		return nil
	}

	users, err := fetcher.Fetch(ctx, q)
	if err != nil {
		log.Printf("Error fetching data from directory for %q: %v", q, err)
		return errFetchFailed
	}

	for _, u := range logic.Limit(logic.FilterByName(users, q), cfg.UISettings.MaxSuggestions) {
		if _, err := fmt.Fprintln(out, u.Name); err != nil {
			return err
		}
	}
	return nil
}
