// Package listing reads a subreddit's hot listing through a domain.Collector.
package listing

import (
	"context"
	"fmt"

	"github.com/qepting91/reddit-hotwalk/internal/domain"
)

// Top returns up to the first n titles of a single hot page.
// A child without a title fails the whole call.
func Top(ctx context.Context, c domain.Collector, sub string, n int) ([]string, error) {
	if err := domain.ValidSubreddit(sub); err != nil {
		return nil, err
	}

	page, err := c.HotPage(ctx, sub, domain.PageOptions{Limit: n})
	if err != nil {
		return nil, err
	}
	if page.Untitled > 0 {
		return nil, fmt.Errorf("%w: %d posts without title", domain.ErrMalformed, page.Untitled)
	}

	titles := page.Titles
	if len(titles) > n {
		titles = titles[:n]
	}
	return titles, nil
}

// Walk follows the after cursor until it is empty and returns every title in
// arrival order. Any failed page discards what was gathered so far.
func Walk(ctx context.Context, c domain.Collector, sub string) ([]string, error) {
	if err := domain.ValidSubreddit(sub); err != nil {
		return nil, err
	}

	titles := []string{}
	seen := map[string]bool{}
	after := ""
	for {
		page, err := c.HotPage(ctx, sub, domain.PageOptions{After: after})
		if err != nil {
			return nil, fmt.Errorf("page %d of r/%s: %w", len(seen)+1, sub, err)
		}
		titles = append(titles, page.Titles...)

		if page.After == "" {
			return titles, nil
		}
		if seen[page.After] {
			return nil, fmt.Errorf("%w: %q", domain.ErrCursorLoop, page.After)
		}
		seen[page.After] = true
		after = page.After
	}
}
