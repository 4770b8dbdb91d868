package domain

import (
	"context"
	"errors"
	"fmt"
)

// Page is one response of a subreddit's hot listing
type Page struct {
	Kind     string
	Titles   []string
	Untitled int    // children that carried no data.title
	After    string // empty when the listing is exhausted
}

// PageOptions are the query parameters of a listing request
type PageOptions struct {
	Limit int    // 0 leaves the page size to the server
	After string // omitted when empty
}

// Entry is one reported line of a keyword tally
type Entry struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Collector defines the interface for data fetching
type Collector interface {
	Subscribers(ctx context.Context, subreddit string) (int, error)
	HotPage(ctx context.Context, subreddit string, opts PageOptions) (Page, error)
}

var (
	ErrInvalidSubreddit = errors.New("subreddit name is empty")
	ErrNoKeywords       = errors.New("keyword list is empty")
	ErrNotFound         = errors.New("subreddit not found")
	ErrMalformed        = errors.New("malformed response")
	ErrCursorLoop       = errors.New("listing cursor repeated")
)

// StatusError is a non-success response that is not a redirect or 404
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("reddit status: %d", e.Code)
}

// ValidSubreddit rejects names that must not reach the network
func ValidSubreddit(name string) error {
	if name == "" {
		return ErrInvalidSubreddit
	}
	return nil
}
