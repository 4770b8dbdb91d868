package collector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"github.com/qepting91/reddit-hotwalk/internal/domain"
	"golang.org/x/time/rate"
)

// Credentials are optional; without all four the client is read-only
type Credentials struct {
	ID, Secret, Username, Password string
}

func (c Credentials) complete() bool {
	return c.ID != "" && c.Secret != "" && c.Username != "" && c.Password != ""
}

// APIClient goes through go-reddit instead of raw JSON
type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

func NewAPIClient(creds Credentials, baseURL, userAgent string, timeout, interval time.Duration) (*APIClient, error) {
	opts := []reddit.Opt{
		reddit.WithUserAgent(userAgent),
		reddit.WithHTTPClient(&http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}),
	}

	var (
		client *reddit.Client
		err    error
	)
	if creds.complete() {
		client, err = reddit.NewClient(reddit.Credentials{
			ID:       creds.ID,
			Secret:   creds.Secret,
			Username: creds.Username,
			Password: creds.Password,
		}, opts...)
	} else {
		// The OAuth host only serves credentialed clients
		if baseURL != "" {
			opts = append(opts, reddit.WithBaseURL(baseURL))
		}
		client, err = reddit.NewReadonlyClient(opts...)
	}
	if err != nil {
		return nil, err
	}

	return &APIClient{client: client, limiter: newLimiter(interval)}, nil
}

func (ac *APIClient) Subscribers(ctx context.Context, sub string) (int, error) {
	if err := domain.ValidSubreddit(sub); err != nil {
		return 0, err
	}
	if err := ac.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	sr, _, err := ac.client.Subreddit.Get(ctx, sub)
	if err != nil {
		return 0, apiError(err)
	}
	if sr == nil {
		return 0, fmt.Errorf("%w: empty subreddit", domain.ErrMalformed)
	}
	return sr.Subscribers, nil
}

func (ac *APIClient) HotPage(ctx context.Context, sub string, opts domain.PageOptions) (domain.Page, error) {
	if err := domain.ValidSubreddit(sub); err != nil {
		return domain.Page{}, err
	}
	if err := ac.limiter.Wait(ctx); err != nil {
		return domain.Page{}, err
	}

	posts, resp, err := ac.client.Subreddit.HotPosts(ctx, sub, &reddit.ListOptions{
		Limit: opts.Limit,
		After: opts.After,
	})
	if err != nil {
		return domain.Page{}, apiError(err)
	}

	page := domain.Page{Kind: "Listing"}
	for _, p := range posts {
		if p == nil {
			page.Untitled++
			continue
		}
		page.Titles = append(page.Titles, p.Title)
	}
	if resp != nil {
		page.After = resp.After
	}
	return page, nil
}

// apiError maps go-reddit failures onto the domain taxonomy
func apiError(err error) error {
	var er *reddit.ErrorResponse
	if errors.As(err, &er) && er.Response != nil {
		if cerr := checkStatus(er.Response.StatusCode); cerr != nil {
			return fmt.Errorf("reddit api error: %w", cerr)
		}
	}
	return fmt.Errorf("reddit api error: %w", err)
}
