package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/qepting91/reddit-hotwalk/internal/domain"
	"golang.org/x/time/rate"
)

// PublicClient reads the unauthenticated .json endpoints
type PublicClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

type listingResponse struct {
	Kind string `json:"kind"`
	Data *struct {
		Children *[]struct {
			Data *struct {
				Title *string `json:"title"`
			} `json:"data"`
		} `json:"children"`
		After *string `json:"after"`
	} `json:"data"`
}

type aboutResponse struct {
	Data *struct {
		Subscribers *int `json:"subscribers"`
	} `json:"data"`
}

func NewPublicClient(baseURL, userAgent string, timeout, interval time.Duration) (*PublicClient, error) {
	if userAgent == "" {
		return nil, fmt.Errorf("user agent is required for public mode")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	return &PublicClient{
		httpClient: &http.Client{
			Timeout: timeout,
			// A redirect means the subreddit does not exist
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		limiter:   newLimiter(interval),
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}, nil
}

func (pc *PublicClient) Subscribers(ctx context.Context, sub string) (int, error) {
	if err := domain.ValidSubreddit(sub); err != nil {
		return 0, err
	}

	var about aboutResponse
	if err := pc.getJSON(ctx, "/r/"+url.PathEscape(sub)+"/about.json", nil, &about); err != nil {
		return 0, err
	}
	if about.Data == nil || about.Data.Subscribers == nil {
		return 0, fmt.Errorf("%w: no data.subscribers", domain.ErrMalformed)
	}
	if *about.Data.Subscribers < 0 {
		return 0, fmt.Errorf("%w: negative subscriber count", domain.ErrMalformed)
	}
	return *about.Data.Subscribers, nil
}

func (pc *PublicClient) HotPage(ctx context.Context, sub string, opts domain.PageOptions) (domain.Page, error) {
	if err := domain.ValidSubreddit(sub); err != nil {
		return domain.Page{}, err
	}

	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.After != "" {
		q.Set("after", opts.After)
	}

	var listing listingResponse
	if err := pc.getJSON(ctx, "/r/"+url.PathEscape(sub)+"/hot.json", q, &listing); err != nil {
		return domain.Page{}, err
	}
	if listing.Data == nil || listing.Data.Children == nil {
		return domain.Page{}, fmt.Errorf("%w: no data.children", domain.ErrMalformed)
	}

	page := domain.Page{Kind: listing.Kind}
	for _, child := range *listing.Data.Children {
		if child.Data == nil || child.Data.Title == nil {
			page.Untitled++
			continue
		}
		page.Titles = append(page.Titles, *child.Data.Title)
	}
	if listing.Data.After != nil {
		page.After = *listing.Data.After
	}
	return page, nil
}

func (pc *PublicClient) getJSON(ctx context.Context, path string, q url.Values, v any) error {
	if err := pc.limiter.Wait(ctx); err != nil {
		return err
	}

	u := pc.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", pc.userAgent)

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reddit public request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code >= 300 && code < 400, code == http.StatusNotFound:
		return fmt.Errorf("%w (status %d)", domain.ErrNotFound, code)
	default:
		return &domain.StatusError{Code: code}
	}
}

// newLimiter spaces sequential requests; a non-positive interval disables pacing
func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
