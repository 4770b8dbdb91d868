package collector

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/qepting91/reddit-hotwalk/internal/domain"
)

// MockClient implements domain.Collector but returns fake data
type MockClient struct {
	SubscriberCount int
	PageSize        int
	Pages           int
	Latency         time.Duration
}

func NewMockClient() *MockClient {
	return &MockClient{SubscriberCount: 1000, PageSize: 25, Pages: 3}
}

func (mc *MockClient) Subscribers(ctx context.Context, sub string) (int, error) {
	if err := domain.ValidSubreddit(sub); err != nil {
		return 0, err
	}
	if err := mc.wait(ctx); err != nil {
		return 0, err
	}
	return mc.SubscriberCount, nil
}

// HotPage serves Pages pages of PageSize titles; cursors are "mock_<sub>_<n>"
func (mc *MockClient) HotPage(ctx context.Context, sub string, opts domain.PageOptions) (domain.Page, error) {
	if err := domain.ValidSubreddit(sub); err != nil {
		return domain.Page{}, err
	}
	if err := mc.wait(ctx); err != nil {
		return domain.Page{}, err
	}

	n := 0
	if opts.After != "" {
		prefix := "mock_" + sub + "_"
		idx, err := strconv.Atoi(strings.TrimPrefix(opts.After, prefix))
		if !strings.HasPrefix(opts.After, prefix) || err != nil || idx < 1 || idx >= mc.Pages {
			return domain.Page{}, &domain.StatusError{Code: 400}
		}
		n = idx
	}

	size := mc.PageSize
	if opts.Limit > 0 && opts.Limit < size {
		size = opts.Limit
	}

	page := domain.Page{Kind: "Listing"}
	for i := 0; i < size; i++ {
		page.Titles = append(page.Titles,
			fmt.Sprintf("[%s] Simulated hot post #%d", sub, n*mc.PageSize+i))
	}
	if n+1 < mc.Pages {
		page.After = fmt.Sprintf("mock_%s_%d", sub, n+1)
	}
	return page, nil
}

func (mc *MockClient) wait(ctx context.Context) error {
	if mc.Latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(mc.Latency):
		return nil
	}
}
