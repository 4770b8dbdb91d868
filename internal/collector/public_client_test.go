package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/qepting91/reddit-hotwalk/internal/domain"
)

const testAgent = "go:hotwalk-test:v0 (by /u/tester)"

func newTestClient(t *testing.T, h http.HandlerFunc) *PublicClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	pc, err := NewPublicClient(srv.URL, testAgent, 0, 0)
	if err != nil {
		t.Fatalf("NewPublicClient: %v", err)
	}
	return pc
}

func TestNewPublicClientRequiresUserAgent(t *testing.T) {
	if _, err := NewPublicClient("https://www.reddit.com", "", 0, 0); err == nil {
		t.Fatal("expected error for empty user agent")
	}
}

func TestHotPageRequest(t *testing.T) {
	var gotPath, gotAgent string
	var gotQuery map[string][]string

	pc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.UserAgent()
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"kind":"Listing","data":{"after":"t3_abc","children":[
			{"kind":"t3","data":{"title":"first"}},
			{"kind":"t3","data":{"id":"x"}},
			{"kind":"t3","data":{"title":"second"}}
		]}}`))
	})

	page, err := pc.HotPage(context.Background(), "golang", domain.PageOptions{Limit: 10, After: "t3_prev"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/r/golang/hot.json" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAgent != testAgent {
		t.Errorf("user agent = %q, want %q", gotAgent, testAgent)
	}
	wantQuery := map[string][]string{"limit": {"10"}, "after": {"t3_prev"}}
	if !reflect.DeepEqual(gotQuery, wantQuery) {
		t.Errorf("query = %v, want %v", gotQuery, wantQuery)
	}

	want := domain.Page{Kind: "Listing", Titles: []string{"first", "second"}, Untitled: 1, After: "t3_abc"}
	if !reflect.DeepEqual(page, want) {
		t.Errorf("page = %+v, want %+v", page, want)
	}
}

func TestHotPageOmitsEmptyParams(t *testing.T) {
	var rawQuery string
	pc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"kind":"Listing","data":{"after":null,"children":[]}}`))
	})

	page, err := pc.HotPage(context.Background(), "golang", domain.PageOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rawQuery != "" {
		t.Errorf("query = %q, want empty", rawQuery)
	}
	if page.After != "" || len(page.Titles) != 0 {
		t.Errorf("page = %+v, want empty last page", page)
	}
}

func TestHotPageErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
		status  int
	}{
		{
			name: "redirect is not followed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/r/nope/hot.json" {
					t.Errorf("redirect was followed to %s", r.URL.Path)
				}
				http.Redirect(w, r, "/subreddits/search.json?q=nope", http.StatusFound)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			status: http.StatusTooManyRequests,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>blocked</html>"))
			},
			wantErr: domain.ErrMalformed,
		},
		{
			name: "no children",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"kind":"Listing","data":{"after":null}}`))
			},
			wantErr: domain.ErrMalformed,
		},
		{
			name: "no data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"message":"Forbidden"}`))
			},
			wantErr: domain.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := newTestClient(t, tt.handler)
			_, err := pc.HotPage(context.Background(), "nope", domain.PageOptions{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.status != 0 {
				var se *domain.StatusError
				if !errors.As(err, &se) || se.Code != tt.status {
					t.Errorf("err = %v, want status %d", err, tt.status)
				}
			}
		})
	}
}

func TestSubscribers(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr error
	}{
		{name: "ok", body: `{"kind":"t5","data":{"subscribers":1234}}`, want: 1234},
		{name: "missing field", body: `{"kind":"t5","data":{}}`, wantErr: domain.ErrMalformed},
		{name: "empty object", body: `{}`, wantErr: domain.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/r/golang/about.json" {
					t.Errorf("path = %q", r.URL.Path)
				}
				w.Write([]byte(tt.body))
			})
			got, err := pc.Subscribers(context.Background(), "golang")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Subscribers() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEmptySubredditMakesNoRequest(t *testing.T) {
	called := false
	pc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	if _, err := pc.Subscribers(context.Background(), ""); !errors.Is(err, domain.ErrInvalidSubreddit) {
		t.Errorf("Subscribers err = %v", err)
	}
	if _, err := pc.HotPage(context.Background(), "", domain.PageOptions{}); !errors.Is(err, domain.ErrInvalidSubreddit) {
		t.Errorf("HotPage err = %v", err)
	}
	if called {
		t.Error("server was called")
	}
}
