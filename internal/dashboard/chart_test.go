package dashboard

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qepting91/reddit-hotwalk/internal/domain"
)

func TestRenderTally(t *testing.T) {
	var buf bytes.Buffer
	entries := []domain.Entry{{Keyword: "gopher", Count: 3}, {Keyword: "ferris", Count: 1}}

	if err := RenderTally(&buf, "programming", entries); err != nil {
		t.Fatalf("RenderTally: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"Keyword Mentions", "gopher", "ferris"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart is missing %q", want)
		}
	}
}

func TestSaveTally(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	if err := SaveTally(path, "golang", []domain.Entry{{Keyword: "go", Count: 1}}); err != nil {
		t.Fatalf("SaveTally: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}
