package dashboard

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/qepting91/reddit-hotwalk/internal/domain"
)

// RenderTally writes a keyword bar chart as a standalone HTML page.
// Bars keep the tally's order.
func RenderTally(w io.Writer, sub string, entries []domain.Entry) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Keyword Mentions", Subtitle: "r/" + sub + " hot"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	barX := make([]string, 0, len(entries))
	barY := make([]opts.BarData, 0, len(entries))
	for _, e := range entries {
		barX = append(barX, e.Keyword)
		barY = append(barY, opts.BarData{Value: e.Count})
	}
	bar.SetXAxis(barX).AddSeries("Mentions", barY)

	return bar.Render(w)
}

func SaveTally(path, sub string, entries []domain.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderTally(f, sub, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
