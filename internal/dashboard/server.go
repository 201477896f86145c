// Package dashboard serves a local chart view of a user's comment
// history.
package dashboard

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/qepting91/usaidwat/internal/domain"
	"github.com/qepting91/usaidwat/internal/tally"
)

// StartServer renders charts for the given comments on every request and
// blocks serving them on the given port.
func StartServer(username string, comments []domain.Comment, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		subredditPie(username, comments).Render(w)
		activityHeatmap(comments).Render(w)
	})

	return http.ListenAndServe(":"+port, mux)
}

// subredditPie charts where the user comments the most.
func subredditPie(username string, comments []domain.Comment) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Where %s comments", username)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	var items []opts.PieData
	for _, e := range tally.Count(comments).Subreddits(tally.ByCount) {
		items = append(items, opts.PieData{Name: e.Subreddit, Value: e.Count})
	}
	pie.AddSeries("Comments", items)
	return pie
}

// activityHeatmap charts when the user comments, by weekday and hour.
func activityHeatmap(comments []domain.Comment) *charts.HeatMap {
	hm := charts.NewHeatMap()

	tl := tally.NewTimeline(comments)
	days := tally.Weekdays()

	var hours []string
	for h := 0; h < 24; h++ {
		hours = append(hours, fmt.Sprintf("%02d", h))
	}
	var dayNames []string
	for _, d := range days {
		dayNames = append(dayNames, d.String()[:3])
	}

	var items []opts.HeatMapData
	for di, day := range days {
		counts := tl.Day(day)
		for h := 0; h < 24; h++ {
			items = append(items, opts.HeatMapData{Value: [3]interface{}{h, di, counts[h]}})
		}
	}

	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Comment Activity"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: hours}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: dayNames}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(tl.Max()),
		}),
	)
	hm.AddSeries("Comments", items)
	return hm
}
