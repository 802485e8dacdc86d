package utils

import (
	"fmt"
	"os"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/dns-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorNoError  = "#1a9850"
	ColorServfail = "#d73027"
	ColorNxdomain = "#f46d43"
	ColorOther    = "#fee08b"
)

var chartStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawResolutionStats renders the query-log sampling: a per-name table of
// resolution outcomes plus a response-code distribution chart
func DrawResolutionStats(stats *model.ResolutionStats) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📊  RESOLUTION OUTCOMES (last 24h)"))
	fmt.Printf(" Window: %s - %s\n",
		text.FgBlue.Sprint(stats.WindowStart.Format("2006-01-02 15:04")),
		text.FgBlue.Sprint(stats.WindowEnd.Format("2006-01-02 15:04")))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(stats.Samples) == 0 {
		fmt.Println("\n No logged queries matched the relevant zones in the sampling window.")
		return
	}

	drawSampleTable(stats.Samples)
	drawResponseCodeChart(stats.Samples)
}

func drawSampleTable(samples []model.ResolutionSample) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Query Name", "Response Code", "Queries"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})

	for _, sample := range samples {
		code := sample.ResponseCode
		if code != "NOERROR" {
			code = text.FgHiRed.Sprint(code)
		} else {
			code = text.FgGreen.Sprint(code)
		}

		tw.AppendRow(table.Row{sample.QueryName, code, sample.QueryCount})
	}

	tw.Render()
}

func drawResponseCodeChart(samples []model.ResolutionSample) {
	codes, counts := aggregateByResponseCode(samples)

	bc := barchart.New(80, 15)

	for i, code := range codes {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %d", code, counts[i]),
			Values: []barchart.BarValue{
				{
					Value: float64(counts[i]),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(responseCodeColor(code))),
				},
			},
		})
	}

	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		chartStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

// aggregateByResponseCode sums query counts per response code, ordered by
// first appearance so repeated runs draw identical charts
func aggregateByResponseCode(samples []model.ResolutionSample) ([]string, []int64) {
	var codes []string
	totals := make(map[string]int64, len(samples))

	for _, sample := range samples {
		if _, ok := totals[sample.ResponseCode]; !ok {
			codes = append(codes, sample.ResponseCode)
		}
		totals[sample.ResponseCode] += sample.QueryCount
	}

	counts := make([]int64, 0, len(codes))
	for _, code := range codes {
		counts = append(counts, totals[code])
	}

	return codes, counts
}

func responseCodeColor(code string) string {
	switch code {
	case "NOERROR":
		return ColorNoError
	case "SERVFAIL":
		return ColorServfail
	case "NXDOMAIN":
		return ColorNxdomain
	default:
		return ColorOther
	}
}
