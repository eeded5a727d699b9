// Package report renders analysis results as plain text for the console and
// for notification channels. It carries no markup; dashboards read the
// recorded tables instead.
package report

import (
	"fmt"
	"strings"
	"time"

	"InsiderScope/internal/analysis"
	"InsiderScope/internal/model"
)

// Format renders the full result set of one run.
func Format(result *analysis.Result) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("InsiderScope analysis | %s | %s\n\n",
		result.Ticker, time.Now().Format("2006-01-02")))

	primary, other := 0, 0
	for _, class := range result.Classification {
		if class == model.ActorPrimary {
			primary++
		} else {
			other++
		}
	}
	b.WriteString(fmt.Sprintf("Actors: %d committee/board, %d regular\n\n", primary, other))

	writeSummaries(&b, "Returns by transaction type", result.CategorySummaries)
	writeSummaries(&b, "Returns by actor class", result.ClassSummaries)
	writeSummaries(&b, "Mean returns by quarter", result.QuarterlySummaries)
	writeSignificance(&b, result.Significance)
	writeLags(&b, result.LagCorrelations, result.BestLag)
	writeCAR(&b, result.CAR)

	return b.String()
}

func writeSummaries(b *strings.Builder, title string, summaries []model.GroupSummary) {
	b.WriteString(title + ":\n")
	if len(summaries) == 0 {
		b.WriteString("  not enough data\n\n")
		return
	}
	for _, s := range summaries {
		b.WriteString(fmt.Sprintf("  %-12s %3dd  mean %+7.2f%%  median %+7.2f%%  n=%d\n",
			s.GroupKey, s.Horizon, s.Mean, s.Median, s.Count))
	}
	b.WriteString("\n")
}

func writeSignificance(b *strings.Builder, results []model.SignificanceResult) {
	b.WriteString("Committee vs regular insiders (Welch t-test):\n")
	if len(results) == 0 {
		b.WriteString("  not enough data in one or both groups\n\n")
		return
	}
	for _, sig := range results {
		marker := ""
		if sig.Significant {
			marker = "  *"
		}
		b.WriteString(fmt.Sprintf("  %3dd  committee %+6.2f%% (n=%d)  regular %+6.2f%% (n=%d)  t=%+.3f  p=%.4f%s\n",
			sig.Horizon, sig.PrimaryMean, sig.PrimaryCount,
			sig.OtherMean, sig.OtherCount, sig.TStatistic, sig.PValue, marker))
	}
	b.WriteString("  * significant difference\n\n")
}

func writeLags(b *strings.Builder, lags []model.LagCorrelation, best *model.LagCorrelation) {
	if len(lags) == 0 {
		return
	}
	b.WriteString("Sentiment-to-return lag correlation:\n")
	for _, lc := range lags {
		if lc.Insufficient {
			b.WriteString(fmt.Sprintf("  lag %dd  not enough data (n=%d)\n", lc.LagDays, lc.PairCount))
			continue
		}
		b.WriteString(fmt.Sprintf("  lag %dd  r=%+.3f (n=%d)\n", lc.LagDays, lc.Correlation, lc.PairCount))
	}
	if best != nil {
		b.WriteString(fmt.Sprintf("  strongest at lag %dd (r=%+.3f)\n", best.LagDays, best.Correlation))
	}
	b.WriteString("\n")
}

func writeCAR(b *strings.Builder, curve *model.CARCurve) {
	b.WriteString("Cumulative return around events:\n")
	if curve == nil {
		b.WriteString("  not enough qualifying events\n")
		return
	}
	b.WriteString(fmt.Sprintf("  category %q, %d events, band = mean ± 1.96×SE\n",
		curve.Category, curve.EventCount))
	for _, p := range curve.Points {
		band := 1.96 * p.StdError
		b.WriteString(fmt.Sprintf("  day %+3d  %+7.2f%%  ± %.2f\n", p.OffsetDay, p.MeanCumReturn, band))
	}
}
