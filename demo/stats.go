package demo

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"

	"github.com/benz9527/xbst/lib/infra"
)

const RoundStatsName = "xbst/bstdemo"

type roundStats struct {
	rounds         metric.Int64Counter
	rebalanced     metric.Int64Counter
	treeHeights    metric.Int64Histogram
	roundDurations metric.Float64Histogram
}

func newRoundStats(mp metric.MeterProvider) (*roundStats, error) {
	if mp == nil {
		return nil, nil
	}
	meter := mp.Meter(RoundStatsName)
	rounds, err1 := meter.Int64Counter(
		"bstdemo.round.count",
		metric.WithDescription("The number of demo rounds by result."),
	)
	rebalanced, err2 := meter.Int64Counter(
		"bstdemo.round.rebalanced.count",
		metric.WithDescription("The number of demo rounds that had to rebalance the tree."),
	)
	heights, err3 := meter.Int64Histogram(
		"bstdemo.tree.height",
		metric.WithDescription("The tree height after each stage of a round."),
	)
	durations, err4 := meter.Float64Histogram(
		"bstdemo.round.duration",
		metric.WithDescription("The duration of a demo round. In milliseconds."),
		metric.WithUnit("ms"),
	)
	if err := multierr.Combine(err1, err2, err3, err4); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[bstdemo] new round stats")
	}
	return &roundStats{
		rounds:         rounds,
		rebalanced:     rebalanced,
		treeHeights:    heights,
		roundDurations: durations,
	}, nil
}

func (stats *roundStats) RecordRound(ctx context.Context, report *RoundReport) {
	if stats == nil || report == nil {
		return
	}
	result := "ok"
	if report.Err != nil {
		result = "failed"
	}
	stats.rounds.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	if report.Rebalanced {
		stats.rebalanced.Add(ctx, 1)
	}
	for _, s := range report.Stages {
		stats.treeHeights.Record(ctx, int64(s.Height),
			metric.WithAttributes(attribute.String("stage", string(s.Stage))),
		)
	}
	stats.roundDurations.Record(ctx, float64(report.Duration)/float64(time.Millisecond))
}
