package demo

import (
	"context"
	"fmt"
	randv2 "math/rand/v2"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xbst/lib/hrtime"
	"github.com/benz9527/xbst/lib/id"
	"github.com/benz9527/xbst/lib/infra"
	"github.com/benz9527/xbst/lib/tree"
	"github.com/benz9527/xbst/xlog"
)

const (
	ContextKeyRun   = "run"
	ContextKeyRound = "round"

	runIDLength = 12
)

// Runner runs independent demo rounds on a goroutine pool. Every tree
// is confined to the worker that built it.
type Runner struct {
	cfg    *Config
	logger xlog.XLogger
	pool   *ants.Pool
	rand   *randv2.Rand
	clock  hrtime.Clock
	stats  *roundStats
	nextID id.NanoIDGen
}

func NewRunner(cfg *Config, logger xlog.XLogger) (*Runner, error) {
	if cfg == nil {
		return nil, infra.NewErrorStack("[bstdemo] nil config")
	}
	if logger == nil {
		return nil, infra.NewErrorStack("[bstdemo] nil logger")
	}
	stats, err := newRoundStats(cfg.MeterProvider)
	if err != nil {
		return nil, err
	}
	nextID, err := id.ClassicNanoID(runIDLength)
	if err != nil {
		return nil, err
	}
	size := min(cfg.Rounds, runtime.GOMAXPROCS(0))
	pool, err := ants.NewPool(size, ants.WithLogger(xlog.NewAntsXLogger(logger)))
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[bstdemo] new rounds pool")
	}

	seed1, seed2 := cfg.Seed1, cfg.Seed2
	if seed1 == 0 && seed2 == 0 {
		seed1, seed2 = randv2.Uint64(), randv2.Uint64()
	}
	return &Runner{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		rand:   randv2.New(randv2.NewPCG(seed1, seed2)),
		clock:  hrtime.DefaultClock,
		stats:  stats,
		nextID: nextID,
	}, nil
}

// Run draws all samples up front, then runs the rounds concurrently and
// writes the reports in round order. Every run is tagged by a unique
// id in the logs.
func (r *Runner) Run(ctx context.Context) ([]RoundReport, error) {
	ctx = context.WithValue(ctx, xlog.ContextKey(ContextKeyRun), r.nextID())
	begin := r.clock.MonotonicElapsed()
	samples := make([][]int, 0, r.cfg.Rounds)
	for i := 0; i < r.cfg.Rounds; i++ {
		samples = append(samples, randomSortedUnique(r.rand.IntN, r.cfg.ArrayLength, r.cfg.MinValue, r.cfg.MaxValue))
	}

	var (
		merr    error
		wg      sync.WaitGroup
		reports = make([]RoundReport, len(samples))
	)
	for i := range samples {
		if err := ctx.Err(); err != nil {
			merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(err, "[bstdemo] rounds cancelled"))
			break
		}
		round, sample := i+1, samples[i]
		roundCtx := context.WithValue(ctx, xlog.ContextKey(ContextKeyRound), round)
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			reports[round-1] = r.runRound(roundCtx, round, sample)
		})
		if err != nil {
			wg.Done()
			reports[i] = RoundReport{Round: round, Sample: sample, Err: infra.WrapErrorStackWithMessage(err, "[bstdemo] submit round")}
		}
	}
	wg.Wait()

	for i := range reports {
		if reports[i].Round == 0 {
			// not submitted
			continue
		}
		if reports[i].Err != nil {
			merr = multierr.Append(merr, reports[i].Err)
		}
		if _, err := reports[i].WriteTo(r.cfg.Out); err != nil {
			merr = multierr.Append(merr, err)
		}
	}
	reports = lo.Filter(reports, func(rr RoundReport, _ int) bool {
		return rr.Round > 0
	})

	r.logger.InfoContext(ctx, "demo rounds done",
		zap.Int("rounds", len(reports)),
		zap.Int("rebalanced", lo.CountBy(reports, func(rr RoundReport) bool {
			return rr.Rebalanced
		})),
		zap.Int64("nodes", lo.SumBy(reports, func(rr RoundReport) int64 {
			final, _ := rr.Final()
			return final.Len
		})),
		zap.Int("failed", len(multierr.Errors(merr))),
		zap.Duration("elapsed", r.clock.Since(begin)),
	)
	return reports, merr
}

func (r *Runner) runRound(ctx context.Context, round int, sample []int) (report RoundReport) {
	report = RoundReport{
		Round:  round,
		Sample: sample,
		Stages: make([]StageReport, 0, 3),
	}
	begin := r.clock.MonotonicElapsed()
	defer func() {
		if p := recover(); p != nil {
			report.Err = infra.NewErrorStack(fmt.Sprintf("[bstdemo] round %d panic: %v", round, p))
			r.logger.ErrorStackContext(ctx, report.Err, "demo round panic")
		}
		report.Duration = r.clock.Since(begin)
		r.stats.RecordRound(ctx, &report)
	}()

	t := tree.NewBSTree(sample)
	defer t.Release()

	record := func(stage Stage) {
		s, err := snapshot(stage, t)
		if err != nil {
			report.Err = multierr.Append(report.Err, err)
			return
		}
		report.Stages = append(report.Stages, s)
		r.logger.DebugContext(ctx, "demo round stage",
			zap.String("stage", string(stage)),
			zap.Int64("len", s.Len),
			zap.Int("height", s.Height),
			zap.Bool("balanced", s.Balanced),
		)
	}

	record(StageBuilt)
	report.Err = multierr.Append(report.Err, r.validate(t))

	report.Inserted = make([]int, 0, len(r.cfg.ExtraValues))
	for _, v := range r.cfg.ExtraValues {
		if t.Insert(v) {
			report.Inserted = append(report.Inserted, v)
		}
	}
	record(StageInserted)

	report.Rebalanced = t.Rebalance()
	record(StageRebalanced)
	report.Err = multierr.Append(report.Err, r.validate(t))

	if report.Err != nil {
		r.logger.ErrorContext(ctx, report.Err, "demo round failed")
	} else {
		r.logger.InfoContext(ctx, "demo round done",
			zap.Int("sample", len(sample)),
			zap.Int("inserted", len(report.Inserted)),
			zap.Bool("rebalanced", report.Rebalanced),
		)
	}
	return report
}

// Both the built and the rebalanced tree have to be balanced.
func (r *Runner) validate(t tree.BSTree[int]) error {
	return multierr.Combine(
		tree.OrderViolationValidate(t),
		tree.BalanceViolationValidate(t),
	)
}

func (r *Runner) Close() {
	r.pool.Release()
}
