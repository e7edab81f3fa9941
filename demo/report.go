package demo

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/benz9527/xbst/lib/infra"
	"github.com/benz9527/xbst/lib/tree"
)

type Stage string

const (
	StageBuilt      Stage = "built"
	StageInserted   Stage = "inserted"
	StageRebalanced Stage = "rebalanced"
)

// StageReport is a snapshot of the tree after one step of a round.
type StageReport struct {
	Stage      Stage
	Tree       string
	Len        int64
	Height     int
	Balanced   bool
	LevelOrder []int
	PreOrder   []int
	InOrder    []int
	PostOrder  []int
}

func snapshot(stage Stage, t tree.BSTree[int]) (StageReport, error) {
	sb := strings.Builder{}
	if err := tree.PrettyPrint(&sb, t.Root()); err != nil {
		return StageReport{}, err
	}
	return StageReport{
		Stage:      stage,
		Tree:       sb.String(),
		Len:        t.Len(),
		Height:     t.Height(t.Root()),
		Balanced:   t.IsBalanced(),
		LevelOrder: t.LevelOrder(),
		PreOrder:   t.PreOrder(),
		InOrder:    t.InOrder(),
		PostOrder:  t.PostOrder(),
	}, nil
}

type RoundReport struct {
	Round      int
	Sample     []int
	Inserted   []int
	Rebalanced bool
	Stages     []StageReport
	Duration   time.Duration
	Err        error
}

// Final returns the last recorded stage.
func (rr RoundReport) Final() (StageReport, bool) {
	if len(rr.Stages) == 0 {
		return StageReport{}, false
	}
	return rr.Stages[len(rr.Stages)-1], true
}

func joinValues(values []int) string {
	return strings.Join(lo.Map(values, func(v int, _ int) string {
		return strconv.Itoa(v)
	}), " ")
}

// WriteTo renders the round in the order it was run.
func (rr RoundReport) WriteTo(w io.Writer) (int64, error) {
	sb := strings.Builder{}
	_, _ = fmt.Fprintf(&sb, "== round %d, sample [%s]\n", rr.Round, joinValues(rr.Sample))
	for _, s := range rr.Stages {
		switch s.Stage {
		case StageInserted:
			_, _ = fmt.Fprintf(&sb, "-- inserted [%s]\n", joinValues(rr.Inserted))
		case StageRebalanced:
			_, _ = fmt.Fprintf(&sb, "-- rebalanced: %t\n", rr.Rebalanced)
		default:
			_, _ = fmt.Fprintf(&sb, "-- %s\n", s.Stage)
		}
		sb.WriteString(s.Tree)
		_, _ = fmt.Fprintf(&sb, "Is balanced: %t (height %d, %d nodes)\n", s.Balanced, s.Height, s.Len)
		_, _ = fmt.Fprintf(&sb, "Level order: %s\n", joinValues(s.LevelOrder))
		_, _ = fmt.Fprintf(&sb, "Pre order: %s\n", joinValues(s.PreOrder))
		_, _ = fmt.Fprintf(&sb, "In order: %s\n", joinValues(s.InOrder))
		_, _ = fmt.Fprintf(&sb, "Post order: %s\n", joinValues(s.PostOrder))
	}
	if rr.Err != nil {
		_, _ = fmt.Fprintf(&sb, "-- failed: %v\n", rr.Err)
	}
	n, err := io.WriteString(w, sb.String())
	if err != nil {
		return int64(n), infra.WrapErrorStackWithMessage(err, "[bstdemo] write round report")
	}
	return int64(n), nil
}
