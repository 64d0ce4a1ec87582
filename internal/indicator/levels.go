package indicator

import (
	"sort"

	"CoinScope/internal/model"
)

// Default support/resistance parameters.
const (
	DefaultPivotLookback    = 5
	DefaultClusterTolerance = 0.005
	DefaultMaxLevelsPerSide = 3
)

type pivot struct {
	price float64
	index int
}

// FindLevels detects support and resistance levels from swing pivots.
//
// A bar is a swing high (resistance candidate) when its high is the
// strict maximum of the 2*lookback+1 bars around it, a swing low
// (support candidate) when its low is the strict minimum. Candidates
// are sorted by price and greedily merged: a candidate joins the
// current cluster while it lies within tolerance*currentClose of the
// cluster's running mean. Each cluster becomes one Level whose value is
// the cluster mean, strength the cluster size and LastTouchIndex the
// most recent contributing bar.
//
// Clusters on the wrong side of the current close are stale and
// dropped: supports must sit below it, resistances above. Each side is
// ranked by descending strength, ties broken by recency, and truncated
// to maxPerSide. Too few bars for any pivot is a data condition and
// yields an empty set.
func FindLevels(bars []model.OHLCV, lookback int, tolerance float64, maxPerSide int) (model.LevelSet, error) {
	if lookback <= 0 || maxPerSide <= 0 {
		return model.LevelSet{}, ErrInvalidWindow
	}
	if len(bars) == 0 {
		return model.LevelSet{}, nil
	}
	currentClose := bars[len(bars)-1].Close

	var highs, lows []pivot
	for i := lookback; i <= len(bars)-1-lookback; i++ {
		if isSwingHigh(bars, i, lookback) {
			highs = append(highs, pivot{price: bars[i].High, index: i})
		}
		if isSwingLow(bars, i, lookback) {
			lows = append(lows, pivot{price: bars[i].Low, index: i})
		}
	}

	band := tolerance * currentClose
	supports := clusterPivots(lows, band, model.LevelSupport)
	resistances := clusterPivots(highs, band, model.LevelResistance)

	return model.LevelSet{
		Supports: rankLevels(supports, maxPerSide, func(l model.Level) bool {
			return l.Value < currentClose
		}),
		Resistances: rankLevels(resistances, maxPerSide, func(l model.Level) bool {
			return l.Value > currentClose
		}),
	}, nil
}

func isSwingHigh(bars []model.OHLCV, i, k int) bool {
	h := bars[i].High
	for j := i - k; j <= i+k; j++ {
		if j != i && bars[j].High >= h {
			return false
		}
	}
	return true
}

func isSwingLow(bars []model.OHLCV, i, k int) bool {
	l := bars[i].Low
	for j := i - k; j <= i+k; j++ {
		if j != i && bars[j].Low <= l {
			return false
		}
	}
	return true
}

// clusterPivots merges price-sorted pivots into levels. The merge rule
// compares against the cluster's running mean, not its last member.
func clusterPivots(pivots []pivot, band float64, kind model.LevelKind) []model.Level {
	if len(pivots) == 0 {
		return nil
	}
	sort.Slice(pivots, func(i, j int) bool { return pivots[i].price < pivots[j].price })

	var levels []model.Level
	sum := pivots[0].price
	count := 1
	lastTouch := pivots[0].index

	flush := func() {
		levels = append(levels, model.Level{
			Kind:           kind,
			Value:          sum / float64(count),
			Strength:       count,
			LastTouchIndex: lastTouch,
		})
	}

	for _, p := range pivots[1:] {
		if p.price-sum/float64(count) <= band {
			sum += p.price
			count++
			if p.index > lastTouch {
				lastTouch = p.index
			}
			continue
		}
		flush()
		sum = p.price
		count = 1
		lastTouch = p.index
	}
	flush()
	return levels
}

func rankLevels(levels []model.Level, max int, keep func(model.Level) bool) []model.Level {
	var kept []model.Level
	for _, l := range levels {
		if keep(l) {
			kept = append(kept, l)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Strength != kept[j].Strength {
			return kept[i].Strength > kept[j].Strength
		}
		return kept[i].LastTouchIndex > kept[j].LastTouchIndex
	})
	if len(kept) > max {
		kept = kept[:max]
	}
	return kept
}
