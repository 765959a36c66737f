package flex

import (
	"sort"

	"github.com/fluentkit/fluent/geom"
)

// workItem is the per-pass scratch state for one item. src points back at
// the caller's slice so rectangles come out in input order even after
// order-sorting and direction reversal.
type workItem struct {
	src    int
	main   float32
	cross  float32
	grow   float32
	shrink float32
	align  AlignItem
	order  int
}

// line is a contiguous run of work items sharing one row or column.
// Recomputed every pass, never persisted.
type line struct {
	start, end int // half-open range into the work slice
	mainTotal  float32
	crossMax   float32
}

// Solve lays out items within the available size and returns one rectangle
// per item, relative to the container origin. Invalid input is absorbed:
// negative factors are clamped, degenerate measurements substituted, and an
// empty item list yields an empty result.
func Solve(avail geom.Size, items []Item, cfg Config) Result {
	if len(items) == 0 {
		return Result{}
	}

	axis := cfg.Direction.Axis()
	work := resolveBasis(items, axis)

	sort.SliceStable(work, func(i, j int) bool {
		return work[i].order < work[j].order
	})

	availMain := axis.Main(avail)
	lines := collectLines(work, availMain, cfg.mainGap(), cfg.Wrap)
	resolveFlexibleLengths(work, lines, availMain, cfg.mainGap())

	rects := make([]geom.Rect, len(items))
	alignAxes(rects, work, lines, avail, cfg)

	return Result{Rects: rects, Lines: len(lines)}
}

// resolveBasis computes each item's initial main- and cross-axis extents.
// A definite basis overrides the main extent only; the cross extent always
// comes from the measured size.
func resolveBasis(items []Item, axis geom.Axis) []workItem {
	work := make([]workItem, len(items))
	for i, it := range items {
		measured := it.Measured
		if !measured.Valid() {
			measured = defaultItemSize
		}

		main := axis.Main(measured)
		if it.Basis == BasisDefinite {
			main = it.BasisPx
			if main < 0 {
				main = 0
			}
		}

		grow := it.Grow
		if grow < 0 {
			grow = 0
		}
		shrink := float32(1)
		if it.Shrink != nil {
			shrink = *it.Shrink
			if shrink < 0 {
				shrink = 0
			}
		}

		work[i] = workItem{
			src:    i,
			main:   main,
			cross:  axis.Cross(measured),
			grow:   grow,
			shrink: shrink,
			align:  it.Align,
			order:  it.Order,
		}
	}
	return work
}

// collectLines partitions the work items into lines. With NoWrap every item
// lands on a single line regardless of overflow. Otherwise items accumulate
// greedily; an item that alone exceeds the available space still gets a line
// of its own so collection always terminates.
func collectLines(work []workItem, availMain, gap float32, wrap Wrap) []line {
	if wrap == NoWrap {
		return []line{summarize(work, 0, len(work), gap)}
	}

	var lines []line
	lineStart := 0
	var mainTotal, crossMax float32

	for i, w := range work {
		needed := mainTotal + w.main
		if i > lineStart {
			needed += gap
		}
		if i > lineStart && needed > availMain {
			lines = append(lines, line{start: lineStart, end: i, mainTotal: mainTotal, crossMax: crossMax})
			lineStart = i
			mainTotal = w.main
			crossMax = w.cross
			continue
		}
		mainTotal = needed
		if w.cross > crossMax {
			crossMax = w.cross
		}
	}
	lines = append(lines, line{start: lineStart, end: len(work), mainTotal: mainTotal, crossMax: crossMax})

	if wrap == WrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return lines
}

// summarize builds a line record for work[start:end], including inter-item
// gaps in the main total.
func summarize(work []workItem, start, end int, gap float32) line {
	l := line{start: start, end: end}
	for i := start; i < end; i++ {
		if i > start {
			l.mainTotal += gap
		}
		l.mainTotal += work[i].main
		if work[i].cross > l.crossMax {
			l.crossMax = work[i].cross
		}
	}
	return l
}

// resolveFlexibleLengths grows or shrinks items within each line to
// reconcile the line against the available main-axis space. Lines are
// independent: a deficit in one never affects sizing in another.
func resolveFlexibleLengths(work []workItem, lines []line, availMain, gap float32) {
	for li := range lines {
		l := &lines[li]
		n := l.end - l.start
		if n == 0 {
			continue
		}
		free := availMain - l.mainTotal

		switch {
		case free > 0:
			var totalGrow float32
			for i := l.start; i < l.end; i++ {
				totalGrow += work[i].grow
			}
			if totalGrow == 0 {
				continue // free space left for justify-content
			}
			for i := l.start; i < l.end; i++ {
				work[i].main += free * (work[i].grow / totalGrow)
			}

		case free < 0:
			// Weighted shrink: factor scaled by base size, so larger
			// items with equal shrink absorb more of the deficit.
			var totalScaled float32
			for i := l.start; i < l.end; i++ {
				totalScaled += work[i].shrink * work[i].main
			}
			if totalScaled == 0 {
				continue // nothing shrinkable, items overflow
			}
			deficit := -free
			for i := l.start; i < l.end; i++ {
				scaled := work[i].shrink * work[i].main
				work[i].main -= deficit * (scaled / totalScaled)
				if work[i].main < 0 {
					work[i].main = 0
				}
			}
		}

		l.mainTotal = 0
		for i := l.start; i < l.end; i++ {
			if i > l.start {
				l.mainTotal += gap
			}
			l.mainTotal += work[i].main
		}
	}
}

// alignAxes converts resolved sizes into absolute rectangles: main-axis
// distribution per line (justify-content), cross-axis placement per item
// (align-items / align-self), and sequential line stacking offset by
// align-content.
func alignAxes(rects []geom.Rect, work []workItem, lines []line, avail geom.Size, cfg Config) {
	axis := cfg.Direction.Axis()
	availMain := axis.Main(avail)
	availCross := axis.Cross(avail)
	gap := cfg.mainGap()
	crossGap := cfg.crossGap()

	if cfg.Direction.Reversed() {
		for _, l := range lines {
			for i, j := l.start, l.end-1; i < j; i, j = i+1, j-1 {
				work[i], work[j] = work[j], work[i]
			}
		}
	}

	var blockCross float32
	for i, l := range lines {
		if i > 0 {
			blockCross += crossGap
		}
		blockCross += l.crossMax
	}

	crossCursor := contentOffset(cfg.AlignContent, availCross-blockCross)

	for _, l := range lines {
		n := l.end - l.start
		if n == 0 {
			continue
		}

		free := availMain - l.mainTotal
		leading, between := justifySpacing(cfg.Justify, free, n)

		mainCursor := leading
		for i := l.start; i < l.end; i++ {
			w := work[i]

			align := w.align
			if align == AlignAuto {
				align = cfg.AlignItems
			}
			if align == AlignAuto {
				// CSS default: unset align-items stretches to the line.
				align = AlignStretch
			}

			cross := w.cross
			var crossPos float32
			switch align {
			case AlignStretch:
				cross = l.crossMax
			case AlignEnd:
				crossPos = l.crossMax - w.cross
			case AlignCenter:
				crossPos = (l.crossMax - w.cross) / 2
			default: // AlignStart, AlignBaseline
			}

			rects[w.src] = geom.RectOf(
				axis.Pt(mainCursor, crossCursor+crossPos),
				axis.SizeOf(w.main, cross),
			)

			mainCursor += w.main + gap + between
		}

		crossCursor += l.crossMax + crossGap
	}
}

// justifySpacing returns the leading offset before the first item and the
// extra spacing inserted between items for a line with the given free space.
// On overflow (negative free space) End and Center keep their anchor, so
// the leading offset goes negative; the space distribution modes pack from
// the start.
func justifySpacing(j Justify, free float32, n int) (leading, between float32) {
	switch j {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if free > 0 && n > 1 {
			return 0, free / float32(n-1)
		}
		return 0, 0
	case JustifySpaceAround:
		if free <= 0 {
			return 0, 0
		}
		unit := free / float32(n)
		return unit / 2, unit
	case JustifySpaceEvenly:
		if free <= 0 {
			return 0, 0
		}
		unit := free / float32(n+1)
		return unit, unit
	default: // JustifyStart
		return 0, 0
	}
}

// contentOffset returns the cross-axis offset of the whole block of lines.
// The space distribution modes degrade to start packing; see AlignContent.
func contentOffset(a AlignContent, free float32) float32 {
	if free <= 0 {
		return 0
	}
	switch a {
	case ContentEnd:
		return free
	case ContentCenter:
		return free / 2
	default:
		return 0
	}
}
