package flex

import "github.com/fluentkit/fluent/geom"

// Strategy is the closed set of layout algorithms a container can run.
// Each is a pure function from container size and item constraints to one
// rectangle per item. The unexported marker keeps the set closed to this
// package: flex, stack and grid.
type Strategy interface {
	Layout(avail geom.Size, items []Item) []geom.Rect

	isStrategy()
}

// FlexStrategy runs the full flexbox solver.
type FlexStrategy struct {
	Config Config
}

func (s FlexStrategy) Layout(avail geom.Size, items []Item) []geom.Rect {
	return Solve(avail, items, s.Config).Rects
}

func (FlexStrategy) isStrategy() {}

// StackStrategy lays items out in a single row or column. Items with a
// positive Grow factor split the space left after fixed items
// proportionally; everything else keeps its measured main extent. The
// cross extent always fills the container.
type StackStrategy struct {
	Axis    geom.Axis
	Spacing float32
}

func (s StackStrategy) Layout(avail geom.Size, items []Item) []geom.Rect {
	if len(items) == 0 {
		return nil
	}
	spacing := s.Spacing
	if spacing < 0 {
		spacing = 0
	}

	availMain := s.Axis.Main(avail)
	availCross := s.Axis.Cross(avail)

	var fixed, totalStretch float32
	mains := make([]float32, len(items))
	for i, it := range items {
		measured := it.Measured
		if !measured.Valid() {
			measured = defaultItemSize
		}
		mains[i] = s.Axis.Main(measured)
		if it.Grow > 0 {
			totalStretch += it.Grow
		} else {
			fixed += mains[i]
		}
	}

	remaining := availMain - fixed - spacing*float32(len(items)-1)
	if remaining < 0 {
		remaining = 0
	}
	if totalStretch > 0 {
		for i, it := range items {
			if it.Grow > 0 {
				mains[i] = remaining * (it.Grow / totalStretch)
			}
		}
	}

	rects := make([]geom.Rect, len(items))
	var cursor float32
	for i := range items {
		rects[i] = geom.RectOf(s.Axis.Pt(cursor, 0), s.Axis.SizeOf(mains[i], availCross))
		cursor += mains[i] + spacing
	}
	return rects
}

func (StackStrategy) isStrategy() {}

// GridStrategy flows items left to right into equal-width columns. The
// column count adapts to the available width when Columns is 0: as many
// columns of at least MinColumnWidth as fit, always at least one. An item's
// Span consumes that many columns, clamped to the row; row heights come
// from the tallest item in the row.
type GridStrategy struct {
	// Columns fixes the column count. 0 derives it from MinColumnWidth.
	Columns int

	// MinColumnWidth is the narrowest acceptable column when the count is
	// derived. 0 falls back to the default item width.
	MinColumnWidth float32

	Gap float32
}

func (s GridStrategy) Layout(avail geom.Size, items []Item) []geom.Rect {
	if len(items) == 0 {
		return nil
	}
	gap := s.Gap
	if gap < 0 {
		gap = 0
	}

	cols := s.columnCount(avail.W, gap)
	colWidth := (avail.W - gap*float32(cols-1)) / float32(cols)
	if colWidth < 0 {
		colWidth = 0
	}

	rects := make([]geom.Rect, len(items))

	var y float32
	col := 0
	rowStart := 0
	var rowHeight float32

	flushRow := func(end int) {
		for i := rowStart; i < end; i++ {
			rects[i].H = rowHeight
		}
		y += rowHeight + gap
		col = 0
		rowStart = end
		rowHeight = 0
	}

	for i, it := range items {
		measured := it.Measured
		if !measured.Valid() {
			measured = defaultItemSize
		}

		span := it.Span
		if span < 1 {
			span = 1
		}
		if span > cols {
			span = cols
		}
		if col+span > cols {
			flushRow(i)
		}

		x := float32(col) * (colWidth + gap)
		w := colWidth*float32(span) + gap*float32(span-1)
		rects[i] = geom.Rect{X: x, Y: y, W: w}
		if measured.H > rowHeight {
			rowHeight = measured.H
		}
		col += span
	}
	flushRow(len(items))

	return rects
}

// columnCount derives the number of grid columns for the available width.
func (s GridStrategy) columnCount(availWidth, gap float32) int {
	if s.Columns > 0 {
		return s.Columns
	}
	minW := s.MinColumnWidth
	if minW <= 0 {
		minW = defaultItemSize.W
	}
	cols := int((availWidth + gap) / (minW + gap))
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (GridStrategy) isStrategy() {}
