// Package flex resolves CSS-flexbox-style layout: given a container size,
// an ordered list of item constraints and a configuration, it produces one
// rectangle per item. The solver is pure and allocation-light; it never
// touches the content being laid out. The companion retained package wires
// it to live containers.
//
// The algorithm runs the classic four stages: basis resolution, line
// collection, flexible length resolution, and axis alignment.
// https://www.w3.org/TR/css-flexbox-1/#layout-algorithm
package flex

import "github.com/fluentkit/fluent/geom"

// Direction is the direction in which items are laid out along the main axis.
type Direction uint8

const (
	Row Direction = iota
	RowReverse
	Column
	ColumnReverse
)

// Axis returns the main axis for the direction.
func (d Direction) Axis() geom.Axis {
	if d == Row || d == RowReverse {
		return geom.Horizontal
	}
	return geom.Vertical
}

// Reversed reports whether items are placed in reverse order along the
// main axis.
func (d Direction) Reversed() bool {
	return d == RowReverse || d == ColumnReverse
}

func (d Direction) String() string {
	switch d {
	case Row:
		return "Row"
	case RowReverse:
		return "RowReverse"
	case Column:
		return "Column"
	case ColumnReverse:
		return "ColumnReverse"
	default:
		panic("unreachable")
	}
}

// Wrap controls whether the container is single- or multi-line.
type Wrap uint8

const (
	NoWrap Wrap = iota
	WrapLines
	WrapReverse
)

func (w Wrap) String() string {
	switch w {
	case NoWrap:
		return "NoWrap"
	case WrapLines:
		return "WrapLines"
	case WrapReverse:
		return "WrapReverse"
	default:
		panic("unreachable")
	}
}

// Justify distributes free main-axis space within a line.
type Justify uint8

const (
	// JustifyStart packs items at the start of the line.
	JustifyStart Justify = iota
	// JustifyEnd packs items at the end of the line.
	JustifyEnd
	// JustifyCenter centers the packed items.
	JustifyCenter
	// JustifySpaceBetween puts equal space between items, none at the edges.
	JustifySpaceBetween
	// JustifySpaceAround puts equal space around items, half-size at the edges.
	JustifySpaceAround
	// JustifySpaceEvenly puts equal space between items and at both edges.
	JustifySpaceEvenly
)

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "JustifyStart"
	case JustifyEnd:
		return "JustifyEnd"
	case JustifyCenter:
		return "JustifyCenter"
	case JustifySpaceBetween:
		return "JustifySpaceBetween"
	case JustifySpaceAround:
		return "JustifySpaceAround"
	case JustifySpaceEvenly:
		return "JustifySpaceEvenly"
	default:
		panic("unreachable")
	}
}

// AlignItem aligns an item on the cross axis. On a Config it is the
// container-wide default (align-items); on an Item it is the per-item
// override (align-self), where AlignAuto inherits the container value.
// A container left at AlignAuto stretches, the CSS default.
type AlignItem uint8

const (
	AlignAuto AlignItem = iota
	AlignStretch
	AlignStart
	AlignEnd
	AlignCenter
	// AlignBaseline is accepted but lays out as AlignStart: content exposes
	// no baseline measurement, matching the source design's simplification.
	AlignBaseline
)

func (a AlignItem) String() string {
	switch a {
	case AlignAuto:
		return "AlignAuto"
	case AlignStretch:
		return "AlignStretch"
	case AlignStart:
		return "AlignStart"
	case AlignEnd:
		return "AlignEnd"
	case AlignCenter:
		return "AlignCenter"
	case AlignBaseline:
		return "AlignBaseline"
	default:
		panic("unreachable")
	}
}

// AlignContent packs lines along the cross axis when the container is
// multi-line. Lines always stack sequentially with the cross gap between
// them; ContentStart, ContentEnd and ContentCenter offset the whole block.
// ContentStretch, ContentSpaceBetween and ContentSpaceAround currently lay
// out as ContentStart; full distribution across lines is an extension point.
type AlignContent uint8

const (
	ContentStretch AlignContent = iota
	ContentStart
	ContentEnd
	ContentCenter
	ContentSpaceBetween
	ContentSpaceAround
)

func (a AlignContent) String() string {
	switch a {
	case ContentStretch:
		return "ContentStretch"
	case ContentStart:
		return "ContentStart"
	case ContentEnd:
		return "ContentEnd"
	case ContentCenter:
		return "ContentCenter"
	case ContentSpaceBetween:
		return "ContentSpaceBetween"
	case ContentSpaceAround:
		return "ContentSpaceAround"
	default:
		panic("unreachable")
	}
}

// Basis selects how an item's initial main-axis size is determined.
type Basis uint8

const (
	// BasisAuto uses the item's measured (natural) size.
	BasisAuto Basis = iota
	// BasisDefinite uses the pixel value in Item.BasisPx.
	BasisDefinite
)

// Default size substituted when a measurement comes back degenerate,
// so later grow/shrink math never divides against a zero base.
var defaultItemSize = geom.Size{W: 100, H: 32}

// Item describes one element to lay out. The zero value keeps its measured
// main extent, never grows, shrinks with the CSS default factor of 1, and
// follows the container's cross-axis alignment.
type Item struct {
	// Measured is the item's natural size, queried from the content
	// before solving. Degenerate sizes are replaced with a 100x32 default.
	Measured geom.Size

	// Grow is the proportion of positive free space the item claims.
	// Negative values are treated as 0.
	Grow float32

	// Shrink is the proportion of deficit the item absorbs, weighted by
	// its base size. nil means the default factor of 1; negative values
	// are treated as 0.
	Shrink *float32

	// Basis selects the initial main-axis size; BasisPx is the pixel
	// value used when Basis is BasisDefinite.
	Basis   Basis
	BasisPx float32

	// Align overrides the container's cross-axis alignment for this item.
	// AlignAuto inherits the container value.
	Align AlignItem

	// Order shifts the item relative to its siblings; items with equal
	// order keep their insertion order.
	Order int

	// Span is the number of grid columns the item occupies. Only the grid
	// strategy reads it; 0 means a single column.
	Span int
}

// Config is the container-level layout configuration.
type Config struct {
	Direction    Direction
	Wrap         Wrap
	Justify      Justify
	AlignItems   AlignItem
	AlignContent AlignContent

	// RowGap is the spacing between rows, ColumnGap between columns.
	// Negative gaps are treated as 0.
	RowGap    float32
	ColumnGap float32
}

// mainGap returns the spacing between adjacent items on the main axis.
func (c Config) mainGap() float32 {
	var g float32
	if c.Direction.Axis() == geom.Horizontal {
		g = c.ColumnGap
	} else {
		g = c.RowGap
	}
	if g < 0 {
		return 0
	}
	return g
}

// crossGap returns the spacing between adjacent lines on the cross axis.
func (c Config) crossGap() float32 {
	var g float32
	if c.Direction.Axis() == geom.Horizontal {
		g = c.RowGap
	} else {
		g = c.ColumnGap
	}
	if g < 0 {
		return 0
	}
	return g
}

// Result is a completed layout pass.
type Result struct {
	// Rects holds one rectangle per input item, in input order,
	// positioned relative to the container origin.
	Rects []geom.Rect

	// Lines is the number of flex lines produced by line collection.
	Lines int
}

// Wrapped reports whether the items occupy more than one line.
func (r Result) Wrapped() bool {
	return r.Lines > 1
}
