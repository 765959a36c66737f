// Package classes translates utility class strings into layout
// configuration, so containers can be declared the way the widget catalog's
// consumers write them:
//
//	classes.Parse("flex-row flex-wrap justify-center items-stretch gap-4")
//
// Numeric suffixes use the spacing scale (one unit = 4px); arbitrary pixel
// values use bracket syntax (gap-[10], basis-[120]). Unknown classes are
// silently ignored. Responsive prefixes (sm:, md:, lg:, xl:, 2xl:) bucket
// properties per breakpoint; ResolveFor merges them mobile-first for a
// concrete width.
package classes

import "github.com/fluentkit/fluent/flex"

// SpacingUnit is the pixel size of one step on the numeric spacing scale.
const SpacingUnit = 4

// Props is a partial layout configuration: nil fields are unset and leave
// the base configuration untouched when applied.
type Props struct {
	// Container-level
	Direction    *flex.Direction
	Wrap         *flex.Wrap
	Justify      *flex.Justify
	AlignItems   *flex.AlignItem
	AlignContent *flex.AlignContent
	RowGap       *float32
	ColumnGap    *float32

	// Item-level
	Grow      *float32
	Shrink    *float32
	Basis     *flex.Basis
	BasisPx   *float32
	AlignSelf *flex.AlignItem
	Order     *int
}

// merge overlays o's set fields onto p.
func (p *Props) merge(o *Props) {
	if o.Direction != nil {
		p.Direction = o.Direction
	}
	if o.Wrap != nil {
		p.Wrap = o.Wrap
	}
	if o.Justify != nil {
		p.Justify = o.Justify
	}
	if o.AlignItems != nil {
		p.AlignItems = o.AlignItems
	}
	if o.AlignContent != nil {
		p.AlignContent = o.AlignContent
	}
	if o.RowGap != nil {
		p.RowGap = o.RowGap
	}
	if o.ColumnGap != nil {
		p.ColumnGap = o.ColumnGap
	}
	if o.Grow != nil {
		p.Grow = o.Grow
	}
	if o.Shrink != nil {
		p.Shrink = o.Shrink
	}
	if o.Basis != nil {
		p.Basis = o.Basis
	}
	if o.BasisPx != nil {
		p.BasisPx = o.BasisPx
	}
	if o.AlignSelf != nil {
		p.AlignSelf = o.AlignSelf
	}
	if o.Order != nil {
		p.Order = o.Order
	}
}

// Config overlays the set container-level fields onto base.
func (p Props) Config(base flex.Config) flex.Config {
	if p.Direction != nil {
		base.Direction = *p.Direction
	}
	if p.Wrap != nil {
		base.Wrap = *p.Wrap
	}
	if p.Justify != nil {
		base.Justify = *p.Justify
	}
	if p.AlignItems != nil {
		base.AlignItems = *p.AlignItems
	}
	if p.AlignContent != nil {
		base.AlignContent = *p.AlignContent
	}
	if p.RowGap != nil {
		base.RowGap = *p.RowGap
	}
	if p.ColumnGap != nil {
		base.ColumnGap = *p.ColumnGap
	}
	return base
}

// Item overlays the set item-level fields onto base.
func (p Props) Item(base flex.Item) flex.Item {
	if p.Grow != nil {
		base.Grow = *p.Grow
	}
	if p.Shrink != nil {
		base.Shrink = p.Shrink
	}
	if p.Basis != nil {
		base.Basis = *p.Basis
	}
	if p.BasisPx != nil {
		base.BasisPx = *p.BasisPx
	}
	if p.AlignSelf != nil {
		base.Align = *p.AlignSelf
	}
	if p.Order != nil {
		base.Order = *p.Order
	}
	return base
}

// Breakpoint identifies a responsive tier.
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM
	BreakpointMD
	BreakpointLG
	BreakpointXL
	Breakpoint2XL
)

// BreakpointConfig holds the pixel thresholds for the responsive tiers.
// Mobile-first: a tier's properties apply at its width and above.
type BreakpointConfig struct {
	SM  float32
	MD  float32
	LG  float32
	XL  float32
	XXL float32
}

// DefaultBreakpoints returns the standard thresholds.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// Active returns the highest tier the width satisfies.
func (c BreakpointConfig) Active(width float32) Breakpoint {
	switch {
	case width >= c.XXL:
		return Breakpoint2XL
	case width >= c.XL:
		return BreakpointXL
	case width >= c.LG:
		return BreakpointLG
	case width >= c.MD:
		return BreakpointMD
	case width >= c.SM:
		return BreakpointSM
	default:
		return BreakpointBase
	}
}

// Computed is a parsed class string, bucketed per breakpoint.
type Computed struct {
	Base Props
	SM   Props
	MD   Props
	LG   Props
	XL   Props
	XXL  Props
}

// ResolveFor merges buckets mobile-first for the given width: base, then
// every tier whose threshold the width meets, in ascending order.
func (c *Computed) ResolveFor(width float32, bp BreakpointConfig) Props {
	result := c.Base
	if width >= bp.SM {
		result.merge(&c.SM)
	}
	if width >= bp.MD {
		result.merge(&c.MD)
	}
	if width >= bp.LG {
		result.merge(&c.LG)
	}
	if width >= bp.XL {
		result.merge(&c.XL)
	}
	if width >= bp.XXL {
		result.merge(&c.XXL)
	}
	return result
}
