// Package fluent ties the layout solver, the retained container and the
// utility class parser together behind a small construction API.
//
//	row := fluent.Row("justify-center items-stretch gap-4")
//	row.Add(label, fluent.Options("grow shrink-0"))
//	row.Resize(geom.Size{W: 800, H: 600})
//
// For containers whose configuration should change with the available
// width, NewResponsive resolves breakpoint-prefixed classes on every
// Resize.
package fluent

import (
	"github.com/fluentkit/fluent/classes"
	"github.com/fluentkit/fluent/flex"
	"github.com/fluentkit/fluent/geom"
	"github.com/fluentkit/fluent/retained"
)

// NewContainer builds a container from a utility class string. Breakpoint
// variants are ignored here; use NewResponsive for those.
func NewContainer(classStr string, opts ...retained.Option) *retained.Container {
	computed := classes.Parse(classStr)
	return retained.NewContainer(computed.Base.Config(flex.Config{}), opts...)
}

// Row builds a horizontal container, with extra classes layered on top.
func Row(classStr string, opts ...retained.Option) *retained.Container {
	return NewContainer("flex-row "+classStr, opts...)
}

// Column builds a vertical container.
func Column(classStr string, opts ...retained.Option) *retained.Container {
	return NewContainer("flex-col "+classStr, opts...)
}

// Options translates item-level utility classes into item options.
func Options(classStr string) retained.ItemOptions {
	p := classes.Parse(classStr).Base
	var o retained.ItemOptions
	if p.Grow != nil {
		o.Grow = *p.Grow
	}
	if p.Shrink != nil {
		o.Shrink = p.Shrink
	}
	if p.Basis != nil {
		o.Basis = *p.Basis
	}
	if p.BasisPx != nil {
		o.BasisPx = *p.BasisPx
	}
	if p.AlignSelf != nil {
		o.Align = *p.AlignSelf
	}
	if p.Order != nil {
		o.Order = *p.Order
	}
	return o
}

// Responsive wraps a container and re-resolves its class string against
// the current width on every resize, so md:flex-row style variants take
// effect as the container crosses breakpoint thresholds.
type Responsive struct {
	container *retained.Container
	computed  classes.Computed
	bp        classes.BreakpointConfig
}

// NewResponsive builds a responsive container from a class string.
func NewResponsive(classStr string, bp classes.BreakpointConfig, opts ...retained.Option) *Responsive {
	computed := classes.Parse(classStr)
	return &Responsive{
		container: retained.NewContainer(computed.Base.Config(flex.Config{}), opts...),
		computed:  computed,
		bp:        bp,
	}
}

// Container exposes the wrapped container for adds, removals and
// notifications.
func (r *Responsive) Container() *retained.Container {
	return r.container
}

// Resize resolves the class buckets for the new width, applies any
// configuration that changed, then forwards the size. The container's
// setters detect no-ops, so crossing no threshold schedules at most the
// one pass the resize itself needs.
func (r *Responsive) Resize(size geom.Size) {
	cfg := r.computed.ResolveFor(size.W, r.bp).Config(flex.Config{})
	r.container.SetDirection(cfg.Direction)
	r.container.SetWrap(cfg.Wrap)
	r.container.SetJustify(cfg.Justify)
	r.container.SetAlignItems(cfg.AlignItems)
	r.container.SetAlignContent(cfg.AlignContent)
	r.container.SetGap(cfg.RowGap, cfg.ColumnGap)
	r.container.Resize(size)
}

// Close releases the wrapped container.
func (r *Responsive) Close() {
	r.container.Close()
}
