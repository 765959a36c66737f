package retained

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fluentkit/fluent/flex"
	"github.com/fluentkit/fluent/geom"
)

// ItemOptions are the flex properties attached to content when it is added.
// The zero value is a rigid item that shrinks with the default factor of 1.
type ItemOptions struct {
	// Grow is the proportion of free space to claim. Negative values are
	// clamped to 0 when stored.
	Grow float32

	// Shrink is the proportion of deficit to absorb. nil means the
	// default factor of 1; negatives are clamped to 0.
	Shrink *float32

	// Basis selects the initial main-axis size; BasisPx applies when
	// Basis is flex.BasisDefinite.
	Basis   flex.Basis
	BasisPx float32

	// Align overrides the container's cross-axis alignment for this item.
	Align flex.AlignItem

	// Order shifts the item relative to its siblings.
	Order int
}

// clamped returns a copy with invalid values healed. Property setters are
// permissive: bad input degrades, it never errors.
func (o ItemOptions) clamped() ItemOptions {
	if o.Grow < 0 {
		o.Grow = 0
	}
	if o.Shrink != nil && *o.Shrink < 0 {
		zero := float32(0)
		o.Shrink = &zero
	}
	if o.BasisPx < 0 {
		o.BasisPx = 0
	}
	return o
}

// ItemUpdate is a partial change to an existing item's flex properties.
// nil fields are left untouched.
type ItemUpdate struct {
	Grow    *float32
	Shrink  *float32
	Basis   *flex.Basis
	BasisPx *float32
	Align   *flex.AlignItem
	Order   *int
}

type containerItem struct {
	content Content
	opts    ItemOptions
}

// Container is a retained flex container. It owns its item records (the
// grow/shrink/basis/align metadata) but holds only non-owning references to
// content; removing an item detaches the layout relationship without
// touching the content itself.
//
// The container has exactly two states, clean and dirty. Every mutation
// marks it dirty and arms the debounce scheduler; Flush runs the pass
// synchronously and returns it to clean.
type Container struct {
	mu      sync.Mutex
	items   []containerItem
	cfg     flex.Config
	avail   geom.Size
	dirty   bool
	wrapped bool
	closed  bool

	interval time.Duration
	sched    *scheduler
	log      *zap.Logger

	onWrapped   []func(bool)
	onDirection []func(flex.Direction)
	onWrap      []func(flex.Wrap)
}

// Option configures a Container.
type Option func(*Container)

// WithLogger attaches a logger for layout pass tracing. The default is a
// no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Container) {
		if log != nil {
			c.log = log
		}
	}
}

// WithDebounce overrides the mutation coalescing window. A non-positive
// interval makes every mutation lay out synchronously.
func WithDebounce(d time.Duration) Option {
	return func(c *Container) {
		c.interval = d
	}
}

// NewContainer returns a container with the given layout configuration.
func NewContainer(cfg flex.Config, opts ...Option) *Container {
	c := &Container{
		cfg:      cfg,
		interval: DefaultDebounce,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.interval > 0 {
		c.sched = newScheduler(c.interval, c.Flush)
	}
	return c
}

// Add appends content with the given flex properties. Adding content that
// is already present updates its properties in place instead.
func (c *Container) Add(content Content, opts ItemOptions) {
	if content == nil {
		return
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if i := c.indexOf(content); i >= 0 {
		c.items[i].opts = opts.clamped()
	} else {
		c.items = append(c.items, containerItem{content: content, opts: opts.clamped()})
	}
	c.dirty = true
	c.mu.Unlock()
	c.schedule()
}

// Remove detaches content from the container. Content that was never added
// is a no-op, mirroring idempotent-removal semantics; the content itself is
// never destroyed.
func (c *Container) Remove(content Content) {
	c.mu.Lock()
	i := c.indexOf(content)
	if i < 0 || c.closed {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.dirty = true
	c.mu.Unlock()
	c.schedule()
}

// UpdateItem applies a partial property update to an existing item.
// Unknown content is a no-op.
func (c *Container) UpdateItem(content Content, u ItemUpdate) {
	c.mu.Lock()
	i := c.indexOf(content)
	if i < 0 || c.closed {
		c.mu.Unlock()
		return
	}
	o := &c.items[i].opts
	if u.Grow != nil {
		o.Grow = *u.Grow
	}
	if u.Shrink != nil {
		o.Shrink = u.Shrink
	}
	if u.Basis != nil {
		o.Basis = *u.Basis
	}
	if u.BasisPx != nil {
		o.BasisPx = *u.BasisPx
	}
	if u.Align != nil {
		o.Align = *u.Align
	}
	if u.Order != nil {
		o.Order = *u.Order
	}
	*o = o.clamped()
	c.dirty = true
	c.mu.Unlock()
	c.schedule()
}

// Item returns the stored flex properties for content.
func (c *Container) Item(content Content) (ItemOptions, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(content); i >= 0 {
		return c.items[i].opts, true
	}
	return ItemOptions{}, false
}

// Len returns the number of attached items.
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// indexOf finds content by identity. Caller holds c.mu.
func (c *Container) indexOf(content Content) int {
	for i, it := range c.items {
		if it.content == content {
			return i
		}
	}
	return -1
}

// SetDirection changes the main axis direction.
func (c *Container) SetDirection(d flex.Direction) {
	c.mu.Lock()
	if c.cfg.Direction == d || c.closed {
		c.mu.Unlock()
		return
	}
	c.cfg.Direction = d
	c.dirty = true
	listeners := append(([]func(flex.Direction))(nil), c.onDirection...)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(d)
	}
	c.schedule()
}

// SetWrap changes the wrap policy.
func (c *Container) SetWrap(w flex.Wrap) {
	c.mu.Lock()
	if c.cfg.Wrap == w || c.closed {
		c.mu.Unlock()
		return
	}
	c.cfg.Wrap = w
	c.dirty = true
	listeners := append(([]func(flex.Wrap))(nil), c.onWrap...)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(w)
	}
	c.schedule()
}

// SetJustify changes the main-axis distribution policy.
func (c *Container) SetJustify(j flex.Justify) {
	c.setConfig(func(cfg *flex.Config) bool {
		if cfg.Justify == j {
			return false
		}
		cfg.Justify = j
		return true
	})
}

// SetAlignItems changes the default cross-axis alignment.
func (c *Container) SetAlignItems(a flex.AlignItem) {
	c.setConfig(func(cfg *flex.Config) bool {
		if cfg.AlignItems == a {
			return false
		}
		cfg.AlignItems = a
		return true
	})
}

// SetAlignContent changes the multi-line packing policy.
func (c *Container) SetAlignContent(a flex.AlignContent) {
	c.setConfig(func(cfg *flex.Config) bool {
		if cfg.AlignContent == a {
			return false
		}
		cfg.AlignContent = a
		return true
	})
}

// SetGap changes the spacing between rows and columns. Negative gaps are
// clamped to 0.
func (c *Container) SetGap(row, col float32) {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	c.setConfig(func(cfg *flex.Config) bool {
		if cfg.RowGap == row && cfg.ColumnGap == col {
			return false
		}
		cfg.RowGap = row
		cfg.ColumnGap = col
		return true
	})
}

// Resize informs the container of its available size. The container is
// push-driven: it never polls the host for geometry.
func (c *Container) Resize(size geom.Size) {
	c.mu.Lock()
	if c.avail == size || c.closed {
		c.mu.Unlock()
		return
	}
	c.avail = size
	c.dirty = true
	c.mu.Unlock()
	c.schedule()
}

// setConfig applies a config mutation and schedules a pass if it changed
// anything.
func (c *Container) setConfig(mutate func(*flex.Config) bool) {
	c.mu.Lock()
	if c.closed || !mutate(&c.cfg) {
		c.mu.Unlock()
		return
	}
	c.dirty = true
	c.mu.Unlock()
	c.schedule()
}

// OnWrapped registers a callback fired when the layout transitions between
// single- and multi-line.
func (c *Container) OnWrapped(fn func(bool)) {
	c.mu.Lock()
	c.onWrapped = append(c.onWrapped, fn)
	c.mu.Unlock()
}

// OnDirectionChanged registers a callback fired when the direction changes.
func (c *Container) OnDirectionChanged(fn func(flex.Direction)) {
	c.mu.Lock()
	c.onDirection = append(c.onDirection, fn)
	c.mu.Unlock()
}

// OnWrapChanged registers a callback fired when the wrap policy changes.
func (c *Container) OnWrapChanged(fn func(flex.Wrap)) {
	c.mu.Lock()
	c.onWrap = append(c.onWrap, fn)
	c.mu.Unlock()
}

// schedule arms the debounce timer, or flushes synchronously when
// debouncing is disabled.
func (c *Container) schedule() {
	if c.sched != nil {
		c.sched.arm()
		return
	}
	c.Flush()
}

// Flush runs a layout pass now if the container is dirty. The pass runs to
// completion synchronously: measure every item, solve, place every item,
// then notify wrap transitions. A clean or empty container is a no-op.
func (c *Container) Flush() {
	c.mu.Lock()
	if c.closed || !c.dirty {
		c.mu.Unlock()
		return
	}
	c.dirty = false
	cfg := c.cfg
	avail := c.avail
	n := len(c.items)
	contents := acquireContentSlice(n)
	items := make([]flex.Item, n)
	for i, it := range c.items {
		contents[i] = it.content
		items[i] = flex.Item{
			Grow:    it.opts.Grow,
			Shrink:  it.opts.Shrink,
			Basis:   it.opts.Basis,
			BasisPx: it.opts.BasisPx,
			Align:   it.opts.Align,
			Order:   it.opts.Order,
		}
	}
	c.mu.Unlock()

	start := time.Now()
	for i := range items {
		items[i].Measured = contents[i].Measure()
	}
	res := flex.Solve(avail, items, cfg)
	for i, content := range contents {
		content.Place(res.Rects[i])
	}
	releaseContentSlice(contents)

	c.log.Debug("layout pass",
		zap.Int("items", n),
		zap.Int("lines", res.Lines),
		zap.Duration("elapsed", time.Since(start)),
	)

	c.mu.Lock()
	wrapped := res.Wrapped()
	changed := wrapped != c.wrapped
	c.wrapped = wrapped
	listeners := append(([]func(bool))(nil), c.onWrapped...)
	c.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn(wrapped)
		}
	}
}

// Close cancels any pending layout pass and detaches all items. The
// container refuses further mutations; referenced content is untouched.
func (c *Container) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.items = nil
	c.mu.Unlock()
	if c.sched != nil {
		c.sched.stop()
	}
}
