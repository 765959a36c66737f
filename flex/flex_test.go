package flex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/fluentkit/fluent/geom"
)

func sz(w, h float32) geom.Size { return geom.Size{W: w, H: h} }

func rect(x, y, w, h float32) geom.Rect { return geom.Rect{X: x, Y: y, W: w, H: h} }

func shrink(f float32) *float32 { return &f }

var approx = cmpopts.EquateApprox(0, 0.5)

func TestSolveRects(t *testing.T) {
	tests := []struct {
		name  string
		avail geom.Size
		items []Item
		cfg   Config
		want  []geom.Rect
	}{
		{
			name:  "row default packs at start and stretches the cross axis",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 40)},
				{Measured: sz(50, 20)},
			},
			cfg:  Config{ColumnGap: 10},
			want: []geom.Rect{rect(0, 0, 50, 40), rect(60, 0, 50, 40)},
		},
		{
			name:  "justify center leading offset",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 20)},
				{Measured: sz(50, 20)},
			},
			cfg:  Config{Justify: JustifyCenter, ColumnGap: 10},
			want: []geom.Rect{rect(95, 0, 50, 20), rect(155, 0, 50, 20)},
		},
		{
			name:  "justify end packs before first item",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 20)},
				{Measured: sz(50, 20)},
			},
			cfg:  Config{Justify: JustifyEnd, ColumnGap: 10},
			want: []geom.Rect{rect(190, 0, 50, 20), rect(250, 0, 50, 20)},
		},
		{
			name:  "justify end stays end-anchored under overflow",
			avail: sz(100, 100),
			items: []Item{
				{Measured: sz(80, 20), Shrink: shrink(0)},
				{Measured: sz(80, 20), Shrink: shrink(0)},
			},
			cfg:  Config{Justify: JustifyEnd},
			want: []geom.Rect{rect(-60, 0, 80, 20), rect(20, 0, 80, 20)},
		},
		{
			name:  "justify center overflows both edges",
			avail: sz(100, 100),
			items: []Item{
				{Measured: sz(80, 20), Shrink: shrink(0)},
				{Measured: sz(80, 20), Shrink: shrink(0)},
			},
			cfg:  Config{Justify: JustifyCenter},
			want: []geom.Rect{rect(-30, 0, 80, 20), rect(50, 0, 80, 20)},
		},
		{
			name:  "space-between has no edge gaps",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 20)},
				{Measured: sz(50, 20)},
				{Measured: sz(50, 20)},
			},
			cfg:  Config{Justify: JustifySpaceBetween},
			want: []geom.Rect{rect(0, 0, 50, 20), rect(125, 0, 50, 20), rect(250, 0, 50, 20)},
		},
		{
			name:  "space-between single item at start",
			avail: sz(300, 100),
			items: []Item{{Measured: sz(50, 20)}},
			cfg:   Config{Justify: JustifySpaceBetween},
			want:  []geom.Rect{rect(0, 0, 50, 20)},
		},
		{
			name:  "space-around half unit at edges",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 20)},
				{Measured: sz(50, 20)},
			},
			cfg: Config{Justify: JustifySpaceAround},
			// free 200, unit 100: 50 | item | 100 | item | 50
			want: []geom.Rect{rect(50, 0, 50, 20), rect(200, 0, 50, 20)},
		},
		{
			name:  "space-evenly equal gaps including edges",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 20)},
				{Measured: sz(50, 20)},
			},
			cfg: Config{Justify: JustifySpaceEvenly},
			// free 200 over 3 gaps
			want: []geom.Rect{rect(66.67, 0, 50, 20), rect(183.33, 0, 50, 20)},
		},
		{
			name:  "column main axis is vertical",
			avail: sz(100, 300),
			items: []Item{
				{Measured: sz(40, 50)},
				{Measured: sz(40, 50)},
			},
			cfg:  Config{Direction: Column, RowGap: 10},
			want: []geom.Rect{rect(0, 0, 40, 50), rect(0, 60, 40, 50)},
		},
		{
			name:  "row-reverse keeps rects in input order",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 20)},
				{Measured: sz(60, 20)},
			},
			cfg:  Config{Direction: RowReverse},
			want: []geom.Rect{rect(60, 0, 50, 20), rect(0, 0, 60, 20)},
		},
		{
			name:  "definite basis overrides main only",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 20), Basis: BasisDefinite, BasisPx: 80},
			},
			cfg:  Config{},
			want: []geom.Rect{rect(0, 0, 80, 20)},
		},
		{
			name:  "degenerate measurement gets default size",
			avail: sz(300, 100),
			items: []Item{{Measured: sz(0, 0)}},
			cfg:   Config{},
			want:  []geom.Rect{rect(0, 0, 100, 32)},
		},
		{
			name:  "negative grow treated as rigid",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 20), Grow: -5},
				{Measured: sz(50, 20), Grow: 1},
			},
			cfg:  Config{},
			want: []geom.Rect{rect(0, 0, 50, 20), rect(50, 0, 250, 20)},
		},
		{
			name:  "order reorders placement not results",
			avail: sz(300, 100),
			items: []Item{
				{Measured: sz(50, 20), Order: 2},
				{Measured: sz(60, 20), Order: 1},
			},
			cfg:  Config{},
			want: []geom.Rect{rect(60, 0, 50, 20), rect(0, 0, 60, 20)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.avail, tt.items, tt.cfg)
			if diff := cmp.Diff(tt.want, got.Rects, approx); diff != "" {
				t.Errorf("Solve() rects mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolveEmpty(t *testing.T) {
	got := Solve(sz(300, 100), nil, Config{})
	if len(got.Rects) != 0 || got.Lines != 0 {
		t.Errorf("Solve(empty) = %+v, want empty result", got)
	}
}

func TestSolveIdempotent(t *testing.T) {
	items := []Item{
		{Measured: sz(50, 20), Grow: 1},
		{Measured: sz(80, 40), Grow: 2, Align: AlignCenter},
		{Measured: sz(120, 30), Shrink: shrink(3)},
	}
	cfg := Config{Wrap: WrapLines, Justify: JustifySpaceAround, ColumnGap: 8, RowGap: 4}

	first := Solve(sz(240, 200), items, cfg)
	second := Solve(sz(240, 200), items, cfg)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated solve differs (-first +second):\n%s", diff)
	}
}

func TestGrowProportionality(t *testing.T) {
	items := []Item{
		{Measured: sz(50, 20), Grow: 1},
		{Measured: sz(50, 20), Grow: 3},
	}
	got := Solve(sz(500, 100), items, Config{})

	grown1 := got.Rects[0].W - 50
	grown2 := got.Rects[1].W - 50
	if grown1 <= 0 {
		t.Fatalf("item 1 did not grow: %+v", got.Rects)
	}
	ratio := grown2 / grown1
	if ratio < 2.99 || ratio > 3.01 {
		t.Errorf("grow ratio = %.3f, want 3", ratio)
	}
	total := got.Rects[0].W + got.Rects[1].W
	if total < 499.5 || total > 500.5 {
		t.Errorf("grown items consume %.1f, want 500", total)
	}
}

func TestWeightedShrink(t *testing.T) {
	// Equal bases, shrink factors 2:1, container forces a 30 unit deficit.
	items := []Item{
		{Measured: sz(50, 20), Shrink: shrink(2)},
		{Measured: sz(50, 20), Shrink: shrink(1)},
	}
	got := Solve(sz(70, 100), items, Config{})

	shrunk1 := 50 - got.Rects[0].W
	shrunk2 := 50 - got.Rects[1].W
	if shrunk1+shrunk2 < 29.5 || shrunk1+shrunk2 > 30.5 {
		t.Fatalf("total shrinkage = %.1f, want 30", shrunk1+shrunk2)
	}
	ratio := shrunk1 / shrunk2
	if ratio < 1.99 || ratio > 2.01 {
		t.Errorf("shrink ratio = %.3f, want 2", ratio)
	}
}

func TestShrinkZeroOverflows(t *testing.T) {
	items := []Item{
		{Measured: sz(80, 20), Shrink: shrink(0)},
		{Measured: sz(80, 20), Shrink: shrink(0)},
	}
	got := Solve(sz(100, 100), items, Config{})

	if got.Rects[0].W != 80 || got.Rects[1].W != 80 {
		t.Errorf("unshrinkable items resized: %+v", got.Rects)
	}
	if end := got.Rects[1].X + got.Rects[1].W; end <= 100 {
		t.Errorf("expected overflow past container, last item ends at %.1f", end)
	}
}

func TestShrinkClampsAtZero(t *testing.T) {
	items := []Item{
		{Measured: sz(500, 20)},
		{Measured: sz(500, 20)},
	}
	got := Solve(sz(10, 100), items, Config{})
	for i, r := range got.Rects {
		if r.W < 0 {
			t.Errorf("item %d has negative width %.1f", i, r.W)
		}
	}
}

func TestWrapBoundary(t *testing.T) {
	// Three 50-wide items, gap 10, container 120: items 1-2 fit (110),
	// item 3 starts line 2.
	items := []Item{
		{Measured: sz(50, 20)},
		{Measured: sz(50, 20)},
		{Measured: sz(50, 20)},
	}
	got := Solve(sz(120, 200), items, Config{Wrap: WrapLines, ColumnGap: 10, RowGap: 10})

	if got.Lines != 2 {
		t.Fatalf("lines = %d, want 2", got.Lines)
	}
	if !got.Wrapped() {
		t.Error("Wrapped() = false, want true")
	}
	if got.Rects[2].X != 0 {
		t.Errorf("item 3 x = %.1f, want 0", got.Rects[2].X)
	}
	if got.Rects[2].Y <= 0 {
		t.Errorf("item 3 y = %.1f, want > 0", got.Rects[2].Y)
	}
}

func TestWrapOversizedItemOwnLine(t *testing.T) {
	items := []Item{
		{Measured: sz(50, 20), Shrink: shrink(0)},
		{Measured: sz(500, 20), Shrink: shrink(0)},
		{Measured: sz(50, 20), Shrink: shrink(0)},
	}
	got := Solve(sz(120, 200), items, Config{Wrap: WrapLines})

	if got.Lines != 3 {
		t.Fatalf("lines = %d, want 3", got.Lines)
	}
	if got.Rects[1].W != 500 {
		t.Errorf("oversized item width = %.1f, want 500", got.Rects[1].W)
	}
}

func TestWrapReverseFlipsLineOrder(t *testing.T) {
	items := []Item{
		{Measured: sz(100, 20)},
		{Measured: sz(100, 20)},
	}
	normal := Solve(sz(120, 200), items, Config{Wrap: WrapLines, RowGap: 10})
	reversed := Solve(sz(120, 200), items, Config{Wrap: WrapReverse, RowGap: 10})

	if normal.Rects[0].Y >= normal.Rects[1].Y {
		t.Fatalf("wrap: expected item 1 above item 2, got %+v", normal.Rects)
	}
	if reversed.Rects[0].Y <= reversed.Rects[1].Y {
		t.Errorf("wrap-reverse: expected item 1 below item 2, got %+v", reversed.Rects)
	}
}

func TestAlignItems(t *testing.T) {
	items := []Item{
		{Measured: sz(50, 40)},
		{Measured: sz(50, 20)},
	}

	t.Run("stretch fills line cross extent", func(t *testing.T) {
		got := Solve(sz(300, 100), items, Config{AlignItems: AlignStretch})
		if got.Rects[0].H != 40 || got.Rects[1].H != 40 {
			t.Errorf("stretch heights = %.1f, %.1f, want 40, 40", got.Rects[0].H, got.Rects[1].H)
		}
	})

	t.Run("unset align-items stretches", func(t *testing.T) {
		got := Solve(sz(300, 100), items, Config{})
		if got.Rects[1].H != 40 {
			t.Errorf("default height = %.1f, want 40", got.Rects[1].H)
		}
	})

	t.Run("start keeps measured size", func(t *testing.T) {
		got := Solve(sz(300, 100), items, Config{AlignItems: AlignStart})
		if got.Rects[1].H != 20 || got.Rects[1].Y != 0 {
			t.Errorf("start placement = %+v, want h 20 at y 0", got.Rects[1])
		}
	})

	t.Run("center offsets without resizing", func(t *testing.T) {
		got := Solve(sz(300, 100), items, Config{AlignItems: AlignCenter})
		if got.Rects[1].H != 20 {
			t.Errorf("center resized item: h = %.1f, want 20", got.Rects[1].H)
		}
		if got.Rects[1].Y != 10 {
			t.Errorf("center offset = %.1f, want 10", got.Rects[1].Y)
		}
	})

	t.Run("end pins to line bottom", func(t *testing.T) {
		got := Solve(sz(300, 100), items, Config{AlignItems: AlignEnd})
		if got.Rects[1].Y != 20 {
			t.Errorf("end offset = %.1f, want 20", got.Rects[1].Y)
		}
	})

	t.Run("baseline degrades to start", func(t *testing.T) {
		got := Solve(sz(300, 100), items, Config{AlignItems: AlignBaseline})
		if got.Rects[1].Y != 0 {
			t.Errorf("baseline offset = %.1f, want 0", got.Rects[1].Y)
		}
	})

	t.Run("align-self overrides container", func(t *testing.T) {
		override := []Item{
			{Measured: sz(50, 40)},
			{Measured: sz(50, 20), Align: AlignEnd},
		}
		got := Solve(sz(300, 100), override, Config{AlignItems: AlignCenter})
		if got.Rects[1].Y != 20 {
			t.Errorf("align-self end offset = %.1f, want 20", got.Rects[1].Y)
		}
	})
}

func TestAlignContent(t *testing.T) {
	// Two lines of cross extent 20, gap 10: block is 50 tall in a 200 container.
	items := []Item{
		{Measured: sz(100, 20)},
		{Measured: sz(100, 20)},
	}
	base := Config{Wrap: WrapLines, RowGap: 10}

	tests := []struct {
		name    string
		content AlignContent
		wantY   float32
	}{
		{"start", ContentStart, 0},
		{"center", ContentCenter, 75},
		{"end", ContentEnd, 150},
		{"space-between degrades to start", ContentSpaceBetween, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.AlignContent = tt.content
			got := Solve(sz(120, 200), items, cfg)
			if got.Rects[0].Y != tt.wantY {
				t.Errorf("first line y = %.1f, want %.1f", got.Rects[0].Y, tt.wantY)
			}
		})
	}
}

func TestLineIndependence(t *testing.T) {
	// Line 1 has a deficit, line 2 has free space; sizes must not bleed
	// across lines.
	items := []Item{
		{Measured: sz(90, 20)},
		{Measured: sz(90, 20)},
		{Measured: sz(40, 20)},
	}
	got := Solve(sz(120, 200), items, Config{Wrap: WrapLines})

	if got.Lines != 3 {
		// 90+90 > 120 so each 90 gets its own line; 40 fits alone too.
		t.Fatalf("lines = %d, want 3", got.Lines)
	}
	if got.Rects[2].W != 40 {
		t.Errorf("line 3 item resized to %.1f, want 40", got.Rects[2].W)
	}
}
