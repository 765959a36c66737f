package classes

import (
	"strconv"
	"strings"

	"github.com/fluentkit/fluent/flex"
)

// Parse splits a class string on whitespace and buckets each recognized
// class into its breakpoint tier. Unknown classes are ignored.
func Parse(classStr string) Computed {
	var out Computed
	for _, class := range strings.Fields(classStr) {
		bucket := &out.Base
		if idx := strings.Index(class, ":"); idx > 0 {
			switch class[:idx] {
			case "sm":
				bucket = &out.SM
			case "md":
				bucket = &out.MD
			case "lg":
				bucket = &out.LG
			case "xl":
				bucket = &out.XL
			case "2xl":
				bucket = &out.XXL
			default:
				// Unknown variant prefix, skip the class entirely.
				continue
			}
			class = class[idx+1:]
		}
		applyClass(bucket, class)
	}
	return out
}

func applyClass(p *Props, class string) {
	switch class {
	case "flex-row":
		p.Direction = dirPtr(flex.Row)
	case "flex-row-reverse":
		p.Direction = dirPtr(flex.RowReverse)
	case "flex-col":
		p.Direction = dirPtr(flex.Column)
	case "flex-col-reverse":
		p.Direction = dirPtr(flex.ColumnReverse)

	case "flex-nowrap":
		p.Wrap = wrapPtr(flex.NoWrap)
	case "flex-wrap":
		p.Wrap = wrapPtr(flex.WrapLines)
	case "flex-wrap-reverse":
		p.Wrap = wrapPtr(flex.WrapReverse)

	case "justify-start":
		p.Justify = justifyPtr(flex.JustifyStart)
	case "justify-end":
		p.Justify = justifyPtr(flex.JustifyEnd)
	case "justify-center":
		p.Justify = justifyPtr(flex.JustifyCenter)
	case "justify-between":
		p.Justify = justifyPtr(flex.JustifySpaceBetween)
	case "justify-around":
		p.Justify = justifyPtr(flex.JustifySpaceAround)
	case "justify-evenly":
		p.Justify = justifyPtr(flex.JustifySpaceEvenly)

	case "items-start":
		p.AlignItems = alignPtr(flex.AlignStart)
	case "items-end":
		p.AlignItems = alignPtr(flex.AlignEnd)
	case "items-center":
		p.AlignItems = alignPtr(flex.AlignCenter)
	case "items-stretch":
		p.AlignItems = alignPtr(flex.AlignStretch)
	case "items-baseline":
		p.AlignItems = alignPtr(flex.AlignBaseline)

	case "content-start":
		p.AlignContent = contentPtr(flex.ContentStart)
	case "content-end":
		p.AlignContent = contentPtr(flex.ContentEnd)
	case "content-center":
		p.AlignContent = contentPtr(flex.ContentCenter)
	case "content-stretch":
		p.AlignContent = contentPtr(flex.ContentStretch)
	case "content-between":
		p.AlignContent = contentPtr(flex.ContentSpaceBetween)
	case "content-around":
		p.AlignContent = contentPtr(flex.ContentSpaceAround)

	case "grow":
		p.Grow = f32Ptr(1)
	case "shrink":
		p.Shrink = f32Ptr(1)
	case "shrink-0":
		p.Shrink = f32Ptr(0)
	case "basis-auto":
		p.Basis = basisPtr(flex.BasisAuto)

	case "self-auto":
		p.AlignSelf = alignPtr(flex.AlignAuto)
	case "self-start":
		p.AlignSelf = alignPtr(flex.AlignStart)
	case "self-end":
		p.AlignSelf = alignPtr(flex.AlignEnd)
	case "self-center":
		p.AlignSelf = alignPtr(flex.AlignCenter)
	case "self-stretch":
		p.AlignSelf = alignPtr(flex.AlignStretch)
	case "self-baseline":
		p.AlignSelf = alignPtr(flex.AlignBaseline)

	case "order-none":
		p.Order = intPtr(0)
	case "order-first":
		p.Order = intPtr(-9999)
	case "order-last":
		p.Order = intPtr(9999)

	default:
		applyParametric(p, class)
	}
}

// applyParametric handles classes with a numeric suffix. Scale suffixes
// (gap-4) multiply by SpacingUnit; bracket suffixes (gap-[10]) are raw
// pixels.
func applyParametric(p *Props, class string) {
	switch {
	case strings.HasPrefix(class, "gap-x-"):
		if px, ok := parseLength(class[len("gap-x-"):]); ok {
			p.ColumnGap = f32Ptr(px)
		}
	case strings.HasPrefix(class, "gap-y-"):
		if px, ok := parseLength(class[len("gap-y-"):]); ok {
			p.RowGap = f32Ptr(px)
		}
	case strings.HasPrefix(class, "gap-"):
		if px, ok := parseLength(class[len("gap-"):]); ok {
			p.RowGap = f32Ptr(px)
			p.ColumnGap = f32Ptr(px)
		}
	case strings.HasPrefix(class, "grow-"):
		if n, ok := parseNumber(class[len("grow-"):]); ok {
			p.Grow = f32Ptr(n)
		}
	case strings.HasPrefix(class, "shrink-"):
		if n, ok := parseNumber(class[len("shrink-"):]); ok {
			p.Shrink = f32Ptr(n)
		}
	case strings.HasPrefix(class, "basis-"):
		if px, ok := parseLength(class[len("basis-"):]); ok {
			p.Basis = basisPtr(flex.BasisDefinite)
			p.BasisPx = f32Ptr(px)
		}
	case strings.HasPrefix(class, "order-"):
		if n, ok := parseNumber(class[len("order-"):]); ok {
			p.Order = intPtr(int(n))
		}
	}
}

// parseLength resolves a scale step or a bracketed pixel value.
func parseLength(s string) (float32, bool) {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSuffix(s[1:], "]")
		inner = strings.TrimSuffix(inner, "px")
		return parseNumber(inner)
	}
	n, ok := parseNumber(s)
	if !ok {
		return 0, false
	}
	return n * SpacingUnit, true
}

func parseNumber(s string) (float32, bool) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || v < 0 {
		return 0, false
	}
	return float32(v), true
}

func dirPtr(d flex.Direction) *flex.Direction { return &d }

func wrapPtr(w flex.Wrap) *flex.Wrap { return &w }

func justifyPtr(j flex.Justify) *flex.Justify { return &j }

func alignPtr(a flex.AlignItem) *flex.AlignItem { return &a }

func contentPtr(c flex.AlignContent) *flex.AlignContent { return &c }

func basisPtr(b flex.Basis) *flex.Basis { return &b }

func f32Ptr(f float32) *float32 { return &f }

func intPtr(n int) *int { return &n }
