package pdfium

import (
	"fmt"
	"image/color"

	"github.com/wudi/pdfium/geo"
)

// Group applies one operation uniformly across several page objects. There
// is no atomicity: on failure, objects already visited keep their new state
// and the error names the object that failed.
type Group []*PageObject

// Translate moves every object by (dx, dy).
func (g Group) Translate(dx, dy float32) {
	for _, o := range g {
		o.Translate(dx, dy)
	}
}

// Transform post-multiplies every object's transform by m.
func (g Group) Transform(m geo.Matrix) {
	for _, o := range g {
		o.Transform(m)
	}
}

// SetFillColor sets the fill color of every object.
func (g Group) SetFillColor(c color.RGBA) error {
	for i, o := range g {
		if err := o.SetFillColor(c); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

// SetStrokeColor sets the stroke color of every object.
func (g Group) SetStrokeColor(c color.RGBA) error {
	for i, o := range g {
		if err := o.SetStrokeColor(c); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

// SetStrokeWidth sets the stroke width of every object.
func (g Group) SetStrokeWidth(w float32) error {
	for i, o := range g {
		if err := o.SetStrokeWidth(w); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

// SetBlendMode sets the blend mode of every object.
func (g Group) SetBlendMode(mode string) {
	for _, o := range g {
		o.SetBlendMode(mode)
	}
}

// Bounds returns the union of the objects' bounding boxes.
func (g Group) Bounds() (geo.Rect, error) {
	var out geo.Rect
	for i, o := range g {
		r, err := o.Bounds()
		if err != nil {
			return geo.Rect{}, fmt.Errorf("object %d: %w", i, err)
		}
		if i == 0 {
			out = r
			continue
		}
		if r.Left < out.Left {
			out.Left = r.Left
		}
		if r.Bottom < out.Bottom {
			out.Bottom = r.Bottom
		}
		if r.Right > out.Right {
			out.Right = r.Right
		}
		if r.Top > out.Top {
			out.Top = r.Top
		}
	}
	return out, nil
}
