package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/input-detect-mcp/internal/scene"
)

// MaxDimension caps the preview's width and height after scaling.
const MaxDimension = 4096

// DefaultHighlight is the overlay color used when Options.Highlight is unset.
const DefaultHighlight = "#ff3b30"

var (
	outlineColor = colorful.Color{R: 0.62, G: 0.62, B: 0.62}
	white        = colorful.Color{R: 1, G: 1, B: 1}
	black        = colorful.Color{}
)

// Options controls preview rendering.
type Options struct {
	// Scale multiplies the candidate's size. Zero means 1.0.
	Scale float64

	// Highlight is the overlay color for highlighted nodes. Nil means
	// DefaultHighlight.
	Highlight *colorful.Color
}

// PreviewResult contains a rendered candidate as base64 PNG.
type PreviewResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
	Highlighted []string `json:"highlighted"`
}

// Preview draws root and its descendants, with the nodes in highlight drawn
// over in the highlight color.
//
// Rectangles and containers are drawn as filled boxes (outlined when they have
// no fill), ellipses as filled ellipses, and text as a bar in a color that
// contrasts with the candidate's background. Descendants without geometry are
// skipped. Coordinates are taken relative to root's own bounds.
//
// Returns an error if root has no geometry, or if either root itself or the
// scaled preview would exceed MaxDimension.
func Preview(root *scene.Element, highlight []string, opts Options) (*PreviewResult, error) {
	rb, ok := root.Bounds()
	if !ok || rb.Width <= 0 || rb.Height <= 0 {
		return nil, fmt.Errorf("node %s has no geometry to render", root.ID())
	}

	scale := opts.Scale
	if scale == 0 {
		scale = 1.0
	}
	if scale < 0 {
		return nil, fmt.Errorf("invalid scale %v", scale)
	}

	hl := opts.Highlight
	if hl == nil {
		c, _ := colorful.Hex(DefaultHighlight)
		hl = &c
	}

	w := int(math.Ceil(rb.Width))
	h := int(math.Ceil(rb.Height))
	// The canvas is drawn at the node's own size before scaling.
	if w > MaxDimension || h > MaxDimension {
		return nil, fmt.Errorf("node %s is %dx%d, larger than %dx%d", root.ID(), w, h, MaxDimension, MaxDimension)
	}
	outW := int(math.Round(float64(w) * scale))
	outH := int(math.Round(float64(h) * scale))
	if outW > MaxDimension || outH > MaxDimension {
		return nil, fmt.Errorf("preview %dx%d exceeds %dx%d", outW, outH, MaxDimension, MaxDimension)
	}
	if outW < 1 || outH < 1 {
		return nil, fmt.Errorf("preview %dx%d is empty at scale %v", outW, outH, scale)
	}

	bg := white
	if fill, ok := root.Fill(); ok {
		bg = fill
	}
	base := imaging.New(w, h, toNRGBA(bg, 255))

	wanted := make(map[string]bool, len(highlight))
	for _, id := range highlight {
		wanted[id] = true
	}
	overlay := image.NewNRGBA(image.Rect(0, 0, w, h))
	drawn := make([]string, 0, len(highlight))

	root.Walk(func(e *scene.Element) {
		b, ok := e.Bounds()
		if !ok {
			return
		}
		r := image.Rect(
			int(math.Floor(b.X-rb.X)),
			int(math.Floor(b.Y-rb.Y)),
			int(math.Ceil(b.X-rb.X+b.Width)),
			int(math.Ceil(b.Y-rb.Y+b.Height)),
		)
		drawNode(base, e, r, bg)

		if wanted[e.ID()] {
			fillRect(overlay, r, toNRGBA(*hl, 64))
			strokeRect(overlay, r, toNRGBA(*hl, 255))
			drawn = append(drawn, e.ID())
		}
	})

	var out image.Image = blend.Normal(base, overlay)
	if scale != 1.0 {
		out = imaging.Resize(out, outW, outH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Highlighted: drawn,
	}, nil
}

func drawNode(img *image.NRGBA, e *scene.Element, r image.Rectangle, bg colorful.Color) {
	fill, hasFill := e.Fill()

	switch e.Kind() {
	case scene.KindText:
		// Text is a bar across the middle of its box.
		ink := textColor(bg)
		if hasFill {
			ink = fill
		}
		mid := r.Min.Y + r.Dy()/2
		half := int(math.Max(1, float64(r.Dy())*0.3))
		fillRect(img, image.Rect(r.Min.X, mid-half, r.Max.X, mid+half), toNRGBA(ink, 255))
	case scene.KindEllipse:
		if hasFill {
			fillEllipse(img, r, toNRGBA(fill, 255))
		} else {
			fillEllipse(img, r, toNRGBA(outlineColor, 255))
		}
	default:
		if hasFill {
			fillRect(img, r, toNRGBA(fill, 255))
		} else {
			strokeRect(img, r, toNRGBA(outlineColor, 255))
		}
	}
}

// textColor picks dark ink on light backgrounds and light ink on dark ones.
func textColor(bg colorful.Color) colorful.Color {
	_, _, l := bg.Hsl()
	if l > 0.5 {
		return bg.BlendLab(black, 0.8).Clamped()
	}
	return bg.BlendLab(white, 0.8).Clamped()
}

func toNRGBA(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func strokeRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	if r.Empty() {
		return
	}
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// fillEllipse fills the ellipse inscribed in r.
func fillEllipse(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	if r.Empty() {
		return
	}
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2

	clip := r.Intersect(img.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}
