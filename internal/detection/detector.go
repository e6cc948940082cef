package detection

import (
	"math"
	"strings"

	"github.com/ironsheep/input-detect-mcp/internal/catalog"
	"github.com/ironsheep/input-detect-mcp/internal/scene"
)

// Scoring weights and size tolerances.
const (
	LabelPoints = 3
	IconPoints  = 2
	SizePoints  = 1
	ShapePoints = 1

	// WidthTolerance and HeightTolerance are exclusive per-axis limits on
	// the difference between a candidate's size and a signature's size.
	WidthTolerance  = 50.0
	HeightTolerance = 20.0
)

// Detector picks the catalog signature that best matches a candidate node.
//
// A Detector holds no mutable state and may be used from multiple goroutines.
type Detector struct {
	catalog  *catalog.Catalog
	fallback string
}

// Option configures a Detector.
type Option func(*Detector)

// WithFallback sets the identifier returned when no signature scores above
// zero. The default is catalog.DefaultID.
func WithFallback(id string) Option {
	return func(d *Detector) { d.fallback = id }
}

// New creates a Detector over cat. A nil cat means catalog.Default().
func New(cat *catalog.Catalog, opts ...Option) *Detector {
	if cat == nil {
		cat = catalog.Default()
	}
	d := &Detector{catalog: cat, fallback: catalog.DefaultID}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Catalog returns the catalog the detector scores against.
func (d *Detector) Catalog() *catalog.Catalog {
	return d.catalog
}

// Fallback returns the identifier reported when no signature scores.
func (d *Detector) Fallback() string {
	return d.fallback
}

// Detect returns the identifier of the best-matching signature for node.
//
// Detection itself cannot fail; the fallback identifier is returned when
// nothing scores. The only error is a *HostTraversalError when node's
// subtree cannot be read.
func (d *Detector) Detect(node scene.Container) (string, error) {
	r, err := d.Explain(node)
	if err != nil {
		return "", err
	}
	return r.Best, nil
}

// Explain scores node against every signature and reports the breakdown
// along with the winner. Detect is Explain without the breakdown.
//
// # Algorithm
//
//  1. Collect every descendant once. Text content is lower-cased into the
//     label list; rectangle and ellipse descendants are counted.
//  2. Read the node's own width and height, or use 0×0 without geometry.
//  3. For each signature in catalog order, add:
//     LabelPoints if any label contains any label keyword;
//     IconPoints if the signature has icon keywords and any descendant's
//     lower-cased name contains one;
//     SizePoints if width and height are non-zero, the signature has a size,
//     and both per-axis differences are under the tolerances;
//     ShapePoints for a rectangle signature with a rectangle descendant, or a
//     circle signature with an ellipse descendant.
//  4. The best starts as (fallback, 0) and is replaced only on a strictly
//     greater total, so the earliest signature wins a tie.
//
// A "square" signature never earns ShapePoints. Square inputs are matched
// only through their labels, icons and size.
func (d *Detector) Explain(node scene.Container) (*Report, error) {
	f, err := extract(node)
	if err != nil {
		return nil, err
	}

	r := &Report{
		NodeID:   node.ID(),
		NodeName: node.Name(),
		Width:    f.width,
		Height:   f.height,
		Labels:   f.labels,
		Best:     d.fallback,
		Scores:   make([]Score, 0, d.catalog.Len()),
	}

	d.catalog.Range(func(sig catalog.Signature) bool {
		s := score(sig, f)
		r.Scores = append(r.Scores, s)
		if s.Total > r.BestScore {
			r.Best = s.ID
			r.BestScore = s.Total
		}
		return true
	})

	return r, nil
}

// features is everything scoring needs from one candidate, read in a single
// traversal.
type features struct {
	texts      []scene.Node
	labels     []string
	named      []scene.Node
	names      []string
	rectangles []scene.Node
	ellipses   []scene.Node
	width      float64
	height     float64
}

func extract(node scene.Container) (*features, error) {
	all, err := node.FindAll(func(scene.Node) bool { return true })
	if err != nil {
		return nil, &HostTraversalError{NodeID: node.ID(), NodeName: node.Name(), Err: err}
	}

	f := &features{labels: []string{}}
	for _, n := range all {
		switch n.Kind() {
		case scene.KindText:
			f.texts = append(f.texts, n)
			f.labels = append(f.labels, strings.ToLower(n.Characters()))
		case scene.KindRectangle:
			f.rectangles = append(f.rectangles, n)
		case scene.KindEllipse:
			f.ellipses = append(f.ellipses, n)
		}
		if n.Name() != "" {
			f.named = append(f.named, n)
			f.names = append(f.names, strings.ToLower(n.Name()))
		}
	}

	if w, h, ok := node.Dimensions(); ok {
		f.width, f.height = w, h
	}
	return f, nil
}

func score(sig catalog.Signature, f *features) Score {
	s := Score{ID: sig.ID, DisplayName: sig.DisplayName}

	for i, label := range f.labels {
		if kw, ok := containsAny(label, sig.LabelKeywords); ok {
			s.LabelKeywords = appendUnique(s.LabelKeywords, kw)
			s.LabelNodes = append(s.LabelNodes, f.texts[i].ID())
		}
	}
	if len(s.LabelNodes) > 0 {
		s.Label = LabelPoints
	}

	if len(sig.IconKeywords) > 0 {
		for i, name := range f.names {
			if kw, ok := containsAny(name, sig.IconKeywords); ok {
				s.IconKeywords = appendUnique(s.IconKeywords, kw)
				s.IconNodes = append(s.IconNodes, f.named[i].ID())
			}
		}
		if len(s.IconNodes) > 0 {
			s.Icon = IconPoints
		}
	}

	if f.width != 0 && f.height != 0 && sig.Size != nil &&
		math.Abs(f.width-sig.Size.Width) < WidthTolerance &&
		math.Abs(f.height-sig.Size.Height) < HeightTolerance {
		s.Size = SizePoints
	}

	switch {
	case sig.Shape == catalog.ShapeRectangle && len(f.rectangles) > 0:
		s.Shape = ShapePoints
		s.ShapeNodes = nodeIDs(f.rectangles)
	case sig.Shape == catalog.ShapeCircle && len(f.ellipses) > 0:
		s.Shape = ShapePoints
		s.ShapeNodes = nodeIDs(f.ellipses)
	}

	s.Total = s.Label + s.Icon + s.Size + s.Shape
	return s
}

// containsAny returns the first keyword that is a substring of s.
func containsAny(s string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return kw, true
		}
	}
	return "", false
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func nodeIDs(nodes []scene.Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	return ids
}
