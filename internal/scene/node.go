package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Kind is the structural type of a node, using the design tool's names.
type Kind string

const (
	KindDocument  Kind = "DOCUMENT"
	KindCanvas    Kind = "CANVAS"
	KindFrame     Kind = "FRAME"
	KindGroup     Kind = "GROUP"
	KindInstance  Kind = "INSTANCE"
	KindComponent Kind = "COMPONENT"
	KindText      Kind = "TEXT"
	KindRectangle Kind = "RECTANGLE"
	KindEllipse   Kind = "ELLIPSE"
	KindVector    Kind = "VECTOR"
	KindLine      Kind = "LINE"
)

// Node is a read-only view of one node in a design document.
type Node interface {
	// ID is the document-unique node identifier.
	ID() string

	// Kind is the structural type of the node.
	Kind() Kind

	// Name is the layer name shown in the design tool.
	Name() string

	// Characters is the text content of a TEXT node and empty for every
	// other kind.
	Characters() string
}

// Container is a node whose subtree can be searched and whose own size can be
// read. It is the only capability the detector needs from the host.
type Container interface {
	Node

	// FindAll returns every descendant for which match returns true, in
	// depth-first pre-order. The container itself is never included.
	FindAll(match func(Node) bool) ([]Node, error)

	// Dimensions returns the node's own width and height. ok is false when
	// the node has no geometry.
	Dimensions() (width, height float64, ok bool)
}

// Bounds is an axis-aligned box in document units.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Element is the in-memory implementation of Node and Container.
//
// Elements are built once, either by LoadDocument or with NewElement, and are
// never modified afterwards.
type Element struct {
	id         string
	kind       Kind
	name       string
	characters string
	bounds     *Bounds
	fill       *colorful.Color
	children   []*Element
}

// Option configures an Element built by NewElement.
type Option func(*Element)

// WithID sets the node ID.
func WithID(id string) Option {
	return func(e *Element) { e.id = id }
}

// WithCharacters sets the text content.
func WithCharacters(s string) Option {
	return func(e *Element) { e.characters = s }
}

// WithSize sets the node geometry to a width×height box at the origin.
func WithSize(width, height float64) Option {
	return func(e *Element) { e.bounds = &Bounds{Width: width, Height: height} }
}

// WithBounds sets the node geometry.
func WithBounds(b Bounds) Option {
	return func(e *Element) { e.bounds = &b }
}

// WithFill sets the solid fill color.
func WithFill(c colorful.Color) Option {
	return func(e *Element) { e.fill = &c }
}

// WithChildren appends child elements.
func WithChildren(children ...*Element) Option {
	return func(e *Element) { e.children = append(e.children, children...) }
}

// NewElement builds an element of the given kind and name.
func NewElement(kind Kind, name string, opts ...Option) *Element {
	e := &Element{kind: kind, name: name}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Element) ID() string         { return e.id }
func (e *Element) Kind() Kind         { return e.kind }
func (e *Element) Name() string       { return e.name }
func (e *Element) Characters() string { return e.characters }

// Children returns the direct children. The slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// Bounds returns the node geometry, if any.
func (e *Element) Bounds() (Bounds, bool) {
	if e.bounds == nil {
		return Bounds{}, false
	}
	return *e.bounds, true
}

// Fill returns the first visible solid fill, if any.
func (e *Element) Fill() (colorful.Color, bool) {
	if e.fill == nil {
		return colorful.Color{}, false
	}
	return *e.fill, true
}

// Dimensions implements Container.
func (e *Element) Dimensions() (float64, float64, bool) {
	if e.bounds == nil {
		return 0, 0, false
	}
	return e.bounds.Width, e.bounds.Height, true
}

// FindAll implements Container. The in-memory tree cannot fail, so the error
// is always nil.
func (e *Element) FindAll(match func(Node) bool) ([]Node, error) {
	var out []Node
	e.Walk(func(n *Element) {
		if match(n) {
			out = append(out, n)
		}
	})
	return out, nil
}

// Walk calls fn for every descendant in depth-first pre-order, excluding e.
func (e *Element) Walk(fn func(*Element)) {
	for _, c := range e.children {
		fn(c)
		c.Walk(fn)
	}
}

// IsContainerKind reports whether nodes of kind k can be inspected as a form
// input candidate.
func IsContainerKind(k Kind) bool {
	switch k {
	case KindFrame, KindGroup, KindInstance:
		return true
	}
	return false
}
