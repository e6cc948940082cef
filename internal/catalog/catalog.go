package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup when no signature has the requested ID.
var ErrNotFound = errors.New("signature not found")

// Shape is the outline a signature expects its container to be drawn with.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeSquare    Shape = "square"
	ShapeNone      Shape = "none"
)

// Size is a nominal width and height in document units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Signature describes the visual and textual traits of one input type.
type Signature struct {
	// ID is the stable key of the signature, unique within a catalog.
	ID string `json:"id"`

	// DisplayName is the human-readable label reported to the UI.
	DisplayName string `json:"display_name"`

	// Shape is the expected outline. Only rectangle and circle take part in
	// shape scoring.
	Shape Shape `json:"shape"`

	// Size is the expected container size, or nil when size is not scored.
	Size *Size `json:"size,omitempty"`

	// LabelKeywords are lowercase substrings matched against text content.
	LabelKeywords []string `json:"label_keywords"`

	// IconKeywords are lowercase substrings matched against layer names.
	IconKeywords []string `json:"icon_keywords,omitempty"`

	// SpecialTraits are descriptive tags. They are not scored.
	SpecialTraits []string `json:"special_traits,omitempty"`
}

// clone returns a deep copy so callers cannot reach the catalog's backing
// arrays.
func (s Signature) clone() Signature {
	out := s
	if s.Size != nil {
		size := *s.Size
		out.Size = &size
	}
	out.LabelKeywords = append([]string(nil), s.LabelKeywords...)
	out.IconKeywords = append([]string(nil), s.IconKeywords...)
	out.SpecialTraits = append([]string(nil), s.SpecialTraits...)
	return out
}

// Catalog is an immutable, ordered set of signatures.
type Catalog struct {
	entries []Signature
	index   map[string]int
}

// New builds a catalog from signatures in the given order.
//
// Returns an error if a signature has an empty ID or if two signatures share
// an ID.
func New(signatures ...Signature) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Signature, 0, len(signatures)),
		index:   make(map[string]int, len(signatures)),
	}
	for _, sig := range signatures {
		if sig.ID == "" {
			return nil, fmt.Errorf("signature %q has an empty id", sig.DisplayName)
		}
		if _, dup := c.index[sig.ID]; dup {
			return nil, fmt.Errorf("duplicate signature id %q", sig.ID)
		}
		c.index[sig.ID] = len(c.entries)
		c.entries = append(c.entries, sig.clone())
	}
	return c, nil
}

// MustNew is like New but panics on error. It is intended for catalogs
// declared as package-level literals.
func MustNew(signatures ...Signature) *Catalog {
	c, err := New(signatures...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the signature with the given ID.
func (c *Catalog) Lookup(id string) (Signature, error) {
	i, ok := c.index[id]
	if !ok {
		return Signature{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.entries[i].clone(), nil
}

// Entries returns every signature in catalog order.
func (c *Catalog) Entries() []Signature {
	out := make([]Signature, len(c.entries))
	for i, sig := range c.entries {
		out[i] = sig.clone()
	}
	return out
}

// Len reports the number of signatures.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// DisplayName returns the display name for id, or id itself when the catalog
// has no such signature.
func (c *Catalog) DisplayName(id string) string {
	if i, ok := c.index[id]; ok {
		return c.entries[i].DisplayName
	}
	return id
}

// Range calls fn for every signature in order without copying, stopping early
// if fn returns false. fn must not modify the signature's slices.
func (c *Catalog) Range(fn func(Signature) bool) {
	for _, sig := range c.entries {
		if !fn(sig) {
			return
		}
	}
}
