package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// ErrNodeNotFound is returned when a selection reference names no node.
var ErrNodeNotFound = errors.New("node not found")

// Document is a design file decoded from its JSON export.
//
// The export may be either a full file response (an object with a
// "document" member) or a bare node object. Each node object carries at least
// "type"; "id", "name", "characters", "children", geometry
// ("absoluteBoundingBox" or top-level "x"/"y"/"width"/"height") and paints
// ("fills" or a hex "fill") are optional. Nodes without an "id" are given one
// of the form "auto:N" in pre-order.
type Document struct {
	root *Element
	byID map[string]*Element
	raw  any
}

// LoadDocument reads and decodes a JSON export from path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument decodes a JSON export.
func ParseDocument(data []byte) (*Document, error) {
	raw, err := oj.Parse(data)
	if err != nil {
		return nil, err
	}

	top, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be an object, got %T", raw)
	}
	if inner, ok := top["document"].(map[string]any); ok {
		top = inner
	}

	d := &Document{byID: make(map[string]*Element), raw: raw}
	auto := 0
	root, err := d.build(top, "$", &auto)
	if err != nil {
		return nil, err
	}
	d.root = root
	return d, nil
}

func (d *Document) build(obj map[string]any, path string, auto *int) (*Element, error) {
	kind, _ := obj["type"].(string)
	if kind == "" {
		return nil, fmt.Errorf("node at %s has no type", path)
	}

	id, _ := obj["id"].(string)
	if id == "" {
		id = fmt.Sprintf("auto:%d", *auto)
		*auto++
		// Written back so JSONPath results can be mapped to elements.
		obj["id"] = id
	}
	if _, dup := d.byID[id]; dup {
		return nil, fmt.Errorf("duplicate node id %q at %s", id, path)
	}

	e := &Element{kind: Kind(strings.ToUpper(kind)), id: id}
	e.name, _ = obj["name"].(string)
	e.characters, _ = obj["characters"].(string)
	e.bounds = parseBounds(obj)

	fill, err := parseFill(obj)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", id, err)
	}
	e.fill = fill

	d.byID[id] = e

	children, _ := obj["children"].([]any)
	for i, c := range children {
		child, ok := c.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("child %d of node %s is not an object", i, id)
		}
		ce, err := d.build(child, fmt.Sprintf("%s.children[%d]", path, i), auto)
		if err != nil {
			return nil, err
		}
		e.children = append(e.children, ce)
	}
	return e, nil
}

func parseBounds(obj map[string]any) *Bounds {
	src := obj
	if box, ok := obj["absoluteBoundingBox"].(map[string]any); ok {
		src = box
	}
	w, wok := toFloat(src["width"])
	h, hok := toFloat(src["height"])
	if !wok || !hok {
		return nil
	}
	x, _ := toFloat(src["x"])
	y, _ := toFloat(src["y"])
	return &Bounds{X: x, Y: y, Width: w, Height: h}
}

// parseFill returns the first visible SOLID paint from "fills", or the hex
// string in "fill".
func parseFill(obj map[string]any) (*colorful.Color, error) {
	if hex, ok := obj["fill"].(string); ok {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid fill %q: %w", hex, err)
		}
		return &c, nil
	}

	fills, _ := obj["fills"].([]any)
	for _, f := range fills {
		paint, ok := f.(map[string]any)
		if !ok {
			continue
		}
		if t, _ := paint["type"].(string); t != "SOLID" {
			continue
		}
		if visible, ok := paint["visible"].(bool); ok && !visible {
			continue
		}
		rgba, ok := paint["color"].(map[string]any)
		if !ok {
			continue
		}
		r, _ := toFloat(rgba["r"])
		g, _ := toFloat(rgba["g"])
		b, _ := toFloat(rgba["b"])
		c := colorful.Color{R: r, G: g, B: b}.Clamped()
		return &c, nil
	}
	return nil, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// Root returns the top node of the document.
func (d *Document) Root() *Element {
	return d.root
}

// Node returns the node with the given ID.
func (d *Document) Node(id string) (*Element, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// Len reports the number of nodes in the document.
func (d *Document) Len() int {
	return len(d.byID)
}

// Select evaluates a JSONPath expression against the export and returns the
// nodes it matches, in match order. Matches that are not node objects are
// ignored.
func (d *Document) Select(expr string) ([]*Element, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", expr, err)
	}

	var out []*Element
	for _, r := range x.Get(d.raw) {
		obj, ok := r.(map[string]any)
		if !ok {
			continue
		}
		id, _ := obj["id"].(string)
		if e, ok := d.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// Resolve turns selection references into nodes. A reference starting with
// "$" is a JSONPath expression; anything else is a node ID. Order is
// preserved and duplicates are kept.
func (d *Document) Resolve(refs []string) ([]*Element, error) {
	out := make([]*Element, 0, len(refs))
	for _, ref := range refs {
		if strings.HasPrefix(ref, "$") {
			matches, err := d.Select(ref)
			if err != nil {
				return nil, err
			}
			out = append(out, matches...)
			continue
		}
		e, ok := d.byID[ref]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, ref)
		}
		out = append(out, e)
	}
	return out, nil
}
