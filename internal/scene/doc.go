// Package scene models the read-only view of a design document that the
// detector works against.
//
// Node and Container are the narrow capabilities the rest of the module
// depends on. Element is the in-memory implementation, built either from a
// JSON export with LoadDocument/ParseDocument or directly with NewElement in
// tests.
//
// # Selections
//
// A selection is a list of references. A reference that starts with "$" is a
// JSONPath expression evaluated against the raw export; anything else is a
// node ID. See Document.Resolve.
//
// # Geometry
//
// Geometry is optional. A node without "absoluteBoundingBox" or top-level
// "width"/"height" reports ok=false from Dimensions, which the detector treats
// as 0×0.
//
// Nothing in this package mutates a document after it is decoded.
package scene
