// Package render draws a quick PNG preview of a form-input candidate.
//
// The preview is a schematic, not a faithful rendering: boxes for rectangles
// and containers, filled ellipses, and bars where text sits. Nodes that drove
// the detector's decision are drawn over with a translucent highlight so a
// reviewer can see why a candidate was classified the way it was.
//
// Rendering only reads the document. Output is base64 PNG in the same shape
// the image tools return crops.
package render
