// Package detection classifies a design-document container as a form input.
//
// The Detector scores a candidate against every signature in a catalog using
// four independent heuristics and returns the best match:
//
//   - Label (+3): some text in the subtree contains one of the signature's
//     label keywords ("Email Address" contains "email").
//   - Icon (+2): some layer in the subtree is named with one of the
//     signature's icon keywords ("mail-icon" contains "mail").
//   - Size (+1): the candidate is within 50 units of the signature's width
//     and within 20 units of its height.
//   - Shape (+1): the subtree holds a rectangle for a rectangle signature, or
//     an ellipse for a circle signature.
//
// All matching is lower-case substring matching over the full subtree, not
// just direct children.
//
// # Ties and Fallback
//
// Signatures are visited in catalog order and the best guess changes only on
// a strictly higher score, so the earlier signature wins a tie. When nothing
// scores, the fallback ("text" by default) is returned.
//
// # Errors
//
// Scoring cannot fail. If the host cannot enumerate a candidate's subtree the
// detector returns a *HostTraversalError wrapping the host's error.
package detection
