// Package selection runs the detector over a host selection.
package selection

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/ironsheep/input-detect-mcp/internal/detection"
	"github.com/ironsheep/input-detect-mcp/internal/scene"
)

// Result is the detection outcome for one selected node.
type Result struct {
	// Name is the selected node's layer name.
	Name string `json:"name"`

	// Type is the display name of the detected signature.
	Type string `json:"type"`
}

// Scanner classifies every eligible node in a selection.
type Scanner struct {
	detector *detection.Detector
	logger   *slog.Logger
}

// NewScanner creates a Scanner. A nil logger discards log output.
func NewScanner(d *detection.Detector, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{detector: d, logger: logger}
}

// Eligible reports whether n can be classified: a FRAME, GROUP or INSTANCE
// that exposes its subtree.
func Eligible(n scene.Node) (scene.Container, bool) {
	if !scene.IsContainerKind(n.Kind()) {
		return nil, false
	}
	c, ok := n.(scene.Container)
	return c, ok
}

// Scan detects every eligible node in selection and returns one Result per
// eligible node, in selection order. Ineligible nodes are skipped. An empty
// selection yields an empty, non-nil slice.
//
// If any node's subtree cannot be read, Scan returns the *HostTraversalError
// and no results, so a batch is never partially reported.
func (s *Scanner) Scan(selection []scene.Node) ([]Result, error) {
	runID := uuid.NewString()
	log := s.logger.With("run_id", runID)
	log.Debug("detection pass started", "selected", len(selection))

	cat := s.detector.Catalog()
	results := make([]Result, 0, len(selection))
	skipped := 0

	for _, n := range selection {
		c, ok := Eligible(n)
		if !ok {
			skipped++
			continue
		}

		id, err := s.detector.Detect(c)
		if err != nil {
			log.Error("detection pass aborted", "node", n.ID(), "error", err)
			return nil, err
		}

		log.Debug("node classified", "node", n.ID(), "name", n.Name(), "type", id)
		results = append(results, Result{
			Name: n.Name(),
			Type: cat.DisplayName(id),
		})
	}

	log.Info("detection pass finished", "results", len(results), "skipped", skipped)
	return results, nil
}

// Nodes converts elements to the Node interface, preserving order.
func Nodes(elems []*scene.Element) []scene.Node {
	out := make([]scene.Node, len(elems))
	for i, e := range elems {
		out[i] = e
	}
	return out
}
