package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/input-detect-mcp/internal/selection"
)

// UI panel actions.
const (
	ActionDetectInputs     = "detect-inputs"
	ActionDetectionResults = "detection-results"
)

// UIMessage is a message posted by the UI panel.
type UIMessage struct {
	Action string `json:"action"`
}

// DetectionResults is the panel message carrying one entry per classified
// node, in selection order.
type DetectionResults struct {
	Action  string             `json:"action"`
	Results []selection.Result `json:"results"`
}

func newDetectionResults(results []selection.Result) *DetectionResults {
	if results == nil {
		results = []selection.Result{}
	}
	return &DetectionResults{Action: ActionDetectionResults, Results: results}
}

// handleUIMessage handles a "ui/message" request. The only action is
// detect-inputs, which classifies the current selection of the active
// document and answers with a detection-results message.
func (s *Server) handleUIMessage(req *MCPRequest) *MCPResponse {
	var msg UIMessage
	if err := json.Unmarshal(req.Params, &msg); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	switch msg.Action {
	case ActionDetectInputs:
		results, err := s.detect("", s.session.selection)
		if err != nil {
			s.logger.Warn("detect-inputs failed", "error", err)
			return s.errorResponse(req.ID, -32000, "Detection failed", err.Error())
		}
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  newDetectionResults(results),
		}
	default:
		return s.errorResponse(req.ID, -32602, "Invalid params", fmt.Sprintf("unknown action: %q", msg.Action))
	}
}
