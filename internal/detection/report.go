package detection

// Score is one signature's result for one candidate.
type Score struct {
	// ID and DisplayName identify the signature.
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`

	// Total is the sum of the four components below.
	Total int `json:"total"`

	Label int `json:"label"`
	Icon  int `json:"icon"`
	Size  int `json:"size"`
	Shape int `json:"shape"`

	// LabelKeywords are the label keywords that matched, in first-match
	// order. LabelNodes are the IDs of the text nodes that matched.
	LabelKeywords []string `json:"label_keywords,omitempty"`
	LabelNodes    []string `json:"label_nodes,omitempty"`

	// IconKeywords and IconNodes are the same for layer-name matches.
	IconKeywords []string `json:"icon_keywords,omitempty"`
	IconNodes    []string `json:"icon_nodes,omitempty"`

	// ShapeNodes are the rectangle or ellipse descendants that earned the
	// shape point.
	ShapeNodes []string `json:"shape_nodes,omitempty"`
}

// Nodes returns the IDs of every descendant that contributed to the score,
// without duplicates.
func (s Score) Nodes() []string {
	var out []string
	for _, group := range [][]string{s.LabelNodes, s.IconNodes, s.ShapeNodes} {
		for _, id := range group {
			out = appendUnique(out, id)
		}
	}
	return out
}

// Report is the full scoring breakdown for one candidate.
type Report struct {
	NodeID   string `json:"node_id"`
	NodeName string `json:"node_name"`

	// Width and Height are the candidate's own size, 0 without geometry.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Labels are the lower-cased text contents found in the subtree.
	Labels []string `json:"labels"`

	// Best is the winning signature ID and BestScore its total. Best is the
	// fallback ID when BestScore is 0.
	Best      string `json:"best"`
	BestScore int    `json:"best_score"`

	// Scores holds one entry per signature, in catalog order.
	Scores []Score `json:"scores"`
}

// ScoreFor returns the score for signature id.
func (r *Report) ScoreFor(id string) (Score, bool) {
	for _, s := range r.Scores {
		if s.ID == id {
			return s, true
		}
	}
	return Score{}, false
}

// Winner returns the winning signature's score. ok is false when the
// fallback won without any signature scoring.
func (r *Report) Winner() (Score, bool) {
	if r.BestScore == 0 {
		return Score{}, false
	}
	return r.ScoreFor(r.Best)
}
