package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the JSON export. Defaults to the active document.",
}

var nodeProperty = map[string]interface{}{
	"type":        "string",
	"description": "Node ID, or a JSONPath expression starting with $ that matches exactly one node",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Document Session
		{
			Name:        "document_load",
			Description: "Load a design document JSON export and make it the active document. Clears the current selection and lists the nodes that can be classified.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the JSON export",
					},
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Re-read the file even if it is cached. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "selection_set",
			Description: "Set the current selection on the active document. The selection is what the detect-inputs UI message classifies.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"selection": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Node IDs or JSONPath expressions (starting with $), in selection order",
					},
				},
				"required": []string{"selection"},
			},
		},

		// Detection
		{
			Name:        "detect_inputs",
			Description: "Classify each selected FRAME, GROUP or INSTANCE as a form input type. Other node kinds are skipped. Returns one {name, type} per classified node in selection order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"selection": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Node IDs or JSONPath expressions. Defaults to the current selection",
					},
				},
			},
		},
		{
			Name:        "explain_detection",
			Description: "Show how one node scored against every input signature: label, icon, size and shape points, the keywords that matched, and the winner.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"node": nodeProperty,
				},
				"required": []string{"node"},
			},
		},
		{
			Name:        "signatures_list",
			Description: "List the input signatures in the order they are scored. Earlier signatures win ties.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "preview_candidate",
			Description: "Render a node as a PNG schematic with the layers that decided its classification highlighted. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"node": nodeProperty,
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Defaults to the configured scale",
					},
				},
				"required": []string{"node"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
