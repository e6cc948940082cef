package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/input-detect-mcp/internal/catalog"
	"github.com/ironsheep/input-detect-mcp/internal/render"
	"github.com/ironsheep/input-detect-mcp/internal/scene"
	"github.com/ironsheep/input-detect-mcp/internal/selection"
)

// errNoDocument is returned by tools that need a document when none is
// active and none was passed.
var errNoDocument = errors.New("no document loaded; call document_load first or pass path")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "document_load", "detect_inputs").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Document Session
	case "document_load":
		return s.handleDocumentLoad(args)
	case "selection_set":
		return s.handleSelectionSet(args)

	// Detection
	case "detect_inputs":
		return s.handleDetectInputs(args)
	case "explain_detection":
		return s.handleExplainDetection(args)
	case "signatures_list":
		return s.handleSignaturesList(args)
	case "preview_candidate":
		return s.handlePreviewCandidate(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// document returns the document at path, or the active document when path
// is empty.
func (s *Server) document(path string) (*scene.Document, string, error) {
	if path == "" {
		path = s.session.path
	}
	if path == "" {
		return nil, "", errNoDocument
	}
	doc, err := s.cache.Load(path)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}

// single resolves ref to exactly one node.
func single(doc *scene.Document, ref string) (*scene.Element, error) {
	nodes, err := doc.Resolve([]string{ref})
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("%q matched %d nodes, want 1", ref, len(nodes))
	}
	return nodes[0], nil
}

// NodeInfo is a short description of a node.
type NodeInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Eligible bool   `json:"eligible"`
}

func describe(n scene.Node) NodeInfo {
	_, ok := selection.Eligible(n)
	return NodeInfo{ID: n.ID(), Name: n.Name(), Kind: string(n.Kind()), Eligible: ok}
}

// === Document Session Handlers ===

type documentLoadArgs struct {
	Path   string `json:"path"`
	Reload bool   `json:"reload"`
}

// DocumentLoadResult describes a freshly loaded document.
type DocumentLoadResult struct {
	Path       string     `json:"path"`
	Nodes      int        `json:"nodes"`
	Root       NodeInfo   `json:"root"`
	Candidates []NodeInfo `json:"candidates"`
}

func (s *Server) handleDocumentLoad(args json.RawMessage) (interface{}, error) {
	var a documentLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if a.Reload {
		s.cache.Evict(a.Path)
	}

	doc, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	s.session = session{path: a.Path}

	candidates := make([]NodeInfo, 0)
	doc.Root().Walk(func(e *scene.Element) {
		if _, ok := selection.Eligible(e); ok {
			candidates = append(candidates, describe(e))
		}
	})

	s.logger.Info("document loaded", "path", a.Path, "nodes", doc.Len(), "candidates", len(candidates))
	return &DocumentLoadResult{
		Path:       a.Path,
		Nodes:      doc.Len(),
		Root:       describe(doc.Root()),
		Candidates: candidates,
	}, nil
}

type selectionSetArgs struct {
	Selection []string `json:"selection"`
}

// SelectionResult describes the nodes a selection resolved to.
type SelectionResult struct {
	Selected []NodeInfo `json:"selected"`
	Eligible int        `json:"eligible"`
}

func (s *Server) handleSelectionSet(args json.RawMessage) (interface{}, error) {
	var a selectionSetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	doc, _, err := s.document("")
	if err != nil {
		return nil, err
	}
	nodes, err := doc.Resolve(a.Selection)
	if err != nil {
		return nil, err
	}

	s.session.selection = append([]string(nil), a.Selection...)

	res := &SelectionResult{Selected: make([]NodeInfo, 0, len(nodes))}
	for _, n := range nodes {
		info := describe(n)
		if info.Eligible {
			res.Eligible++
		}
		res.Selected = append(res.Selected, info)
	}
	return res, nil
}

// === Detection Handlers ===

type detectInputsArgs struct {
	Path      string   `json:"path"`
	Selection []string `json:"selection"`
}

func (s *Server) handleDetectInputs(args json.RawMessage) (interface{}, error) {
	var a detectInputsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	// The current selection only applies to the active document.
	refs := a.Selection
	if refs == nil && (a.Path == "" || a.Path == s.session.path) {
		refs = s.session.selection
	}

	results, err := s.detect(a.Path, refs)
	if err != nil {
		return nil, err
	}
	return newDetectionResults(results), nil
}

// detect resolves refs in the document at path and scans them. An empty
// selection needs no document.
func (s *Server) detect(path string, refs []string) ([]selection.Result, error) {
	if len(refs) == 0 {
		return s.scanner.Scan(nil)
	}

	doc, _, err := s.document(path)
	if err != nil {
		return nil, err
	}
	nodes, err := doc.Resolve(refs)
	if err != nil {
		return nil, err
	}
	return s.scanner.Scan(selection.Nodes(nodes))
}

type nodeArgs struct {
	Path string `json:"path"`
	Node string `json:"node"`
}

func (s *Server) handleExplainDetection(args json.RawMessage) (interface{}, error) {
	var a nodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Node == "" {
		return nil, errors.New("node is required")
	}

	doc, _, err := s.document(a.Path)
	if err != nil {
		return nil, err
	}
	node, err := single(doc, a.Node)
	if err != nil {
		return nil, err
	}
	return s.detector.Explain(node)
}

// SignaturesResult lists the catalog in scoring order.
type SignaturesResult struct {
	Signatures []catalog.Signature `json:"signatures"`
	Fallback   string              `json:"fallback"`
}

func (s *Server) handleSignaturesList(args json.RawMessage) (interface{}, error) {
	return &SignaturesResult{
		Signatures: s.detector.Catalog().Entries(),
		Fallback:   s.detector.Fallback(),
	}, nil
}

type previewArgs struct {
	Path  string  `json:"path"`
	Node  string  `json:"node"`
	Scale float64 `json:"scale"`
}

// PreviewResult is a rendered candidate plus the classification it shows.
type PreviewResult struct {
	*render.PreviewResult
	Detected string `json:"detected"`
	Score    int    `json:"score"`
}

func (s *Server) handlePreviewCandidate(args json.RawMessage) (interface{}, error) {
	var a previewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Node == "" {
		return nil, errors.New("node is required")
	}

	doc, _, err := s.document(a.Path)
	if err != nil {
		return nil, err
	}
	node, err := single(doc, a.Node)
	if err != nil {
		return nil, err
	}

	report, err := s.detector.Explain(node)
	if err != nil {
		return nil, err
	}
	var highlight []string
	if w, ok := report.Winner(); ok {
		highlight = w.Nodes()
	}

	opts := s.preview
	if a.Scale != 0 {
		opts.Scale = a.Scale
	}
	img, err := render.Preview(node, highlight, opts)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		PreviewResult: img,
		Detected:      s.detector.Catalog().DisplayName(report.Best),
		Score:         report.BestScore,
	}, nil
}
