package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/ironsheep/input-detect-mcp/internal/detection"
	"github.com/ironsheep/input-detect-mcp/internal/render"
	"github.com/ironsheep/input-detect-mcp/internal/scene"
	"github.com/ironsheep/input-detect-mcp/internal/selection"
)

// Version is reported in the initialize handshake.
var Version = "dev"

// Server handles MCP protocol communication
type Server struct {
	cache    *scene.DocumentCache
	detector *detection.Detector
	scanner  *selection.Scanner
	logger   *slog.Logger
	preview  render.Options

	// session is the host state the UI message acts on.
	session session
}

// session is the active document and the current selection within it.
type session struct {
	path      string
	selection []string
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithPreview sets the default preview rendering options.
func WithPreview(o render.Options) Option {
	return func(s *Server) { s.preview = o }
}

// WithDetector replaces the default detector.
func WithDetector(d *detection.Detector) Option {
	return func(s *Server) { s.detector = d }
}

// New creates a new MCP server instance
func New(opts ...Option) *Server {
	s := &Server{
		cache:    scene.NewDocumentCache(),
		detector: detection.New(nil),
		logger:   slog.New(slog.DiscardHandler),
		preview:  render.Options{Scale: 1.0},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.scanner = selection.NewScanner(s.detector, s.logger)
	return s
}

// Preload loads path as the active document and sets the current selection,
// as if the client had called document_load and selection_set.
func (s *Server) Preload(path string, refs []string) error {
	doc, err := s.cache.Load(path)
	if err != nil {
		return err
	}
	if _, err := doc.Resolve(refs); err != nil {
		return err
	}
	s.session = session{path: path, selection: append([]string(nil), refs...)}
	s.logger.Info("document preloaded", "path", path, "nodes", doc.Len(), "selected", len(refs))
	return nil
}

// Serve reads newline-delimited JSON-RPC requests from r and writes
// responses to w until r is exhausted.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("failed to parse request", "error", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.logger.Error("failed to encode response", "error", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	s.logger.Debug("request", "method", req.Method, "id", req.ID)

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ui/message":
		return s.handleUIMessage(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "input-detect-mcp",
				"version": Version,
			},
		},
	}
}
