// Package server implements the MCP (Model Context Protocol) server for form
// input detection.
//
// The server loads design documents exported as JSON node trees, keeps an
// active document and a current selection, and classifies selected
// containers as HTML form input types.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ui/message: Messages posted by the UI panel
//   - ping: Health check
//
// # Available Tools
//
// Document Session:
//   - document_load: Load a JSON export and make it the active document
//   - selection_set: Set the current selection (node IDs or JSONPath)
//
// Detection:
//   - detect_inputs: Classify the selection, one {name, type} per container
//   - explain_detection: Per-signature score breakdown for one node
//   - signatures_list: The signature catalog in scoring order
//   - preview_candidate: PNG schematic with the deciding layers highlighted
//
// # UI Messages
//
// The panel posts {"action": "detect-inputs"} as a ui/message request. The
// server classifies the current selection and answers with
//
//	{"action": "detection-results", "results": [{"name": "Email Field", "type": "Email Input"}]}
//
// Any other action is rejected with -32602.
//
// # Error Handling
//
// Errors follow JSON-RPC 2.0 conventions:
//   - -32601: Method not found
//   - -32602: Invalid params
//   - -32000: Tool or detection failure (details in data field)
//
// A traversal failure while classifying any node fails the whole request.
// No partial results are returned.
//
// # Logging
//
// All logging goes to stderr through log/slog so it never interferes with
// the JSON-RPC stream on stdout.
package server
