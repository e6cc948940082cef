package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetToolDefinitions(t *testing.T) {
	var names []string
	for _, tool := range GetToolDefinitions() {
		names = append(names, tool.Name)
	}

	assert.Equal(t, []string{
		"document_load",
		"selection_set",
		"detect_inputs",
		"explain_detection",
		"signatures_list",
		"preview_candidate",
	}, names)
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			assert.NotEmpty(t, tool.Description)
			require.NotNil(t, tool.InputSchema)
			assert.Equal(t, "object", tool.InputSchema["type"])

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			require.True(t, ok, "properties should be a map")

			required, _ := tool.InputSchema["required"].([]string)
			for _, name := range required {
				assert.Contains(t, props, name, "required property %s is not defined", name)
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	want := map[string][]string{
		"document_load":     {"path"},
		"selection_set":     {"selection"},
		"detect_inputs":     nil,
		"explain_detection": {"node"},
		"signatures_list":   nil,
		"preview_candidate": {"node"},
	}

	for _, tool := range GetToolDefinitions() {
		required, _ := tool.InputSchema["required"].([]string)
		assert.Equal(t, want[tool.Name], required, tool.Name)
	}
}

func TestHandleToolsList(t *testing.T) {
	resp := call(t, New(), "tools/list", nil)
	require.Nil(t, resp.Error)

	result := resp.Result.(map[string]interface{})
	tools, ok := result["tools"].([]Tool)
	require.True(t, ok, "tools should be a slice of Tool")
	assert.Len(t, tools, len(GetToolDefinitions()))
}
