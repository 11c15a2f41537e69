package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load a PNG or JPEG file and return its detected format, dimensions, channel count, size and CRC-32 checksum.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of a PNG or JPEG file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_resize",
			Description: "Resize an image to exactly width x height pixels, re-encode it in its original format and write it to output_path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty("Absolute path to the source image"),
					"output_path": pathProperty("Absolute path to write the resized image to. Existing files are overwritten."),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels (> 0)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels (> 0)",
					},
				},
				"required": []string{"path", "output_path", "width", "height"},
			},
		},
		{
			Name:        "image_compare",
			Description: "Check whether two image files have identical encoded content by comparing CRC-32 checksums.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty("Absolute path to the first image"),
					"other_path": pathProperty("Absolute path to the second image"),
				},
				"required": []string{"path", "other_path"},
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
