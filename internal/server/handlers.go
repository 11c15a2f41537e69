package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-container/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_resize").
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
		s.log.Debug().Err(err).Str("tool", params.Name).Msg("tool failed")
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
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_resize":
		return s.handleImageResize(args)
	case "image_compare":
		return s.handleImageCompare(args)
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

// open loads the image at path with the server's codec and logger.
func (s *Server) open(path string) (*imaging.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	img, err := imaging.NewFromFile(path, imaging.WithCodec(s.codec), imaging.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return img, nil
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

// ImageLoadResult describes a loaded image file.
type ImageLoadResult struct {
	Path string `json:"path"`
	imaging.Info
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.open(a.Path)
	if err != nil {
		return nil, err
	}
	defer img.Release()

	return &ImageLoadResult{Path: a.Path, Info: *img.Info()}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.open(a.Path)
	if err != nil {
		return nil, err
	}
	defer img.Release()

	return &DimensionsResult{Width: img.Width(), Height: img.Height()}, nil
}

type imageResizeArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// ResizeResult reports the source and resized image metadata.
type ResizeResult struct {
	OutputPath string        `json:"output_path"`
	Original   *imaging.Info `json:"original"`
	Resized    *imaging.Info `json:"resized"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}

	img, err := s.open(a.Path)
	if err != nil {
		return nil, err
	}
	defer img.Release()

	original := img.Info()
	if err := img.Resize(a.Width, a.Height); err != nil {
		return nil, fmt.Errorf("failed to resize to %dx%d: %w", a.Width, a.Height, err)
	}
	if err := img.Save(a.OutputPath); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", a.OutputPath, err)
	}

	return &ResizeResult{
		OutputPath: a.OutputPath,
		Original:   original,
		Resized:    img.Info(),
	}, nil
}

type imageCompareArgs struct {
	Path      string `json:"path"`
	OtherPath string `json:"other_path"`
}

// CompareResult reports whether two files carry identical content.
type CompareResult struct {
	Equal         bool   `json:"equal"`
	Checksum      string `json:"checksum"`
	OtherChecksum string `json:"other_checksum"`
}

func (s *Server) handleImageCompare(args json.RawMessage) (interface{}, error) {
	var a imageCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.open(a.Path)
	if err != nil {
		return nil, err
	}
	defer img.Release()

	other, err := s.open(a.OtherPath)
	if err != nil {
		return nil, err
	}
	defer other.Release()

	return &CompareResult{
		Equal:         img.Equal(other),
		Checksum:      img.Info().Checksum,
		OtherChecksum: other.Info().Checksum,
	}, nil
}
