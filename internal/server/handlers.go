package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/stylesense/colorseason/internal/analyzer"
	"github.com/stylesense/colorseason/internal/facescan"
	"github.com/stylesense/colorseason/internal/imageio"
	"github.com/stylesense/colorseason/internal/palette"
	"github.com/stylesense/colorseason/internal/season"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_classify").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool. The response wraps the tool result in MCP's content format:
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
	// Color Classification
	case "color_classify":
		return s.handleColorClassify(args)
	case "palette_list":
		return s.handlePaletteList(args)

	// Face Analysis
	case "face_analyze":
		return s.handleFaceAnalyze(args)

	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Color Classification Handlers ===

type colorClassifyArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleColorClassify(args json.RawMessage) (interface{}, error) {
	var a colorClassifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return analyzer.ClassifyColor(a.Hex)
}

type paletteListArgs struct {
	Season string `json:"season"`
	Group  string `json:"group"`
}

func (s *Server) handlePaletteList(args json.RawMessage) (interface{}, error) {
	var a paletteListArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	colors := palette.List(palette.Season(a.Season), palette.Group(a.Group))
	return map[string]interface{}{
		"colors": colors,
		"count":  len(colors),
	}, nil
}

// === Face Analysis Handlers ===

type faceAnalyzeArgs struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
	Box         *struct {
		X      int `json:"x"`
		Y      int `json:"y"`
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"box"`
}

// faceAnalyzeResult is the tool-level wrapper: "no face" is a normal result
// variant here, not a protocol error.
type faceAnalyzeResult struct {
	FaceDetected bool             `json:"face_detected"`
	Reason       string           `json:"reason,omitempty"`
	Analysis     *season.Analysis `json:"analysis,omitempty"`
}

func (s *Server) handleFaceAnalyze(args json.RawMessage) (interface{}, error) {
	var a faceAnalyzeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var (
		img image.Image
		err error
	)
	switch {
	case a.Path != "":
		img, err = s.cache.Load(a.Path)
	case a.ImageBase64 != "":
		img, err = imageio.DecodeBase64(a.ImageBase64)
	default:
		return nil, fmt.Errorf("either path or image_base64 is required")
	}
	if err != nil {
		return nil, err
	}

	var box *facescan.FaceBox
	if a.Box != nil {
		box = &facescan.FaceBox{X: a.Box.X, Y: a.Box.Y, Width: a.Box.Width, Height: a.Box.Height}
	}

	analysis, err := analyzer.AnalyzeFace(img, box)
	if errors.Is(err, analyzer.ErrFaceNotDetected) {
		return &faceAnalyzeResult{
			FaceDetected: false,
			Reason:       "no clear face-like skin region found; try a closer, well-lit photo",
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &faceAnalyzeResult{FaceDetected: true, Analysis: analysis}, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageio.GetDimensions(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageio.GetDimensions(s.cache, a.Path)
}
