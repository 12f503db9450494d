package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Classification
		{
			Name:        "color_classify",
			Description: "Classify an arbitrary hex color against the seasonal reference palette. Returns the matching season and group, or an explicit unclassified/ambiguous status when no single match is defensible.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Color to classify, e.g. \"#FF7F50\"",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "palette_list",
			Description: "List the reference palette colors, optionally filtered by season and/or group.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"season": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"spring", "summer", "autumn", "winter"},
						"description": "Optional season filter",
					},
					"group": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"neutrals", "accents", "brights", "softs"},
						"description": "Optional group filter",
					},
				},
			},
		},

		// Face Analysis
		{
			Name:        "face_analyze",
			Description: "Analyze a face photo into personal color attributes: undertone, depth, clarity, season, confidence and a needs-confirmation flag. Reports face_detected=false when no clear face-like skin region is found.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the photo",
					},
					"image_base64": map[string]interface{}{
						"type":        "string",
						"description": "Alternative to path: inline base64 image payload (data URL prefix accepted)",
					},
					"box": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x":      map[string]interface{}{"type": "integer"},
							"y":      map[string]interface{}{"type": "integer"},
							"width":  map[string]interface{}{"type": "integer"},
							"height": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional trusted face bounding box. Omitted means auto-detect.",
					},
				},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file into the cache and return its dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
