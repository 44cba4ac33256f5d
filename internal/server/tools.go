package server

import "github.com/ironsheep/dem-relief-mcp/internal/relief"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the DEM path argument shared by every tool.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the grayscale DEM image (PNG, JPEG, GIF, BMP or TIFF)",
}

// withLight adds the optional cell size and light source arguments to props.
func withLight(props map[string]interface{}) map[string]interface{} {
	props["cell_size"] = map[string]interface{}{
		"type":        "number",
		"description": "Ground distance per pixel, must be > 0. Defaults to the server setting (30)",
	}
	props["azimuth"] = map[string]interface{}{
		"type":        "number",
		"description": "Compass direction the light comes from, degrees clockwise from north. Default 315 (northwest)",
	}
	props["altitude"] = map[string]interface{}{
		"type":        "number",
		"description": "Light angle above the horizon in degrees. Default 45",
	}
	return props
}

// layerProperty selects one of the rendered layers.
var layerProperty = map[string]interface{}{
	"type":        "string",
	"enum":        relief.Layers,
	"description": "Layer to use: color ramp, hillshade or composite relief. Default relief",
	"default":     relief.LayerRelief,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// DEM Information
		{
			Name:        "dem_load",
			Description: "Load a DEM image and return its dimensions, format and elevation range. The decoded raster is cached for subsequent calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Rendering
		{
			Name:        "dem_colorize",
			Description: "Map elevation to a dark-green → yellow → white color ramp. Returns base64 PNG, or writes the file when output_path is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write (.png, .jpg or .bmp) instead of returning image data",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "dem_hillshade",
			Description: "Compute a grayscale hillshade with Horn's method under a simulated light source.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withLight(map[string]interface{}{
					"path": pathProperty,
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write (.png, .jpg or .bmp) instead of returning image data",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "dem_shaded_relief",
			Description: "Render the color ramp darkened by the hillshade: the final shaded-relief image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withLight(map[string]interface{}{
					"path": pathProperty,
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write (.png, .jpg or .bmp) instead of returning image data",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "dem_export",
			Description: "Render all three layers and write output_colorized.png, hillshade.png and shaded_relief.png into a directory.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withLight(map[string]interface{}{
					"path": pathProperty,
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Existing directory to write the layers into",
					},
				}),
				"required": []string{"path", "output_dir"},
			},
		},
		{
			Name:        "dem_preview",
			Description: "Write downscaled previews (128, 256, 512, 1024 px tall by default) of a rendered layer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withLight(map[string]interface{}{
					"path": pathProperty,
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Existing directory to write the previews into",
					},
					"layer": layerProperty,
					"sizes": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Optional preview heights in pixels",
					},
				}),
				"required": []string{"path", "output_dir"},
			},
		},

		// Inspection
		{
			Name:        "dem_grid_overlay",
			Description: "Draw a coordinate grid over a rendered layer to locate pixels for dem_probe or dem_crop. Returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withLight(map[string]interface{}{
					"path":  pathProperty,
					"layer": layerProperty,
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels between grid lines. Default 50",
						"default":     50,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label each intersection with its x,y coordinates. Default true",
						"default":     true,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as #RRGGBB. Default #FF0000",
						"default":     "#FF0000",
					},
					"opacity": map[string]interface{}{
						"type":        "number",
						"description": "Line opacity in (0, 1]. Default 1",
						"default":     1.0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "dem_probe",
			Description: "Report elevation, gradient, slope, aspect, illumination and colors at one pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withLight(map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				}),
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "dem_sample_colors",
			Description: "Sample colors of a rendered layer at multiple points.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withLight(map[string]interface{}{
					"path":  pathProperty,
					"layer": layerProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				}),
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "dem_crop",
			Description: "Crop a region of a rendered layer and return it as base64 PNG. Give x1/y1/x2/y2 or a named region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withLight(map[string]interface{}{
					"path":  pathProperty,
					"layer": layerProperty,
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"region": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
						"description": "Named region, used instead of coordinates",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
				}),
				"required": []string{"path"},
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
