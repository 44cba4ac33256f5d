package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironsheep/dem-relief-mcp/internal/imaging"
	"github.com/ironsheep/dem-relief-mcp/internal/raster"
	"github.com/ironsheep/dem-relief-mcp/internal/relief"
	"github.com/ironsheep/dem-relief-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "dem_load", "dem_shaded_relief").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Fills omitted light and cell size arguments from the server config
//  3. Loads the DEM through the cache
//  4. Runs the relief pipeline and encodes or writes the requested layer
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "dem_load":
		return s.handleDEMLoad(args)

	case "dem_colorize":
		return s.handleLayer(args, relief.LayerColor)
	case "dem_hillshade":
		return s.handleLayer(args, relief.LayerHillshade)
	case "dem_shaded_relief":
		return s.handleLayer(args, relief.LayerRelief)
	case "dem_export":
		return s.handleDEMExport(args)
	case "dem_preview":
		return s.handleDEMPreview(args)

	case "dem_grid_overlay":
		return s.handleDEMGridOverlay(args)
	case "dem_probe":
		return s.handleDEMProbe(args)
	case "dem_sample_colors":
		return s.handleDEMSampleColors(args)
	case "dem_crop":
		return s.handleDEMCrop(args)

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

// lightArgs carries the optional rendering arguments shared by most tools.
// Nil fields fall back to the server defaults.
type lightArgs struct {
	CellSize *float64 `json:"cell_size"`
	Azimuth  *float64 `json:"azimuth"`
	Altitude *float64 `json:"altitude"`
}

func (a lightArgs) options(defaults relief.Options) relief.Options {
	opts := defaults
	if a.CellSize != nil {
		opts.CellSize = *a.CellSize
	}
	if a.Azimuth != nil {
		opts.Light.AzimuthDeg = *a.Azimuth
	}
	if a.Altitude != nil {
		opts.Light.AltitudeDeg = *a.Altitude
	}
	return opts
}

// render loads the DEM at path and runs the full pipeline.
func (s *Server) render(path string, la lightArgs) (*relief.Result, error) {
	opts := la.options(s.config.Defaults)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	elev, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return relief.Render(elev, opts)
}

// renderLayer renders the DEM and picks one layer by name.
func (s *Server) renderLayer(path, layer string, la lightArgs) (*raster.Raster[raster.RGB], error) {
	res, err := s.render(path, la)
	if err != nil {
		return nil, err
	}
	return res.Layer(layer)
}

// === DEM Information Handlers ===

type demLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleDEMLoad(args json.RawMessage) (interface{}, error) {
	var a demLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadDEMInfo(s.cache, a.Path)
}

// === Rendering Handlers ===

type demLayerArgs struct {
	lightArgs
	Path       string  `json:"path"`
	Scale      float64 `json:"scale"`
	OutputPath string  `json:"output_path"`
}

// LayerResult is returned by the colorize, hillshade and shaded relief tools.
// Exactly one of OutputPath and Image is set.
type LayerResult struct {
	Layer      string                `json:"layer"`
	Width      int                   `json:"width"`
	Height     int                   `json:"height"`
	Options    relief.Options        `json:"options"`
	OutputPath string                `json:"output_path,omitempty"`
	Image      *imaging.EncodedImage `json:"image,omitempty"`
}

func (s *Server) handleLayer(args json.RawMessage, layer string) (interface{}, error) {
	var a demLayerArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	out, err := s.renderLayer(a.Path, layer, a.lightArgs)
	if err != nil {
		return nil, err
	}

	result := &LayerResult{
		Layer:   layer,
		Width:   out.Width(),
		Height:  out.Height(),
		Options: a.options(s.config.Defaults),
	}

	if a.OutputPath != "" {
		if err := imaging.SaveRaster(a.OutputPath, out); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
		return result, nil
	}

	encoded, err := imaging.EncodeRaster(out, a.Scale)
	if err != nil {
		return nil, err
	}
	result.Image = encoded
	return result, nil
}

type demOutputDirArgs struct {
	lightArgs
	Path      string `json:"path"`
	OutputDir string `json:"output_dir"`
	Layer     string `json:"layer"`
	Sizes     []uint `json:"sizes"`
}

func checkOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output_dir is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

func (s *Server) handleDEMExport(args json.RawMessage) (interface{}, error) {
	var a demOutputDirArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := checkOutputDir(a.OutputDir); err != nil {
		return nil, err
	}

	res, err := s.render(a.Path, a.lightArgs)
	if err != nil {
		return nil, err
	}
	return render.WriteLayers(a.OutputDir, res)
}

// PreviewResult lists the preview files written by dem_preview.
type PreviewResult struct {
	Layer    string            `json:"layer"`
	Previews []imaging.Preview `json:"previews"`
}

func (s *Server) handleDEMPreview(args json.RawMessage) (interface{}, error) {
	var a demOutputDirArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := checkOutputDir(a.OutputDir); err != nil {
		return nil, err
	}
	if a.Layer == "" {
		a.Layer = relief.LayerRelief
	}
	if len(a.Sizes) == 0 {
		a.Sizes = imaging.PreviewSizes
	}

	out, err := s.renderLayer(a.Path, a.Layer, a.lightArgs)
	if err != nil {
		return nil, err
	}

	previews, err := imaging.BuildPreviews(context.Background(), imaging.ImageFromRaster(out), a.OutputDir, a.Layer, a.Sizes)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{Layer: a.Layer, Previews: previews}, nil
}

// === Inspection Handlers ===

type demProbeArgs struct {
	lightArgs
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// ProbeResult extends the pixel report with readable color descriptions.
type ProbeResult struct {
	*relief.PixelReport
	Ramp   imaging.ColorResult `json:"ramp"`
	Relief imaging.ColorResult `json:"relief"`
}

func (s *Server) handleDEMProbe(args json.RawMessage) (interface{}, error) {
	var a demProbeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	elev, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	report, err := relief.Probe(elev, a.X, a.Y, a.options(s.config.Defaults))
	if err != nil {
		return nil, err
	}
	return &ProbeResult{
		PixelReport: report,
		Ramp:        imaging.DescribeColor(report.RampColor),
		Relief:      imaging.DescribeColor(report.ReliefColor),
	}, nil
}

type demSampleColorsArgs struct {
	lightArgs
	Path   string `json:"path"`
	Layer  string `json:"layer"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleDEMSampleColors(args json.RawMessage) (interface{}, error) {
	var a demSampleColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	out, err := s.renderLayer(a.Path, a.Layer, a.lightArgs)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(out, points)
}

type demCropArgs struct {
	lightArgs
	Path   string  `json:"path"`
	Layer  string  `json:"layer"`
	X1     int     `json:"x1"`
	Y1     int     `json:"y1"`
	X2     int     `json:"x2"`
	Y2     int     `json:"y2"`
	Region string  `json:"region"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleDEMCrop(args json.RawMessage) (interface{}, error) {
	var a demCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	out, err := s.renderLayer(a.Path, a.Layer, a.lightArgs)
	if err != nil {
		return nil, err
	}

	if a.Region != "" {
		return imaging.CropQuadrant(out, a.Region, a.Scale)
	}
	return imaging.Crop(out, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

type demGridOverlayArgs struct {
	lightArgs
	Path            string  `json:"path"`
	Layer           string  `json:"layer"`
	GridSpacing     int     `json:"grid_spacing"`
	ShowCoordinates *bool   `json:"show_coordinates"`
	GridColor       string  `json:"grid_color"`
	Opacity         float64 `json:"opacity"`
	Scale           float64 `json:"scale"`
}

func (s *Server) handleDEMGridOverlay(args json.RawMessage) (interface{}, error) {
	var a demGridOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSpacing == 0 {
		a.GridSpacing = 50
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	labels := true
	if a.ShowCoordinates != nil {
		labels = *a.ShowCoordinates
	}

	out, err := s.renderLayer(a.Path, a.Layer, a.lightArgs)
	if err != nil {
		return nil, err
	}

	gridded, err := imaging.GridOverlay(out, imaging.GridOptions{
		Spacing: a.GridSpacing,
		Labels:  labels,
		Color:   a.GridColor,
		Opacity: a.Opacity,
	})
	if err != nil {
		return nil, err
	}

	encoded, err := imaging.EncodeRaster(gridded, a.Scale)
	if err != nil {
		return nil, err
	}
	return &imaging.GridOverlayResult{EncodedImage: *encoded, GridSpacing: a.GridSpacing}, nil
}
