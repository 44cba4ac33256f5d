// Package server implements the MCP (Model Context Protocol) server for
// shaded-relief rendering of digital elevation models.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// DEM Information:
//   - dem_load: Decode a DEM and report size and elevation range
//
// Rendering:
//   - dem_colorize: Elevation color ramp
//   - dem_hillshade: Horn hillshade under a configurable light
//   - dem_shaded_relief: Color ramp darkened by the hillshade
//   - dem_export: Write all three layers into a directory
//   - dem_preview: Write downscaled previews of one layer
//
// Inspection:
//   - dem_grid_overlay: Coordinate grid over a rendered layer
//   - dem_probe: Gradient, slope, aspect and colors at one pixel
//   - dem_sample_colors: Sample a rendered layer at multiple points
//   - dem_crop: Extract a rectangular or named region of a layer
//
// Cell size, azimuth and altitude are optional on every rendering tool.
// Omitted values come from the server Config, which LoadConfig fills from
// the RELIEF_* environment variables.
//
// # DEM Caching
//
// Decoded elevation rasters are cached by path and reused across tool calls.
// Rendered layers are not cached; each call recomputes them from the DEM.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed params) or -32601 (unknown method)
//   - message: Human-readable error description
//   - data: The Go error string
package server
