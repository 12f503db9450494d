// Package server implements the MCP (Model Context Protocol) surface of the
// color-season engine.
//
// This package provides a JSON-RPC 2.0 server that exposes the analysis
// entry points as MCP tools. The core stays a pure in-process library; this
// is the thin serving adapter around it.
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
// Color classification:
//   - color_classify: Match a hex color against the seasonal palette
//   - palette_list: Enumerate the reference palette
//
// Face analysis:
//   - face_analyze: Derive undertone/depth/clarity/season from a photo
//
// Image information:
//   - image_load: Load an image into the cache and get its dimensions
//   - image_dimensions: Get width and height
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images keyed by path,
// reused across tool calls for the lifetime of the process. Inline base64
// payloads are decoded per call and not cached.
//
// # Error Handling
//
// Malformed input (bad hex, unreadable image, degenerate box) is returned
// as a JSON-RPC error with code -32000. "Face not detected" is NOT an
// error: face_analyze reports it as a normal result with
// face_detected=false, so clients can prompt for a clearer photo.
// Unclassified and ambiguous classification outcomes are likewise normal
// results carried in the status field.
package server
