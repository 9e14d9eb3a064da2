// Package render builds animation frames for the terminal.
//
// A [Renderer] maps a frame counter to a fixed-size grid of colored
// glyphs. Each column gets a wave centerline from [wave.Field]; each
// cell picks a glyph by its vertical distance from that centerline:
//
//   - distance < 0.5: solid block at full palette brightness
//   - distance < 1.5: shade block at half brightness
//   - otherwise: blank
//
// Rendering is deterministic: the same frame counter always yields an
// identical frame, so frames can be regenerated, compared, or piped.
package render
