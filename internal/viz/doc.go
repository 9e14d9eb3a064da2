// Package viz provides the interactive terminal view of the wave.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: the live wave view with parameter tuning
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset frame counter and amplitudes
//	Tab   - Cycle wave components
//	↑/↓   - Tune the selected amplitude
//	+/-   - Adjust frame rate
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
