// Package terminal adapts a tcell screen into the event and colour vocabulary used by the
// rest of the program.
//
// Features:
//   - Non-blocking event polling (Source) over tcell's event queue
//   - Mouse press/release/move synthesis from tcell button masks
//   - 24-bit RGB colours with tcell conversion
//
// The frame loop is single-threaded: Poll never blocks and never spawns goroutines.
package terminal
