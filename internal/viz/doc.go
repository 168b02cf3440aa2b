// Package viz provides the terminal front end for the sorting session.
//
// [App] is a Bubble Tea model that draws the array as a bar chart, colours
// the indices each step touches, and forwards keys to a
// [controller.Session]. Session notifications arrive through a
// [controller.Feed] and are consumed one message at a time by a listen
// command, so the worker never blocks on rendering.
//
// # Key Bindings
//
//	G            - Generate a new random array
//	Enter/S      - Start the selected algorithm
//	X/Esc        - Cancel the running sort
//	Left/Right   - Choose algorithm (also H/L)
//	+/-          - Faster/slower steps
//	T            - Cycle color themes
//	?            - Show help overlay
//	Q            - Quit
package viz
