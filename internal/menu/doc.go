// Package menu implements the keyboard-navigable selection list.
//
// A Menu is a small state machine: Active(index) until Enter confirms the
// highlighted option. Navigation moves the highlight up or down, with
// optional wrap-around at the ends. Each transition repaints only the two
// affected lines: the previously highlighted line is redrawn with the
// passive marker and the newly highlighted line with the active marker.
package menu
