// Package editline provides the in-memory line edit buffer shared by the
// editable input, masked input and scrolling display primitives.
//
// A Buffer holds an ordered sequence of characters and a cursor index with
// the invariant 0 <= cursor <= length. Every mutation returns a repaint
// directive: the minimal cursor movement and text overwrite that brings
// the terminal back in sync with the buffer. Directives rewrite only the
// affected suffix of the line, so the common append-at-end case costs a
// single character write.
package editline
