// Package display holds the scrolling display's fixed-capacity line
// registry and the paint builders for its erase-and-redraw cycle.
//
// The registry always holds exactly its capacity in lines; pushes evict
// from the front in the same quantity they append. The paint builders
// produce directives that touch exactly the rows occupied by the registry
// plus the trailing prompt line, and leave the cursor on the prompt row.
// The display engine relies on that redraw protocol invariant.
package display
