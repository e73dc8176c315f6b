// Package keyline provides interactive terminal input primitives beyond a
// blocking line read: an in-place editable text line, a masked input line,
// a keyboard-navigable selection menu, and a scrolling display region that
// coexists with a live-edited prompt line beneath it.
//
// All primitives share one engine: raw keystrokes are decoded into key
// events, an in-memory edit buffer tracks the logical text and cursor, and
// every mutation emits the minimal repaint needed to keep the terminal's
// physical cursor in lockstep with the logical one.
//
//	choice, err := keyline.Selection([]string{"Good", "Bad"}, keyline.WithWrap())
//
//	name, err := keyline.Input("Name: ", keyline.WithInitialText("anon"))
//
//	secret, err := keyline.Masked("Token: ")
//
//	d := keyline.New().Display("> ", keyline.WithSubmitHandler(func(line string) {
//		// handle a completed line
//	}))
//	d.Start()
//	d.Push("hello")
//	d.Stop(true)
//
// Only one primitive should be rendering at a time: the minimal-repaint
// strategy assumes exclusive knowledge of the cursor's physical position,
// and concurrent writers would corrupt each other's positional
// bookkeeping.
package keyline
