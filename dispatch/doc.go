// Package dispatch provides an explicit overload registry: callables
// registered under a name plus an ordered argument-type signature, looked
// up at call time by the exact dynamic types of the arguments.
//
// There is no process-wide registry. A Registry is a plain value owned by
// whoever composes it; scope it per module or pass it explicitly.
//
//	reg := dispatch.New()
//	reg.Register("add", func(a, b int) int { return a + b })
//	reg.Register("add", func(a, b string) (int, error) {
//		return strconv.Atoi(a + b)
//	})
//
//	out, err := reg.Call("add", 2, 3) // out[0] == 5
//
// Return types play no part in a signature: two variants of one name must
// differ in their argument types.
package dispatch
