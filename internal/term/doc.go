// Package term abstracts the terminal the input primitives run on.
//
// Backend is the contract: raw byte input (blocking and non-blocking),
// buffered output of control sequences and literal text, and raw-mode
// lifecycle. Tty implements it over the process's controlling terminal
// using golang.org/x/term for raw mode and a zero-timeout poll for
// pending-input checks. Script is an in-memory implementation for tests:
// it plays back scripted input bytes and captures everything written.
package term
