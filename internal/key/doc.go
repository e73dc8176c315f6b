// Package key provides key event types and raw keystroke decoding for the
// input primitives.
//
// This package defines the fundamental types for representing keyboard
// input:
//
//   - Key: Identifies a keyboard key (navigation keys, control keys, runes)
//   - Event: A single resolved key press
//   - Decoder: An explicit state machine pairing special-key prefix bytes
//     with their follow-up codes
//   - Reader: Polling and blocking event consumption over a raw byte source
//
// # Special-Key Decoding
//
// Console keyboards deliver navigation keys as two raw reads: a prefix byte
// (0x00 or 0xE0) followed by a scan code. VT-style terminals deliver them
// as CSI sequences (ESC '[' final). Both forms resolve to the same Event
// values. A scan code byte received without a preceding prefix is an
// ordinary printable character; uppercase H, P, K and M must not be
// swallowed as navigation keys.
package key
