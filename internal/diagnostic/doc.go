// Package diagnostic collects the non-fatal findings of a generation run.
//
// A configuration file can still render when individual properties are
// dropped (an unconvertible default, an unresolved reference, a custom value
// that does not fit its initialiser). Each such decision is recorded here with
// a stable code so callers can report or assert on it.
package diagnostic
