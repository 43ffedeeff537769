// Package logic provides vocabulary predicates for syllogistic inference
// entities.
//
// Premises capture the asserted categorical propositions; conclusions
// capture what the engine derived from them, with provenance back to the
// figure and the premise terms.
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/termlogic/vocabulary/logic"
package logic
