// Package match ranks identifiers by similarity so that unresolved names in a
// configuration file can be reported together with the keys the author most
// likely meant.
//
// Key functions:
//   - NormalizeIdent: folds camelCase, snake_case and dotted paths to one form
//   - Levenshtein: computes edit distance between strings
//   - Rank / Suggest: order candidate keys by normalized similarity
package match
