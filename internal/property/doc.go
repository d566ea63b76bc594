// Package property models the declarations of a generated namespace and
// renders them as Swift source.
//
// A property is one of a closed set of variants:
//
//   - Scalar: a value of a built-in Tag (String, Int?, Colour, Encrypted, ...)
//   - Custom / CustomArray: values expanded through a CustomType initialiser
//   - Reference: a bare identifier naming another declaration
//   - IV: the synthetic encryptionKeyIV constant
//
// Every variant resolves its scheme specific value through an
// override.Resolver and renders a declaration for a Context. Rendering is
// deterministic: dictionary keys are sorted and override ties are broken by
// key order.
package property
