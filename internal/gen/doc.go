// Package gen renders configuration files to Swift and writes the results.
//
// Render picks the first registered template that can handle a file (the
// enum template, then the namespace template) and returns the generated text
// with any diagnostics. The rest of the package is the batch plumbing around
// it: Scan finds .config files, Writer skips files whose content did not
// change and Runner processes many files in parallel.
//
// The file frame is a text/template; declarations come from the tree and
// property packages.
package gen
