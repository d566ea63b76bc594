// Package tree builds the namespace tree of one configuration file and
// renders it.
//
// Build turns a decoded JSON object into a Configuration: objects carrying a
// defaultValue become properties, other objects become nested namespaces.
// Properties that cannot be built are left out and reported as diagnostics.
// Render writes every node with its declarations sorted by rendered text, so
// output never depends on map iteration order.
package tree
