// Package configfile reads .config files.
//
// A .config file is a JSON object; comments and trailing commas are allowed.
// Numbers are kept as json.Number so integers and doubles render exactly as
// written. The reserved "template" key is exposed as a typed Template.
package configfile
