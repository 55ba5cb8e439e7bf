// Package syntax provides the single-pass scanners behind rsx: an HTML
// normalizer, an HTML highlighter and an RSX markup highlighter.
//
// Highlighters never change the text they annotate. Every function in this
// package accepts arbitrary input, including truncated or malformed markup,
// and returns a value without failing.
package syntax
