// Package textutil provides the text normalization used when matching caption
// words against author keywords and when budgeting characters per caption part.
//
// Normalization applies Unicode case folding from golang.org/x/text and drops
// every rune that is not a letter or digit.
package textutil
