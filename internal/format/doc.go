// Package format holds the stateless string and number helpers used by the
// HTTP surface and the CLI: sign prefixes, leading-zero trimming, thousands
// grouping, rounding and CSS matrix parsing.
//
// Values are converted to text the way a browser would print them, so a
// float64 of 1234 renders as "1234" and 1e21 as "1e+21".
package format
