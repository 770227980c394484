package genscala

import "strconv"

// quote renders a Go string as a double-quoted Scala string literal.
func quote(s string) string { return strconv.Quote(s) }

// formatInt renders n as a base-10 literal.
func formatInt(n int64) string { return strconv.FormatInt(n, 10) }
