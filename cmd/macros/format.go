// ABOUTME: Small formatting helpers shared by the table-printing commands.
// ABOUTME: Column padding for aligned terminal output.
package main

import "strings"

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
