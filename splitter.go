package dumplite

import "strings"

// SplitStatements partitions a SQL script into individual statements on
// top-level ';' terminators. Terminators inside single- or double-quoted
// strings and inside "--" line comments are not statement boundaries.
//
// The scan is a small state machine: Normal, InString(delimiter), InComment.
// A quote closes only when the preceding input character is not a backslash;
// doubled-quote escaping ('') is intentionally not treated specially, so a
// doubled quote reads as close-then-reopen. A line comment ends at '\n' or
// '\r', or at end of input.
//
// Emitted statements are trimmed of surrounding whitespace and keep their
// terminator. Statements that trim down to nothing (or to a lone ';') are
// dropped. Trailing content without a terminator is emitted as-is, so callers
// must not assume every statement ends with ';'. Empty input yields nil.
//
// The function is pure and never fails; any byte sequence is valid input.
func SplitStatements(script string) []string {
	var (
		statements []string
		buf        strings.Builder
		inString   bool
		inComment  bool
		delimiter  byte
	)

	for i := 0; i < len(script); i++ {
		c := script[i]
		var prev, next byte
		if i > 0 {
			prev = script[i-1]
		}
		if i+1 < len(script) {
			next = script[i+1]
		}

		buf.WriteByte(c)

		// Comment handling wins over everything except an open string.
		if !inString && c == '-' && next == '-' {
			inComment = true
			continue
		}
		if inComment {
			if c == '\n' || c == '\r' {
				inComment = false
			}
			continue
		}

		if !inString {
			if c == '\'' || c == '"' {
				inString = true
				delimiter = c
			}
		} else {
			if c == delimiter && prev != '\\' {
				inString = false
			}
			// Content inside a string is inert, including ';'.
			continue
		}

		if c == ';' {
			if stmt := strings.TrimSpace(buf.String()); stmt != "" && stmt != ";" {
				statements = append(statements, stmt)
			}
			buf.Reset()
		}
	}

	if stmt := strings.TrimSpace(buf.String()); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}
