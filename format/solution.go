// Package format implements the two small "%"-directive interpreters
// used to render a Solution or an Analysis as text: a printf-like
// mini-language where %<letter> substitutes a computed value and any
// other byte is copied through, with \t \n \\ escapes recognized both
// inside and outside directives.
package format

import (
	"strconv"
	"strings"

	"github.com/domino14/wgs/solver"
)

// Solution renders sol according to fmt. The directives are:
//
//	%w  the word
//	%s  the score
//	%l  letter points
//	%m  word multiplier
//	%b  length bonus
//	%p<sep>  the 1-based positions, separated by the single byte <sep>
//	%(...)  emits the enclosed text only when last is false - used to
//	        separate successive solutions without a trailing separator
//	%%  a literal percent sign
//
// \t, \n, and \\ are recognized as escapes both in plain text and
// inside a %(...) span.
func Solution(fmtStr string, sol solver.Solution, last bool) string {
	var out strings.Builder
	i := 0
	for i < len(fmtStr) {
		c := fmtStr[i]
		switch c {
		case '%':
			i++
			if i >= len(fmtStr) {
				return out.String()
			}
			spec := fmtStr[i]
			switch spec {
			case 'w':
				out.WriteString(sol.Word)
			case 's':
				out.WriteString(strconv.Itoa(sol.Score))
			case 'l':
				out.WriteString(strconv.Itoa(sol.LetterPoints))
			case 'm':
				out.WriteString(strconv.Itoa(sol.WordMultiplier))
			case 'b':
				out.WriteString(formatBonus(sol.LengthBonus))
			case '%':
				out.WriteByte('%')
			case 'p':
				i++
				if i >= len(fmtStr) {
					return out.String()
				}
				sep := fmtStr[i]
				for pi, pos := range sol.Path {
					if pi > 0 {
						out.WriteByte(sep)
					}
					out.WriteString(strconv.Itoa(pos + 1))
				}
			case '(':
				inEscape := false
				i++
				for i < len(fmtStr) {
					c := fmtStr[i]
					if inEscape {
						out.WriteByte(unescape(c))
						inEscape = false
					} else if c == '\\' {
						inEscape = true
						i++
						continue
					} else if c == ')' {
						break
					} else if !last {
						out.WriteByte(c)
					}
					i++
				}
			default:
				out.WriteByte('%')
				out.WriteByte(spec)
			}
			i++
		case '\\':
			i++
			if i >= len(fmtStr) {
				return out.String()
			}
			writeEscape(&out, fmtStr[i])
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// writeEscape appends the character an escape sequence resolves to.
// An unrecognized escape keeps its leading backslash, matching
// unescape_string (solver.cpp); the %(...) span handler below instead
// calls unescape, which drops it, matching that span's own behavior in
// the original.
func writeEscape(out *strings.Builder, c byte) {
	switch c {
	case 't':
		out.WriteByte('\t')
	case 'n':
		out.WriteByte('\n')
	case '\\':
		out.WriteByte('\\')
	default:
		out.WriteByte('\\')
		out.WriteByte(c)
	}
}

func unescape(c byte) byte {
	switch c {
	case 't':
		return '\t'
	case 'n':
		return '\n'
	case '\\':
		return '\\'
	default:
		return c
	}
}

func formatBonus(b float64) string {
	if b == float64(int64(b)) {
		return strconv.FormatInt(int64(b), 10)
	}
	return strconv.FormatFloat(b, 'g', -1, 64)
}
