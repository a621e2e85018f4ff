package format

import (
	"strconv"
	"strings"

	"github.com/domino14/wgs/analyzer"
)

// Analysis renders a into text per fmtStr. starValue supplies the
// counter for a trailing "*" specifier (used by GUIs that want one
// static format string whose meaning changes with the tile under the
// cursor). The directives are:
//
//	%B    board letters
//	%nW   (unique) words found at position n, or overall if n omitted
//	%nS   score at position n, or overall if n omitted
//	%nC   count of n-letter words
//	%nP   points for n-letter words
//	%n+C  count of words with n or more letters
//	%n+P  points for words with n or more letters
//	%nX   highest scoring n-letter word
//	%nY   score of the highest scoring n-letter word
//	%%    a literal percent sign
func Analysis(fmtStr string, a *analyzer.Analysis, starValue int) string {
	var out strings.Builder
	i := 0
	for i < len(fmtStr) {
		c := fmtStr[i]
		switch c {
		case '%':
			i++
			counter := 0
			for i < len(fmtStr) && fmtStr[i] >= '0' && fmtStr[i] <= '9' {
				counter = counter*10 + int(fmtStr[i]-'0')
				i++
			}

			plusFlag := false
			if i < len(fmtStr) && fmtStr[i] == '+' {
				plusFlag = true
				i++
			}

			if i < len(fmtStr) && fmtStr[i] == '*' {
				counter = starValue
				i++
			}

			if i >= len(fmtStr) {
				return out.String()
			}

			spec := fmtStr[i]
			switch spec {
			case 'B':
				out.WriteString(a.BoardLetters())
			case 'W':
				out.WriteString(strconv.Itoa(a.PositionWords(counter)))
			case 'S':
				out.WriteString(strconv.Itoa(a.PositionPoints(counter)))
			case 'X':
				out.WriteString(a.BestWord(counter))
			case 'Y':
				out.WriteString(strconv.Itoa(a.BestWordScore(counter)))
			case 'C':
				if plusFlag {
					out.WriteString(strconv.Itoa(a.WordCountPlus(counter)))
				} else {
					out.WriteString(strconv.Itoa(a.WordCount(counter)))
				}
			case 'P':
				if plusFlag {
					out.WriteString(strconv.Itoa(a.PointCountPlus(counter)))
				} else {
					out.WriteString(strconv.Itoa(a.PointCount(counter)))
				}
			case '%':
				out.WriteByte('%')
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
