// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCell   = "%9.2f" // fixed 2-decimal value in a field of width 9
	_fmtSep    = " "     // between values of one row
	_fmtRowEnd = "\n"    // after the last value of every row
)

// Format writes m to w row by row: every value as %9.2f, values separated
// by a single space, each row terminated by a newline. A matrix with no
// columns writes nothing.
//
// Errors: ErrNilMatrix, or the first write error from w.
// Complexity: O(r*c).
func Format(w io.Writer, m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Format", err)
	}
	bw := bufio.NewWriter(w)
	writeCells(bw, m)

	return bw.Flush()
}

// writeCells renders m into w; callers own flushing and error reporting.
func writeCells(w io.StringWriter, m *Dense) {
	for i, v := range m.data {
		_, _ = w.WriteString(fmt.Sprintf(_fmtCell, v))
		if (i+1)%m.c == 0 {
			_, _ = w.WriteString(_fmtRowEnd)
		} else {
			_, _ = w.WriteString(_fmtSep)
		}
	}
}

// String renders m exactly as Format does.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	writeCells(&b, m)

	return b.String()
}
