// Package console reads whitespace-separated numeric tokens from a text
// stream and prints operation results. It is the I/O edge of the matrix
// processor: prompts go to the output, values come from the input.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/numproc/matrix"
)

// ErrInvalidInput marks a token that does not parse as the requested number.
var ErrInvalidInput = errors.New("console: invalid input")

// InputError describes one rejected token. It matches ErrInvalidInput via
// errors.Is and is recoverable: the caller may prompt again.
type InputError struct {
	Token string // offending token as typed
	Want  string // what was expected, e.g. "an integer"
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %q is not %s", ErrInvalidInput, e.Token, e.Want)
}

// Unwrap exposes ErrInvalidInput to errors.Is.
func (e *InputError) Unwrap() error { return ErrInvalidInput }

// Recoverable reports true: a bad token never corrupts the stream.
func (e *InputError) Recoverable() bool { return true }

// Reader is a token scanner over an input stream. Tokens are separated by
// any whitespace, so a matrix may be typed on one line or across many.
type Reader struct {
	sc  *bufio.Scanner
	out io.Writer // prompts; may be io.Discard
}

// NewReader returns a Reader over in that writes prompts to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc, out: out}
}

// token returns the next whitespace-delimited token or io.EOF.
func (r *Reader) token() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// ReadInt reads the next token as a base-10 int.
func (r *Reader) ReadInt() (int, error) {
	tok, err := r.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &InputError{Token: tok, Want: "an integer"}
	}

	return v, nil
}

// ReadFloat reads the next token as a float64.
func (r *Reader) ReadFloat() (float64, error) {
	tok, err := r.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &InputError{Token: tok, Want: "a number"}
	}

	return v, nil
}

// ReadMatrix prompts for the size and elements of the matrix called name
// ("first", "second", "the") and reads rows, cols and rows*cols values in
// row-major order. A negative size or one above matrix.MaxElements is an
// InputError, reported before any element is read.
func (r *Reader) ReadMatrix(name string) (*matrix.Dense, error) {
	fmt.Fprintf(r.out, "Enter size (rows and cols) of %s matrix: ", name)
	rows, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	cols, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	if matrix.ValidateDims(rows, cols) != nil {
		return nil, &InputError{
			Token: fmt.Sprintf("%d %d", rows, cols),
			Want:  fmt.Sprintf("a matrix size of at most %d elements", matrix.MaxElements),
		}
	}

	fmt.Fprintf(r.out, "Enter %s matrix:\n", name)
	return matrix.NewFuncErr(rows, cols, func(int) (float64, error) { return r.ReadFloat() })
}
