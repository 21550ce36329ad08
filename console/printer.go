package console

import (
	"fmt"
	"io"

	"github.com/katalvlaran/numproc/matrix"
)

// Printer writes user-facing messages and results.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// Matrix prints the result banner followed by m in fixed-width form.
func (p *Printer) Matrix(m *matrix.Dense) error {
	if _, err := fmt.Fprintln(p.w, "The result is:"); err != nil {
		return err
	}
	if err := matrix.Format(p.w, m); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.w)

	return err
}

// Scalar prints the result banner followed by v.
func (p *Printer) Scalar(v float64) error {
	_, err := fmt.Fprintf(p.w, "The result is:\n%v\n\n", v)

	return err
}

// Message prints a single line.
func (p *Printer) Message(msg string) error {
	_, err := fmt.Fprintln(p.w, msg)

	return err
}
