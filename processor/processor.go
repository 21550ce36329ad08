// Package processor wires the matrix engine to a numbered console menu:
// it reads operands, runs the chosen operation and prints the result or a
// user-facing message. Engine rejections (shape mismatch, non-square
// input) and malformed input are reported and the menu continues; only
// I/O failures end a session.
package processor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/numproc/console"
	"github.com/katalvlaran/numproc/matrix"
	"github.com/katalvlaran/numproc/menu"
)

// User-facing messages.
const (
	MsgCannotPerform = "The operation cannot be performed."
	MsgNoInverse     = "This matrix doesn't have an inverse."
	MsgInvalidInput  = "Invalid input."
	MsgConstant      = "Enter constant: "
)

// Processor is one interactive session over an input and an output stream.
type Processor struct {
	in   *console.Reader
	out  *console.Printer
	w    io.Writer
	log  *slog.Logger
	menu *menu.Menu
}

// New builds a session reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Processor {
	o := gatherOptions(opts)
	p := &Processor{
		in:  console.NewReader(in, out),
		out: console.NewPrinter(out),
		w:   out,
		log: o.logger,
	}

	observe := menu.WithObserver(func(title, label string) {
		p.log.Debug("menu choice", slog.String("menu", title), slog.String("item", label))
	})

	transpose := menu.New("Transpose matrix", observe).OneTime()
	for _, it := range []struct {
		label string
		mode  matrix.Transposition
	}{
		{"Main diagonal", matrix.MainDiagonal},
		{"Side diagonal", matrix.SideDiagonal},
		{"Vertical line", matrix.VerticalAxis},
		{"Horizontal line", matrix.HorizontalAxis},
	} {
		mode := it.mode
		transpose.Add(it.label, func() error { return p.transpose(mode) })
	}

	p.menu = menu.New(o.title, observe).
		Add("Add matrices", p.addMatrices).
		Add("Multiply matrix to a constant", p.multiplyByConstant).
		Add("Multiply matrices", p.multiplyMatrices).
		AddMenu("Transpose matrix", transpose).
		Add("Calculate a determinant", p.determinant).
		Add("Inverse matrix", p.inverse)

	return p
}

// Run shows the main menu until the user exits or input ends.
func (p *Processor) Run() error {
	p.log.Info("session started", slog.String("menu", p.menu.Title()))
	err := p.menu.Run(p.in, p.w)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	p.log.Info("session finished", slog.Any("err", err))

	return err
}

func (p *Processor) addMatrices() error {
	a, b, err := p.readPair()
	if err != nil {
		return p.inputFailure(err)
	}

	return p.showMatrix("add", func() (*matrix.Dense, error) { return matrix.Add(a, b) })
}

func (p *Processor) multiplyByConstant() error {
	m, err := p.in.ReadMatrix("the")
	if err != nil {
		return p.inputFailure(err)
	}
	if _, err = io.WriteString(p.w, MsgConstant); err != nil {
		return err
	}
	k, err := p.in.ReadFloat()
	if err != nil {
		return p.inputFailure(err)
	}

	return p.showMatrix("scale", func() (*matrix.Dense, error) { return matrix.Scale(m, k) })
}

func (p *Processor) multiplyMatrices() error {
	a, b, err := p.readPair()
	if err != nil {
		return p.inputFailure(err)
	}

	return p.showMatrix("mul", func() (*matrix.Dense, error) { return matrix.Mul(a, b) })
}

func (p *Processor) transpose(mode matrix.Transposition) error {
	m, err := p.in.ReadMatrix("the")
	if err != nil {
		return p.inputFailure(err)
	}

	return p.showMatrix("transpose "+mode.String(), func() (*matrix.Dense, error) {
		return matrix.Transpose(m, mode)
	})
}

func (p *Processor) determinant() error {
	m, err := p.in.ReadMatrix("the")
	if err != nil {
		return p.inputFailure(err)
	}

	start := time.Now()
	det, err := matrix.Determinant(m)
	p.logOp("determinant", m, start, err)
	if err != nil {
		return p.engineFailure(err)
	}

	return p.out.Scalar(det)
}

func (p *Processor) inverse() error {
	m, err := p.in.ReadMatrix("the")
	if err != nil {
		return p.inputFailure(err)
	}

	start := time.Now()
	inv, ok, err := matrix.Inverse(m)
	p.logOp("inverse", m, start, err)
	if err != nil {
		return p.engineFailure(err)
	}
	if !ok {
		return p.out.Message(MsgNoInverse)
	}

	return p.out.Matrix(inv)
}

// readPair reads the "first" and "second" operands.
func (p *Processor) readPair() (*matrix.Dense, *matrix.Dense, error) {
	a, err := p.in.ReadMatrix("first")
	if err != nil {
		return nil, nil, err
	}
	b, err := p.in.ReadMatrix("second")
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// showMatrix runs op, logs it, and prints either the result or the
// rejection message.
func (p *Processor) showMatrix(name string, op func() (*matrix.Dense, error)) error {
	start := time.Now()
	res, err := op()
	p.logOp(name, res, start, err)
	if err != nil {
		return p.engineFailure(err)
	}

	return p.out.Matrix(res)
}

// engineFailure prints MsgCannotPerform for validation failures and
// propagates anything else.
func (p *Processor) engineFailure(err error) error {
	if errors.Is(err, matrix.ErrDimensionMismatch) || errors.Is(err, matrix.ErrNonSquare) ||
		errors.Is(err, matrix.ErrInvalidDimensions) {
		return p.out.Message(MsgCannotPerform)
	}

	return fmt.Errorf("processor: %w", err)
}

// inputFailure prints MsgInvalidInput for a recoverable token error and
// propagates end of input and stream failures.
func (p *Processor) inputFailure(err error) error {
	if menu.IsRecoverable(err) {
		p.log.Warn("rejected input", slog.Any("err", err))
		return p.out.Message(MsgInvalidInput)
	}

	return err
}

func (p *Processor) logOp(name string, m *matrix.Dense, start time.Time, err error) {
	attrs := []any{slog.String("op", name), slog.Duration("took", time.Since(start))}
	if m != nil {
		attrs = append(attrs, slog.Int("rows", m.Rows()), slog.Int("cols", m.Cols()))
	}
	if err != nil {
		p.log.Info("operation rejected", append(attrs, slog.Any("err", err))...)
		return
	}
	p.log.Debug("operation done", attrs...)
}
