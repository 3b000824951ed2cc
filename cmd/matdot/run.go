package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/genmat/matrix"
)

const (
	opDot       = "dot"
	opTranspose = "transpose"
)

var (
	errUsage    = errors.New("usage: matdot [-op dot|transpose] <file>")
	errUnknown  = errors.New("unknown op")
	errMissingB = errors.New(`dot needs both "a" and "b"`)
)

// run parses args, evaluates the requested operation and prints the result to w.
func run(args []string, w io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("matdot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	op := fs.String("op", opDot, "operation: dot or transpose")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	path := fs.Arg(0)

	ops, err := loadFile(path)
	if err != nil {
		return err
	}
	ar, ac := ops.A.Shape()
	logger.Debug("loaded input", zap.String("path", path), zap.Int("a_rows", ar), zap.Int("a_cols", ac), zap.Bool("has_b", ops.B != nil))

	res, err := evaluate(*op, ops)
	if err != nil {
		return err
	}
	rr, rc := res.Shape()
	logger.Info("computed", zap.String("op", *op), zap.Int("rows", rr), zap.Int("cols", rc))

	_, err = fmt.Fprintln(w, res)
	return err
}

// evaluate dispatches op over the loaded operands.
func evaluate(op string, ops operands) (*matrix.Matrix[float64], error) {
	switch op {
	case opDot:
		if ops.B == nil {
			return nil, errMissingB
		}
		return ops.A.Dot(ops.B)
	case opTranspose:
		return ops.A.Transpose()
	default:
		return nil, fmt.Errorf("%w %q", errUnknown, op)
	}
}
