package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/genmat/matrix"
)

var errTrailingData = errors.New("trailing data after input document")

// document is the on-disk layout of matdot input.
type document struct {
	A [][]float64 `json:"a"`
	B [][]float64 `json:"b"`
}

// operands holds the parsed matrices; B is nil when the document has no "b".
type operands struct {
	A *matrix.Matrix[float64]
	B *matrix.Matrix[float64]
}

// loadFile opens path, gunzipping it when the name ends in ".gz".
func loadFile(path string) (operands, error) {
	f, err := os.Open(path)
	if err != nil {
		return operands{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return operands{}, fmt.Errorf("gzip reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return decode(r)
}

// decode parses exactly one document and validates each present matrix.
func decode(r io.Reader) (operands, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return operands{}, fmt.Errorf("decode input: %w", err)
	}
	if dec.More() {
		return operands{}, fmt.Errorf("decode input: %w", errTrailingData)
	}

	var (
		ops operands
		err error
	)
	if ops.A, err = matrix.New(doc.A); err != nil {
		return operands{}, fmt.Errorf("matrix a: %w", err)
	}
	if doc.B != nil {
		if ops.B, err = matrix.New(doc.B); err != nil {
			return operands{}, fmt.Errorf("matrix b: %w", err)
		}
	}

	return ops, nil
}
