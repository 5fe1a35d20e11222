package ply

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// valueReader reads scalar values from a PLY body.
type valueReader interface {
	readInt(t DataType) (int64, error)
	readFloat(t DataType) (float64, error)
}

func newValueReader(br *bufio.Reader, f Format) valueReader {
	switch f {
	case BinaryLittleEndian:
		return &binaryReader{br: br, order: binary.LittleEndian}
	case BinaryBigEndian:
		return &binaryReader{br: br, order: binary.BigEndian}
	default:
		return &asciiReader{br: br}
	}
}

type asciiReader struct {
	br  *bufio.Reader
	tok []byte
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func (r *asciiReader) token() (string, error) {
	r.tok = r.tok[:0]
	for {
		c, err := r.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(r.tok) > 0 {
					return string(r.tok), nil
				}
				return "", ErrUnexpectedEOF
			}
			return "", err
		}
		if isSpace(c) {
			if len(r.tok) > 0 {
				return string(r.tok), nil
			}
			continue
		}
		r.tok = append(r.tok, c)
	}
}

func (r *asciiReader) readInt(t DataType) (int64, error) {
	tok, err := r.token()
	if err != nil {
		return 0, err
	}
	v, err := parseInt(tok)
	if err != nil {
		return 0, err
	}
	if lo, hi, ok := t.intRange(); ok && (v < lo || v > hi) {
		return 0, fmt.Errorf("%w: %s out of range for %s", ErrInvalidValue, tok, t)
	}
	return v, nil
}

func parseInt(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err == nil {
		return v, nil
	}
	// Some writers emit integral values as "3.0".
	f, ferr := strconv.ParseFloat(tok, 64)
	if ferr == nil && f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f), nil
	}
	return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, tok)
}

func (r *asciiReader) readFloat(t DataType) (float64, error) {
	tok, err := r.token()
	if err != nil {
		return 0, err
	}
	bits := 64
	if t == Float32 {
		bits = 32
	}
	v, err := strconv.ParseFloat(tok, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, tok)
	}
	return v, nil
}

type binaryReader struct {
	br    *bufio.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (r *binaryReader) read(n int) ([]byte, error) {
	b := r.buf[:n]
	if _, err := io.ReadFull(r.br, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrUnexpectedEOF
		}
		return nil, err
	}
	return b, nil
}

func (r *binaryReader) readInt(t DataType) (int64, error) {
	if t.IsFloat() {
		f, err := r.readFloat(t)
		return int64(f), err
	}
	b, err := r.read(t.Size())
	if err != nil {
		return 0, err
	}
	switch t {
	case Int8:
		return int64(int8(b[0])), nil
	case Uint8:
		return int64(b[0]), nil
	case Int16:
		return int64(int16(r.order.Uint16(b))), nil
	case Uint16:
		return int64(r.order.Uint16(b)), nil
	case Int32:
		return int64(int32(r.order.Uint32(b))), nil
	case Uint32:
		return int64(r.order.Uint32(b)), nil
	default:
		return 0, fmt.Errorf("%w: type %s", ErrInvalidValue, t)
	}
}

func (r *binaryReader) readFloat(t DataType) (float64, error) {
	switch t {
	case Float32:
		b, err := r.read(4)
		if err != nil {
			return 0, err
		}
		return float64(math.Float32frombits(r.order.Uint32(b))), nil
	case Float64:
		b, err := r.read(8)
		if err != nil {
			return 0, err
		}
		return math.Float64frombits(r.order.Uint64(b)), nil
	default:
		v, err := r.readInt(t)
		return float64(v), err
	}
}

// valueWriter writes scalar values to a PLY body.
type valueWriter interface {
	writeInt(t DataType, v int64) error
	writeFloat(t DataType, v float64) error
	endRow() error
}

func newValueWriter(bw *bufio.Writer, f Format) valueWriter {
	switch f {
	case BinaryLittleEndian:
		return &binaryWriter{bw: bw, order: binary.LittleEndian}
	case BinaryBigEndian:
		return &binaryWriter{bw: bw, order: binary.BigEndian}
	default:
		return &asciiWriter{bw: bw, first: true}
	}
}

type asciiWriter struct {
	bw      *bufio.Writer
	first   bool
	scratch []byte
}

func (w *asciiWriter) sep() []byte {
	w.scratch = w.scratch[:0]
	if !w.first {
		w.scratch = append(w.scratch, ' ')
	}
	w.first = false
	return w.scratch
}

func (w *asciiWriter) writeInt(_ DataType, v int64) error {
	w.scratch = strconv.AppendInt(w.sep(), v, 10)
	_, err := w.bw.Write(w.scratch)
	return err
}

func (w *asciiWriter) writeFloat(t DataType, v float64) error {
	bits := 64
	if t == Float32 {
		bits = 32
	}
	w.scratch = strconv.AppendFloat(w.sep(), v, 'g', -1, bits)
	_, err := w.bw.Write(w.scratch)
	return err
}

func (w *asciiWriter) endRow() error {
	w.first = true
	return w.bw.WriteByte('\n')
}

type binaryWriter struct {
	bw    *bufio.Writer
	order binary.ByteOrder
	buf   [8]byte
}

func (w *binaryWriter) writeInt(t DataType, v int64) error {
	b := w.buf[:t.Size()]
	switch t {
	case Int8:
		if v < math.MinInt8 || v > math.MaxInt8 {
			return fmt.Errorf("%w: %d overflows %s", ErrInvalidValue, v, t)
		}
		b[0] = byte(int8(v))
	case Uint8:
		if v < 0 || v > math.MaxUint8 {
			return fmt.Errorf("%w: %d overflows %s", ErrInvalidValue, v, t)
		}
		b[0] = byte(v)
	case Int16, Uint16:
		w.order.PutUint16(b, uint16(v))
	case Int32, Uint32:
		w.order.PutUint32(b, uint32(v))
	case Float32, Float64:
		return w.writeFloat(t, float64(v))
	default:
		return fmt.Errorf("%w: type %s", ErrInvalidValue, t)
	}
	_, err := w.bw.Write(b)
	return err
}

func (w *binaryWriter) writeFloat(t DataType, v float64) error {
	switch t {
	case Float32:
		w.order.PutUint32(w.buf[:4], math.Float32bits(float32(v)))
		_, err := w.bw.Write(w.buf[:4])
		return err
	case Float64:
		w.order.PutUint64(w.buf[:8], math.Float64bits(v))
		_, err := w.bw.Write(w.buf[:8])
		return err
	default:
		return w.writeInt(t, int64(v))
	}
}

func (w *binaryWriter) endRow() error {
	return nil
}
