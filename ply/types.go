package ply

import (
	"errors"
	"fmt"
	"math"
)

// Format is the body encoding of a PLY file.
type Format uint8

const (
	// ASCII stores one whitespace-separated row per line.
	ASCII Format = iota
	// BinaryLittleEndian stores packed little endian values.
	BinaryLittleEndian
	// BinaryBigEndian stores packed big endian values.
	BinaryBigEndian
)

func (f Format) String() string {
	switch f {
	case ASCII:
		return "ascii"
	case BinaryLittleEndian:
		return "binary_little_endian"
	case BinaryBigEndian:
		return "binary_big_endian"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// IsBinary reports whether f is one of the binary formats.
func (f Format) IsBinary() bool {
	return f == BinaryLittleEndian || f == BinaryBigEndian
}

func parseFormat(s string) (Format, bool) {
	switch s {
	case "ascii":
		return ASCII, true
	case "binary_little_endian":
		return BinaryLittleEndian, true
	case "binary_big_endian":
		return BinaryBigEndian, true
	default:
		return 0, false
	}
}

// DataType is a PLY scalar type.
type DataType uint8

const (
	Invalid DataType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

var dataTypes = map[string]DataType{
	"char":    Int8,
	"int8":    Int8,
	"uchar":   Uint8,
	"uint8":   Uint8,
	"short":   Int16,
	"int16":   Int16,
	"ushort":  Uint16,
	"uint16":  Uint16,
	"int":     Int32,
	"int32":   Int32,
	"uint":    Uint32,
	"uint32":  Uint32,
	"float":   Float32,
	"float32": Float32,
	"double":  Float64,
	"float64": Float64,
}

// ParseDataType resolves both the classic ("uchar") and sized ("uint8") names.
func ParseDataType(s string) (DataType, bool) {
	t, ok := dataTypes[s]
	return t, ok
}

// String returns the classic PLY name of the type.
func (t DataType) String() string {
	switch t {
	case Int8:
		return "char"
	case Uint8:
		return "uchar"
	case Int16:
		return "short"
	case Uint16:
		return "ushort"
	case Int32:
		return "int"
	case Uint32:
		return "uint"
	case Float32:
		return "float"
	case Float64:
		return "double"
	default:
		return "invalid"
	}
}

// Size returns the binary size of the type in bytes.
func (t DataType) Size() int {
	switch t {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// intRange returns the values an integer type can hold.
func (t DataType) intRange() (lo, hi int64, ok bool) {
	switch t {
	case Int8:
		return math.MinInt8, math.MaxInt8, true
	case Uint8:
		return 0, math.MaxUint8, true
	case Int16:
		return math.MinInt16, math.MaxInt16, true
	case Uint16:
		return 0, math.MaxUint16, true
	case Int32:
		return math.MinInt32, math.MaxInt32, true
	case Uint32:
		return 0, math.MaxUint32, true
	default:
		return 0, 0, false
	}
}

// IsFloat reports whether t is a floating point type.
func (t DataType) IsFloat() bool {
	return t == Float32 || t == Float64
}

// PropertyDecl declares one property of an element in the header.
type PropertyDecl struct {
	Name string
	// Type is the scalar type, or the item type of a list.
	Type DataType
	// IsList marks a list property; CountType is the type of its length prefix.
	IsList    bool
	CountType DataType
}

// ElementDecl declares an element and its properties in the header.
type ElementDecl struct {
	Name       string
	Count      int
	Properties []PropertyDecl
}

// Header is a parsed PLY header.
type Header struct {
	Format   Format
	Version  string
	Comments []string
	ObjInfo  []string
	Elements []ElementDecl
}

var (
	// ErrInvalidHeader is returned for malformed headers.
	ErrInvalidHeader = errors.New("ply: invalid header")
	// ErrUnexpectedEOF is returned when the body ends before all rows are read.
	ErrUnexpectedEOF = errors.New("ply: unexpected end of data")
	// ErrInvalidValue is returned for values that cannot be parsed or represented.
	ErrInvalidValue = errors.New("ply: invalid value")
	// ErrDuplicateProperty is returned when an encoded element would carry
	// two properties of the same name.
	ErrDuplicateProperty = errors.New("ply: duplicate property")
	// ErrInvalidName is returned for empty names or names containing whitespace.
	ErrInvalidName = errors.New("ply: invalid name")
)

// HeaderError describes a malformed header line.
type HeaderError struct {
	Line int
	Text string
	Msg  string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("ply: header line %d %q: %s", e.Line, e.Text, e.Msg)
}

func (e *HeaderError) Unwrap() error { return ErrInvalidHeader }

// BodyError describes a failure while reading element data.
type BodyError struct {
	Element  string
	Row      int
	Property string
	cause    error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("ply: element %q row %d property %q: %v", e.Element, e.Row, e.Property, e.cause)
}

func (e *BodyError) Unwrap() error { return e.cause }
