package ply

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/plycloud/element"
)

// Encode writes f to w. Header.Elements is derived from f.Elements;
// only Format, Version, Comments and ObjInfo are taken from f.Header.
func Encode(w io.Writer, f *File) error {
	h := &Header{}
	if f.Header != nil {
		h.Format = f.Header.Format
		h.Version = f.Header.Version
		h.Comments = f.Header.Comments
		h.ObjInfo = f.Header.ObjInfo
	}

	layouts := make([][]encColumn, 0, len(f.Elements))
	for _, e := range f.Elements {
		if err := e.Validate(); err != nil {
			return err
		}
		cols, err := layoutElement(e)
		if err != nil {
			return err
		}
		decl := ElementDecl{Name: e.Name, Count: e.NumInstances, Properties: make([]PropertyDecl, len(cols))}
		for i, c := range cols {
			decl.Properties[i] = c.decl
		}
		h.Elements = append(h.Elements, decl)
		layouts = append(layouts, cols)
	}

	bw := bufio.NewWriterSize(w, 64*1024)
	if err := WriteHeader(bw, h); err != nil {
		return err
	}

	vw := newValueWriter(bw, h.Format)
	for i, e := range f.Elements {
		cols := layouts[i]
		for row := 0; row < e.NumInstances; row++ {
			for _, c := range cols {
				if err := c.write(vw, row); err != nil {
					return fmt.Errorf("ply: element %q row %d property %q: %w", e.Name, row, c.decl.Name, err)
				}
			}
			if err := vw.endRow(); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

type encColumn struct {
	decl  PropertyDecl
	write func(vw valueWriter, row int) error
}

func layoutElement(e *element.Element) ([]encColumn, error) {
	var cols []encColumn
	seen := make(map[string]bool)
	add := func(c encColumn) error {
		if seen[c.decl.Name] {
			return fmt.Errorf("%w: element %q property %q", ErrDuplicateProperty, e.Name, c.decl.Name)
		}
		seen[c.decl.Name] = true
		cols = append(cols, c)
		return nil
	}

	for _, p := range e.Vec3Properties {
		values := p.Values
		for k, comp := range vec3Components(p.Name) {
			err := add(encColumn{
				decl: PropertyDecl{Name: comp, Type: Float32},
				write: func(vw valueWriter, row int) error {
					return vw.writeFloat(Float32, float64(values[row][k]))
				},
			})
			if err != nil {
				return nil, err
			}
		}
	}

	for _, p := range e.FloatProperties {
		values := p.Values
		err := add(encColumn{
			decl: PropertyDecl{Name: p.Name, Type: Float32},
			write: func(vw valueWriter, row int) error {
				return vw.writeFloat(Float32, float64(values[row]))
			},
		})
		if err != nil {
			return nil, err
		}
	}

	for _, p := range e.IntProperties {
		values := p.Values
		err := add(encColumn{
			decl: PropertyDecl{Name: p.Name, Type: Int32},
			write: func(vw valueWriter, row int) error {
				return vw.writeInt(Int32, int64(values[row]))
			},
		})
		if err != nil {
			return nil, err
		}
	}

	for _, p := range e.IntListProperties {
		values := p.Values
		count := listCountType(values)
		err := add(encColumn{
			decl: PropertyDecl{Name: p.Name, Type: Int32, IsList: true, CountType: count},
			write: func(vw valueWriter, row int) error {
				list := values[row]
				if err := vw.writeInt(count, int64(len(list))); err != nil {
					return err
				}
				for _, v := range list {
					if err := vw.writeInt(Int32, int64(v)); err != nil {
						return err
					}
				}
				return nil
			},
		})
		if err != nil {
			return nil, err
		}
	}

	for _, p := range e.FloatListProperties {
		values := p.Values
		count := listCountType(values)
		err := add(encColumn{
			decl: PropertyDecl{Name: p.Name, Type: Float32, IsList: true, CountType: count},
			write: func(vw valueWriter, row int) error {
				list := values[row]
				if err := vw.writeInt(count, int64(len(list))); err != nil {
					return err
				}
				for _, v := range list {
					if err := vw.writeFloat(Float32, float64(v)); err != nil {
						return err
					}
				}
				return nil
			},
		})
		if err != nil {
			return nil, err
		}
	}

	return cols, nil
}

// listCountType picks uchar unless a row holds more than 255 items.
func listCountType[T any](rows [][]T) DataType {
	for _, r := range rows {
		if len(r) > math.MaxUint8 {
			return Int32
		}
	}
	return Uint8
}
