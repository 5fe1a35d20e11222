package ply

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hupe1980/plycloud/element"
)

// File is the decoded content of a PLY file.
type File struct {
	Header   *Header
	Elements []*element.Element
}

// maxPrealloc bounds the rows allocated up front from a header count.
const maxPrealloc = 1 << 16

// Decode reads a complete PLY stream.
func Decode(r io.Reader) (*File, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 64*1024)
	}

	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	vr := newValueReader(br, h.Format)
	elements := make([]*element.Element, 0, len(h.Elements))
	for _, decl := range h.Elements {
		cols, err := readElement(vr, decl)
		if err != nil {
			return nil, err
		}
		elements = append(elements, buildElement(decl, cols))
	}

	return &File{Header: h, Elements: elements}, nil
}

// column holds the raw values of one declared property.
type column struct {
	decl       PropertyDecl
	ints       []int32
	floats     []float32
	intLists   [][]int32
	floatLists [][]float32
}

func newColumn(decl PropertyDecl, rows int) *column {
	c := &column{decl: decl}
	n := min(rows, maxPrealloc)
	switch {
	case decl.IsList && decl.Type.IsFloat():
		c.floatLists = make([][]float32, 0, n)
	case decl.IsList:
		c.intLists = make([][]int32, 0, n)
	case decl.Type.IsFloat():
		c.floats = make([]float32, 0, n)
	default:
		c.ints = make([]int32, 0, n)
	}
	return c
}

func readElement(vr valueReader, decl ElementDecl) ([]*column, error) {
	cols := make([]*column, len(decl.Properties))
	for i, p := range decl.Properties {
		cols[i] = newColumn(p, decl.Count)
	}

	for row := 0; row < decl.Count; row++ {
		for _, c := range cols {
			if err := c.read(vr); err != nil {
				return nil, &BodyError{Element: decl.Name, Row: row, Property: c.decl.Name, cause: err}
			}
		}
	}
	return cols, nil
}

func (c *column) read(vr valueReader) error {
	t := c.decl.Type
	if !c.decl.IsList {
		if t.IsFloat() {
			v, err := vr.readFloat(t)
			if err != nil {
				return err
			}
			c.floats = append(c.floats, float32(v))
			return nil
		}
		v, err := vr.readInt(t)
		if err != nil {
			return err
		}
		c.ints = append(c.ints, int32(v))
		return nil
	}

	n, err := vr.readInt(c.decl.CountType)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative list length %d", ErrInvalidValue, n)
	}

	if t.IsFloat() {
		list := make([]float32, 0, int(min(n, maxPrealloc)))
		for k := int64(0); k < n; k++ {
			v, err := vr.readFloat(t)
			if err != nil {
				return err
			}
			list = append(list, float32(v))
		}
		c.floatLists = append(c.floatLists, list)
		return nil
	}

	list := make([]int32, 0, int(min(n, maxPrealloc)))
	for k := int64(0); k < n; k++ {
		v, err := vr.readInt(t)
		if err != nil {
			return err
		}
		list = append(list, int32(v))
	}
	c.intLists = append(c.intLists, list)
	return nil
}

// buildElement sorts raw columns into type buckets, grouping scalar
// triples into Vec3 properties.
func buildElement(decl ElementDecl, cols []*column) *element.Element {
	e := element.New(decl.Name, decl.Count)

	scalars := make(map[string]int, len(cols))
	for i, c := range cols {
		if !c.decl.IsList {
			scalars[c.decl.Name] = i
		}
	}

	used := make([]bool, len(cols))
	grouped := make(map[string]bool)

	for i, c := range cols {
		if used[i] {
			continue
		}
		if !c.decl.IsList {
			if v, ok := groupVec3(c.decl.Name, cols, scalars, used, grouped); ok {
				v.ElementName = decl.Name
				e.Vec3Properties = append(e.Vec3Properties, v)
				continue
			}
		}

		used[i] = true
		switch {
		case c.decl.IsList && c.decl.Type.IsFloat():
			e.FloatListProperties = append(e.FloatListProperties, element.NewProperty(decl.Name, c.decl.Name, c.floatLists))
		case c.decl.IsList:
			e.IntListProperties = append(e.IntListProperties, element.NewProperty(decl.Name, c.decl.Name, c.intLists))
		case c.decl.Type.IsFloat():
			e.FloatProperties = append(e.FloatProperties, element.NewProperty(decl.Name, c.decl.Name, c.floats))
		default:
			e.IntProperties = append(e.IntProperties, element.NewProperty(decl.Name, c.decl.Name, c.ints))
		}
	}

	return e
}

func groupVec3(component string, cols []*column, scalars map[string]int, used []bool, grouped map[string]bool) (element.Property[element.Vec3], bool) {
	var none element.Property[element.Vec3]

	name, comps, ok := vec3Group(component)
	if !ok || grouped[name] {
		return none, false
	}

	var idx [3]int
	for k, comp := range comps {
		i, ok := scalars[comp]
		if !ok || used[i] {
			return none, false
		}
		idx[k] = i
	}

	allFloat := true
	allInt := true
	for _, i := range idx {
		if cols[i].decl.Type.IsFloat() {
			allInt = false
		} else {
			allFloat = false
		}
	}

	var values []element.Vec3
	switch {
	case allFloat:
		values = make([]element.Vec3, len(cols[idx[0]].floats))
		for r := range values {
			values[r] = element.Vec3{cols[idx[0]].floats[r], cols[idx[1]].floats[r], cols[idx[2]].floats[r]}
		}
	case allInt && name == "color":
		// Integer channels are 8-bit in practice; normalize to [0, 1].
		values = make([]element.Vec3, len(cols[idx[0]].ints))
		for r := range values {
			values[r] = element.Vec3{
				float32(cols[idx[0]].ints[r]) / 255,
				float32(cols[idx[1]].ints[r]) / 255,
				float32(cols[idx[2]].ints[r]) / 255,
			}
		}
	default:
		return none, false
	}

	for _, i := range idx {
		used[i] = true
	}
	grouped[name] = true
	return element.NewProperty("", name, values), true
}
