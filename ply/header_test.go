package ply

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeader(t *testing.T) {
	src := "ply\r\n" +
		"format binary_big_endian 1.0\r\n" +
		"comment made by hand\r\n" +
		"obj_info scanner 7\r\n" +
		"element vertex 2\r\n" +
		"property float32 x\r\n" +
		"property uchar red\r\n" +
		"element face 1\r\n" +
		"property list uint8 int vertex_indices\r\n" +
		"end_header\r\n" +
		"BODY"

	br := bufio.NewReader(strings.NewReader(src))
	h, err := ReadHeader(br)
	require.NoError(t, err)

	assert.Equal(t, BinaryBigEndian, h.Format)
	assert.Equal(t, "1.0", h.Version)
	assert.Equal(t, []string{"made by hand"}, h.Comments)
	assert.Equal(t, []string{"scanner 7"}, h.ObjInfo)
	require.Len(t, h.Elements, 2)

	assert.Equal(t, ElementDecl{
		Name:  "vertex",
		Count: 2,
		Properties: []PropertyDecl{
			{Name: "x", Type: Float32},
			{Name: "red", Type: Uint8},
		},
	}, h.Elements[0])
	assert.Equal(t, PropertyDecl{Name: "vertex_indices", Type: Int32, IsList: true, CountType: Uint8}, h.Elements[1].Properties[0])

	rest, err := br.ReadString(0)
	require.Error(t, err)
	assert.Equal(t, "BODY", rest)
}

func TestReadHeader_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Empty", ""},
		{"NoMagic", "plx\nformat ascii 1.0\nend_header\n"},
		{"NoFormat", "ply\nelement vertex 1\nend_header\n"},
		{"BadFormat", "ply\nformat text 1.0\nend_header\n"},
		{"BadVersion", "ply\nformat ascii 2.0\nend_header\n"},
		{"NegativeCount", "ply\nformat ascii 1.0\nelement vertex -1\nend_header\n"},
		{"PropertyFirst", "ply\nformat ascii 1.0\nproperty float x\nend_header\n"},
		{"BadType", "ply\nformat ascii 1.0\nelement vertex 1\nproperty real x\nend_header\n"},
		{"FloatCount", "ply\nformat ascii 1.0\nelement face 1\nproperty list float int idx\nend_header\n"},
		{"UnknownKeyword", "ply\nformat ascii 1.0\nvertices 3\nend_header\n"},
		{"Truncated", "ply\nformat ascii 1.0\nelement vertex 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadHeader(bufio.NewReader(strings.NewReader(tt.src)))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidHeader), "got %v", err)

			var he *HeaderError
			assert.True(t, errors.As(err, &he))
		})
	}
}

func TestWriteHeader(t *testing.T) {
	h := &Header{
		Format:   BinaryLittleEndian,
		Comments: []string{"first\nsecond"},
		Elements: []ElementDecl{{
			Name:  "vertex",
			Count: 3,
			Properties: []PropertyDecl{
				{Name: "x", Type: Float32},
				{Name: "ids", Type: Int32, IsList: true, CountType: Uint8},
			},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))
	assert.Equal(t, "ply\n"+
		"format binary_little_endian 1.0\n"+
		"comment first\n"+
		"comment second\n"+
		"element vertex 3\n"+
		"property float x\n"+
		"property list uchar int ids\n"+
		"end_header\n", buf.String())

	t.Run("InvalidName", func(t *testing.T) {
		h := &Header{Elements: []ElementDecl{{Name: "vertex", Properties: []PropertyDecl{{Name: "my prop", Type: Float32}}}}}
		err := WriteHeader(&bytes.Buffer{}, h)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidName))
	})
}
