package ply

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxHeaderLine bounds a single header line.
const maxHeaderLine = 64 * 1024

// ReadHeader parses the header up to and including "end_header".
// The reader is left positioned at the first body byte.
func ReadHeader(br *bufio.Reader) (*Header, error) {
	h := &Header{}
	lineNo := 0
	sawFormat := false

	for {
		line, err := readLine(br)
		lineNo++
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &HeaderError{Line: lineNo, Msg: "missing end_header"}
			}
			return nil, err
		}

		if lineNo == 1 {
			if strings.TrimSpace(line) != "ply" {
				return nil, &HeaderError{Line: lineNo, Text: line, Msg: "missing magic number"}
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "format":
			if len(fields) != 3 {
				return nil, &HeaderError{Line: lineNo, Text: line, Msg: "expected 'format <type> <version>'"}
			}
			f, ok := parseFormat(fields[1])
			if !ok {
				return nil, &HeaderError{Line: lineNo, Text: line, Msg: "unsupported format"}
			}
			if !strings.HasPrefix(fields[2], "1") {
				return nil, &HeaderError{Line: lineNo, Text: line, Msg: "unsupported version"}
			}
			h.Format = f
			h.Version = fields[2]
			sawFormat = true
		case "comment":
			h.Comments = append(h.Comments, restOf(line, "comment"))
		case "obj_info":
			h.ObjInfo = append(h.ObjInfo, restOf(line, "obj_info"))
		case "element":
			if len(fields) != 3 {
				return nil, &HeaderError{Line: lineNo, Text: line, Msg: "expected 'element <name> <count>'"}
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, &HeaderError{Line: lineNo, Text: line, Msg: "invalid element count"}
			}
			h.Elements = append(h.Elements, ElementDecl{Name: fields[1], Count: n})
		case "property":
			if len(h.Elements) == 0 {
				return nil, &HeaderError{Line: lineNo, Text: line, Msg: "property before element"}
			}
			p, msg := parseProperty(fields)
			if msg != "" {
				return nil, &HeaderError{Line: lineNo, Text: line, Msg: msg}
			}
			e := &h.Elements[len(h.Elements)-1]
			e.Properties = append(e.Properties, p)
		case "end_header":
			if !sawFormat {
				return nil, &HeaderError{Line: lineNo, Text: line, Msg: "missing format line"}
			}
			return h, nil
		default:
			return nil, &HeaderError{Line: lineNo, Text: line, Msg: "unknown keyword"}
		}
	}
}

func parseProperty(fields []string) (PropertyDecl, string) {
	if len(fields) >= 2 && fields[1] == "list" {
		if len(fields) != 5 {
			return PropertyDecl{}, "expected 'property list <count type> <item type> <name>'"
		}
		ct, ok := ParseDataType(fields[2])
		if !ok || ct.IsFloat() {
			return PropertyDecl{}, "invalid list count type"
		}
		it, ok := ParseDataType(fields[3])
		if !ok {
			return PropertyDecl{}, "invalid list item type"
		}
		return PropertyDecl{Name: fields[4], Type: it, IsList: true, CountType: ct}, ""
	}
	if len(fields) != 3 {
		return PropertyDecl{}, "expected 'property <type> <name>'"
	}
	t, ok := ParseDataType(fields[1])
	if !ok {
		return PropertyDecl{}, "invalid property type"
	}
	return PropertyDecl{Name: fields[2], Type: t}, ""
}

// readLine reads one header line without its terminator. Lines may end in
// "\n" or "\r\n".
func readLine(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		frag, isPrefix, err := br.ReadLine()
		if err != nil {
			return "", err
		}
		sb.Write(frag)
		if sb.Len() > maxHeaderLine {
			return "", &HeaderError{Msg: "header line too long"}
		}
		if !isPrefix {
			return sb.String(), nil
		}
	}
}

func restOf(line, keyword string) string {
	rest := strings.TrimLeft(line, " \t")
	rest = strings.TrimPrefix(rest, keyword)
	if len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
		rest = rest[1:]
	}
	return rest
}

// WriteHeader writes h including the terminating "end_header" line.
func WriteHeader(w io.Writer, h *Header) error {
	var sb strings.Builder
	sb.WriteString("ply\n")
	version := h.Version
	if version == "" {
		version = "1.0"
	}
	sb.WriteString("format " + h.Format.String() + " " + version + "\n")
	for _, c := range h.Comments {
		for _, line := range strings.Split(c, "\n") {
			sb.WriteString("comment " + strings.TrimRight(line, "\r") + "\n")
		}
	}
	for _, info := range h.ObjInfo {
		sb.WriteString("obj_info " + info + "\n")
	}
	for _, e := range h.Elements {
		if !validName(e.Name) {
			return fmt.Errorf("%w: element %q", ErrInvalidName, e.Name)
		}
		sb.WriteString("element " + e.Name + " " + strconv.Itoa(e.Count) + "\n")
		for _, p := range e.Properties {
			if !validName(p.Name) {
				return fmt.Errorf("%w: element %q property %q", ErrInvalidName, e.Name, p.Name)
			}
			if p.IsList {
				sb.WriteString("property list " + p.CountType.String() + " " + p.Type.String() + " " + p.Name + "\n")
			} else {
				sb.WriteString("property " + p.Type.String() + " " + p.Name + "\n")
			}
		}
	}
	sb.WriteString("end_header\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func validName(name string) bool {
	return name != "" && strings.IndexFunc(name, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) < 0
}
