package ply

import "strings"

// Well-known Vec3 property names and their scalar components.
var vec3Layouts = []struct {
	name  string
	comps [3]string
}{
	{"point", [3]string{"x", "y", "z"}},
	{"normal", [3]string{"nx", "ny", "nz"}},
	{"color", [3]string{"red", "green", "blue"}},
	{"color", [3]string{"r", "g", "b"}},
}

// vec3Group returns the Vec3 property a scalar component belongs to.
func vec3Group(component string) (name string, comps [3]string, ok bool) {
	for _, l := range vec3Layouts {
		for _, c := range l.comps {
			if c == component {
				return l.name, l.comps, true
			}
		}
	}
	for _, suffix := range []string{"_x", "_y", "_z"} {
		if base, found := strings.CutSuffix(component, suffix); found && base != "" {
			return base, [3]string{base + "_x", base + "_y", base + "_z"}, true
		}
	}
	return "", comps, false
}

// vec3Components returns the scalar columns a Vec3 property is written as.
func vec3Components(name string) [3]string {
	for _, l := range vec3Layouts {
		if l.name == name {
			return l.comps
		}
	}
	return [3]string{name + "_x", name + "_y", name + "_z"}
}
