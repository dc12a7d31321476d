package enumjen

import (
	"strings"
)

// Entry is a single member of a generated enum.
//
// Name is upper-cased when rendered. Value is emitted verbatim inside a
// double-quoted literal; no escaping is performed.
type Entry struct {
	Name  string
	Value string
}

// EnumSpec describes one enum declaration.
type EnumSpec struct {
	Name    string
	Entries []Entry
}

const indent = "  "

// RenderEnum returns the source text for a single enum declaration followed by
// a default export of it.
func RenderEnum(spec EnumSpec) string {
	var b strings.Builder
	writeDecl(&b, spec)
	b.WriteString("\nexport default ")
	b.WriteString(spec.Name)
	b.WriteString(";\n")
	return b.String()
}

// RenderBundle returns the source text for several enum declarations, in
// order, followed by one export statement naming all of them.
func RenderBundle(specs []EnumSpec) string {
	var b strings.Builder
	names := make([]string, len(specs))
	for i, spec := range specs {
		writeDecl(&b, spec)
		b.WriteString("\n")
		names[i] = spec.Name
	}
	b.WriteString("export { ")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(" };\n")
	return b.String()
}

func writeDecl(b *strings.Builder, spec EnumSpec) {
	b.WriteString("const enum ")
	b.WriteString(spec.Name)
	b.WriteString(" {\n")
	for _, e := range spec.Entries {
		b.WriteString(indent)
		b.WriteString(strings.ToUpper(e.Name))
		b.WriteString(` = "`)
		b.WriteString(e.Value)
		b.WriteString("\",\n")
	}
	b.WriteString("}\n")
}
