package enumjen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

func TestRenderEnum(t *testing.T) {
	spec := EnumSpec{
		Name: "Color",
		Entries: []Entry{
			{Name: "red", Value: "red"},
			{Name: "Dark green", Value: "dark green"},
		},
	}

	want := `const enum Color {
  RED = "red",
  DARK GREEN = "dark green",
}

export default Color;
`
	if diff := cmp.Diff(want, RenderEnum(spec)); diff != "" {
		t.Errorf("RenderEnum() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEnumEmpty(t *testing.T) {
	is := is.New(t)
	is.Equal(RenderEnum(EnumSpec{Name: "Nothing"}), "const enum Nothing {\n}\n\nexport default Nothing;\n")
}

func TestRenderBundle(t *testing.T) {
	specs := []EnumSpec{
		{Name: "a", Entries: []Entry{{Name: "1", Value: "1"}, {Name: "3", Value: "3"}}},
		{Name: "b", Entries: []Entry{{Name: "2", Value: "2"}, {Name: "4", Value: "4"}}},
	}

	want := `const enum a {
  1 = "1",
  3 = "3",
}

const enum b {
  2 = "2",
  4 = "4",
}

export { a, b };
`
	if diff := cmp.Diff(want, RenderBundle(specs)); diff != "" {
		t.Errorf("RenderBundle() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDeterministic(t *testing.T) {
	is := is.New(t)
	spec := EnumSpec{Name: "Ticker", Entries: ListEntries([]string{"aapl", "msft", "goog"})}

	is.Equal(RenderEnum(spec), RenderEnum(spec))
	is.Equal(RenderBundle([]EnumSpec{spec, spec}), RenderBundle([]EnumSpec{spec, spec}))
}

func TestRenderEntryNames(t *testing.T) {
	is := is.New(t)
	keys := []string{"us", "fr", "De"}
	out := RenderEnum(EnumSpec{Name: "Country", Entries: ListEntries(keys)})

	var members []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, indent) {
			members = append(members, strings.TrimPrefix(line, indent))
		}
	}
	is.Equal(len(members), len(keys))
	for i, k := range keys {
		is.Equal(members[i], strings.ToUpper(k)+` = "`+k+`",`)
	}
}
