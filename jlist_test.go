package enumjen

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

type failJenny struct{}

func (failJenny) JennyName() string { return "failJenny" }

func (failJenny) Generate(spec EnumSpec) (File, error) {
	if spec.Name == "bad" {
		return File{}, errors.New("refusing bad enum")
	}
	return File{}, nil
}

type listJenny struct{}

func (listJenny) JennyName() string { return "listJenny" }

func (listJenny) Generate(specs []EnumSpec) (Files, error) {
	fl := make(Files, 0, len(specs))
	for _, s := range specs {
		fl = append(fl, File{RelativePath: "index/" + s.Name + ".txt", Data: []byte(s.Name)})
	}
	return fl, nil
}

func TestJennyListGenerate(t *testing.T) {
	is := is.New(t)
	specs := []EnumSpec{
		{Name: "A", Entries: ListEntries([]string{"x"})},
		{Name: "B", Entries: ListEntries([]string{"y"})},
	}

	jl := &JennyList[EnumSpec]{}
	jl.AppendOneToOne(EnumJenny{})
	jl.AppendManyToOne(BundleJenny{FileName: "all"})
	jl.AppendManyToMany(listJenny{})

	fl, err := jl.Generate(specs)
	is.NoErr(err)

	var paths []string
	for _, f := range fl {
		paths = append(paths, f.RelativePath)
	}
	is.Equal(paths, []string{"A.ts", "B.ts", "all.ts", "index/A.txt", "index/B.txt"})
	is.Equal(string(fl[0].Data), RenderEnum(specs[0]))
	is.Equal(string(fl[2].Data), RenderBundle(specs))
}

func TestJennyListProvenance(t *testing.T) {
	is := is.New(t)
	inner := &JennyList[EnumSpec]{}
	inner.AppendOneToOne(EnumJenny{})
	outer := &JennyList[EnumSpec]{}
	outer.AppendManyToMany(inner)

	jfs, err := outer.GenerateFS([]EnumSpec{{Name: "A"}})
	is.NoErr(err)
	is.Equal(jfs.files["A.ts"].owner, "JennyList[EnumSpec]:EnumJenny")
}

func TestJennyListConflict(t *testing.T) {
	is := is.New(t)
	jl := &JennyList[EnumSpec]{}
	jl.AppendOneToOne(EnumJenny{})
	jl.AppendManyToOne(BundleJenny{FileName: "A"})

	_, err := jl.Generate([]EnumSpec{{Name: "A"}})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "A.ts"))
}

func TestJennyListNamer(t *testing.T) {
	is := is.New(t)
	jl := JennyListWithNamer(func(s EnumSpec) string { return "enum " + s.Name })
	jl.AppendOneToOne(failJenny{})

	fl, err := jl.Generate([]EnumSpec{{Name: "good"}})
	is.NoErr(err)
	is.Equal(len(fl), 0)

	_, err = jl.Generate([]EnumSpec{{Name: "good"}, {Name: "bad"}})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), `failJenny: refusing bad enum for input "enum bad"`))
}

func TestJennyListPostprocess(t *testing.T) {
	is := is.New(t)
	jl := &JennyList[EnumSpec]{}
	jl.AppendOneToOne(EnumJenny{Extension: ".d.ts"})
	jl.AddPostprocessors(PrependHeader("generated"), func(f File) (File, error) {
		if !strings.HasPrefix(string(f.Data), "// generated") {
			return f, errors.New("header missing")
		}
		return f, nil
	})

	fl, err := jl.Generate([]EnumSpec{{Name: "Dir"}})
	is.NoErr(err)
	is.Equal(len(fl), 1)
	is.Equal(fl[0].RelativePath, "Dir.d.ts")
	is.True(strings.HasPrefix(string(fl[0].Data), "// generated\n\nconst enum Dir {"))

	jl.AddPostprocessors(func(f File) (File, error) { return f, errors.New("boom") })
	_, err = jl.Generate([]EnumSpec{{Name: "Dir"}})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "postprocessing of Dir.d.ts from EnumJenny failed"))
}

func TestJennyListAppendPanics(t *testing.T) {
	is := is.New(t)
	defer func() {
		is.True(recover() != nil)
	}()

	jl := &JennyList[EnumSpec]{}
	jl.Append(namedOnly{})
}

type namedOnly struct{}

func (namedOnly) JennyName() string { return "namedOnly" }
