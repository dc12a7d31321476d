package enumjen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"reflect"
)

// Converter turns structured data into generated enum files.
//
// The zero value is ready to use: it checks arguments with [Preconditions],
// logs to [slog.Default], and writes `<name>.ts` files into the current
// working directory, silently replacing existing files.
type Converter struct {
	// Checker validates arguments before any I/O. Defaults to Preconditions.
	Checker Checker

	// Logger receives a debug record per generated file.
	Logger *slog.Logger

	// OutDir is the directory generated files are written to.
	OutDir string

	// Extension of generated files. Defaults to DefaultExtension.
	Extension string

	// Header, if set, is added as a comment to the top of every file.
	Header string

	// NoClobber makes conversions fail with ErrFileExists rather than
	// replace an existing file.
	NoClobber bool

	// Verify makes conversions compare their output to the files on disk
	// instead of writing it. See FS.Verify.
	Verify bool
}

func (c *Converter) checker() Checker {
	if c.Checker == nil {
		return Preconditions{}
	}
	return c.Checker
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Converter) checkStrings(values []any, names []string) error {
	chk := c.checker()
	if err := chk.CheckDefined(values, names); err != nil {
		return err
	}
	return chk.CheckTypes(values, names, reflect.String)
}

// FromJSON generates `<enumName>.ts` from the JSON document at filePath.
//
// filePath must contain ".json". An object document is converted as by
// [Converter.FromObject], keeping its key order; an array document as by
// [Converter.FromArray]. Any other document, null included, is an
// [ErrTypeMismatch].
//
// Numbers keep the text they were written with: 1e3 becomes "1e3" and 1.50
// becomes "1.50".
func (c *Converter) FromJSON(ctx context.Context, filePath, enumName string) error {
	if err := c.checkStrings([]any{filePath, enumName}, []string{"filePath", "enumName"}); err != nil {
		return err
	}

	data, err := loadSource(filePath, ".json")
	if err != nil {
		return err
	}
	v, err := decodeJSON(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	if v == nil {
		return fmt.Errorf("%s: %w: document is null", filePath, ErrTypeMismatch)
	}
	return c.FromValue(ctx, v, enumName)
}

// FromYAML generates `<enumName>.ts` from the YAML document at filePath,
// which must contain ".yaml" or ".yml". Mappings and sequences are handled as
// in [Converter.FromJSON].
func (c *Converter) FromYAML(ctx context.Context, filePath, enumName string) error {
	if err := c.checkStrings([]any{filePath, enumName}, []string{"filePath", "enumName"}); err != nil {
		return err
	}

	data, err := loadSource(filePath, ".yaml", ".yml")
	if err != nil {
		return err
	}
	v, err := decodeYAML(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	if v == nil {
		return fmt.Errorf("%s: %w: document is null", filePath, ErrTypeMismatch)
	}
	return c.FromValue(ctx, v, enumName)
}

// FromCSV generates `<newFileName>.ts` holding one enum per column of the CSV
// file at filePath, which must contain ".csv". Each enum is named after its
// column heading and all of them are exported together.
//
// See [ParseTable] for the accepted format.
func (c *Converter) FromCSV(ctx context.Context, filePath, newFileName string) error {
	if err := c.checkStrings([]any{filePath, newFileName}, []string{"filePath", "newFileName"}); err != nil {
		return err
	}

	data, err := loadSource(filePath, ".csv")
	if err != nil {
		return err
	}
	t, err := ParseTable(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	jl := JennyListWithNamer(func(s EnumSpec) string { return s.Name })
	jl.AppendManyToOne(BundleJenny{FileName: newFileName, Extension: c.Extension})
	return c.generate(ctx, jl, t.Specs())
}

// FromObject generates `<enumName>.ts` with one entry per field of obj, named
// by the upper-cased key and valued by the field value as a string.
func (c *Converter) FromObject(ctx context.Context, obj Object, enumName string) error {
	chk := c.checker()
	if err := chk.CheckDefined([]any{obj, enumName}, []string{"object", "enumName"}); err != nil {
		return err
	}
	if err := chk.CheckType(enumName, "enumName", reflect.String); err != nil {
		return err
	}

	entries, err := ObjectEntries(obj)
	if err != nil {
		return err
	}
	return c.emit(ctx, EnumSpec{Name: enumName, Entries: entries})
}

// FromArray generates `<enumName>.ts` with one entry per element of values,
// named by the upper-cased element and valued by the element itself.
func (c *Converter) FromArray(ctx context.Context, values []string, enumName string) error {
	chk := c.checker()
	if err := chk.CheckDefined([]any{values, enumName}, []string{"array", "enumName"}); err != nil {
		return err
	}
	if err := chk.CheckIsSlice(values, "array"); err != nil {
		return err
	}
	if err := chk.CheckType(enumName, "enumName", reflect.String); err != nil {
		return err
	}

	return c.emit(ctx, EnumSpec{Name: enumName, Entries: ListEntries(values)})
}

// FromValue converts dynamically typed data. v may be an [Object], a map with
// string keys, or a list of strings. Maps are converted in key order.
func (c *Converter) FromValue(ctx context.Context, v any, enumName string) error {
	chk := c.checker()
	if err := chk.CheckDefined([]any{v, enumName}, []string{"value", "enumName"}); err != nil {
		return err
	}

	if _, isObj := v.(Object); !isObj && chk.CheckIsSlice(v, "value") == nil {
		values, err := listOf(chk, v)
		if err != nil {
			return err
		}
		return c.FromArray(ctx, values, enumName)
	}

	obj, err := objectOf(chk, v)
	if err != nil {
		return err
	}
	return c.FromObject(ctx, obj, enumName)
}

func (c *Converter) emit(ctx context.Context, spec EnumSpec) error {
	jl := JennyListWithNamer(func(s EnumSpec) string { return s.Name })
	jl.AppendOneToOne(EnumJenny{Extension: c.Extension})
	return c.generate(ctx, jl, []EnumSpec{spec})
}

func (c *Converter) generate(ctx context.Context, jl *JennyList[EnumSpec], specs []EnumSpec) error {
	if c.Header != "" {
		jl.AddPostprocessors(PrependHeader(c.Header))
	}

	jfs, err := jl.GenerateFS(specs)
	if err != nil {
		return err
	}

	switch {
	case c.Verify:
		err = jfs.Verify(ctx, c.OutDir)
	case c.NoClobber:
		err = jfs.Create(ctx, c.OutDir)
	default:
		err = jfs.Write(ctx, c.OutDir)
	}
	if err != nil {
		return err
	}

	log := c.logger()
	log.Debug("generated enums", "files", jfs.Len(), "outdir", c.OutDir)
	for _, f := range jfs.AsFiles() {
		log.Debug("generated enum file", "path", filepath.Join(c.OutDir, f.RelativePath), "bytes", len(f.Data), "verify", c.Verify)
	}
	return nil
}
