package enumjen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// maxParallelIO bounds the number of files read or written at once.
const maxParallelIO = 12

// FS is an in-memory set of generated files that can be written to the real
// filesystem in one batch, or compared against it.
//
// The usual mode is to write generated enums to disk. In CI, [FS.Verify]
// checks instead that what is on disk is identical to what would be
// generated, so committed output cannot drift from its source data.
//
// Files may not be removed once added. Adding a file at a path that is
// already taken is an error.
type FS struct {
	mu    sync.Mutex
	files map[string]*file
}

type file struct {
	b     []byte
	owner string
	from  []NamedJenny
}

// NewFS creates a new FS, ready for use.
func NewFS() *FS {
	return &FS{
		files: make(map[string]*file),
	}
}

// ShouldExistErr indicates a generated file is missing from disk.
type ShouldExistErr struct {
	Path string
}

func (e *ShouldExistErr) Error() string {
	return fmt.Sprintf("%s: generated file should exist, but does not", e.Path)
}

// ContentsDifferErr indicates the contents of a file on disk differ from the
// generated contents.
type ContentsDifferErr struct {
	Path string
	Diff string
}

func (e *ContentsDifferErr) Error() string {
	return fmt.Sprintf("%s would have changed:\n\n%s", e.Path, e.Diff)
}

type writeItem struct {
	path     string
	contents []byte
	from     []NamedJenny
}

// Len reports the number of files in the FS.
func (fs *FS) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.files)
}

// Verify checks the contents of each file against the filesystem. The
// returned error aggregates a [*ShouldExistErr] or [*ContentsDifferErr] for
// every file that is out of date.
//
// If prefix is non-empty it is joined in front of every path. prefix may be
// absolute.
func (fs *FS) Verify(ctx context.Context, prefix string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelIO)

	var rmu sync.Mutex
	var result *multierror.Error
	record := func(err error) {
		rmu.Lock()
		result = multierror.Append(result, err)
		rmu.Unlock()
	}

	for _, item := range fs.items() {
		item := item
		g.Go(func() error {
			ipath := filepath.Join(prefix, item.path)
			ob, err := os.ReadFile(ipath) //nolint:gosec
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					record(&ShouldExistErr{Path: ipath})
					return nil
				}
				return fmt.Errorf("%s: error reading file: %w", ipath, err)
			}
			if dstr := cmp.Diff(string(ob), string(item.contents)); dstr != "" {
				record(&ContentsDifferErr{Path: ipath, Diff: dstr})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("io error while verifying files: %w", err)
	}

	return result.ErrorOrNil()
}

// Write writes all of the files to their paths under prefix, creating parent
// directories as needed. Existing files are overwritten.
func (fs *FS) Write(ctx context.Context, prefix string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.write(ctx, prefix, fs.items())
}

// Create is like [FS.Write], but refuses to replace existing files. If any
// target exists, nothing is written and the returned error wraps
// [ErrFileExists] for each of them.
func (fs *FS) Create(ctx context.Context, prefix string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	items := fs.items()
	var result *multierror.Error
	for _, item := range items {
		path := filepath.Join(prefix, item.path)
		if _, err := os.Stat(path); err == nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, ErrFileExists))
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: could not stat file: %w", path, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	return fs.write(ctx, prefix, items)
}

func (fs *FS) write(ctx context.Context, prefix string, items []writeItem) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelIO)

	for _, item := range items {
		item := item
		g.Go(func() error {
			path := filepath.Join(prefix, item.path)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("%s: failed to ensure parent directory exists: %w", path, err)
			}
			if err := os.WriteFile(path, item.contents, 0o644); err != nil { //nolint:gosec
				return fmt.Errorf("%s: error while writing file: %w", path, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// items returns the contents of the FS sorted by path. Callers must hold mu.
func (fs *FS) items() []writeItem {
	sl := make([]writeItem, 0, len(fs.files))
	for k, v := range fs.files {
		sl = append(sl, writeItem{
			path:     k,
			contents: v.b,
			from:     v.from,
		})
	}

	sort.Slice(sl, func(i, j int) bool {
		return sl[i].path < sl[j].path
	})
	return sl
}

// AsFiles returns the contents of the FS as Files, sorted by path.
func (fs *FS) AsFiles() Files {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	items := fs.items()
	fl := make(Files, len(items))
	for i, item := range items {
		fl[i] = File{
			RelativePath: item.path,
			Data:         item.contents,
			From:         item.from,
		}
	}
	return fl
}

// Add adds one or more files to the FS. An error is returned if any of the
// files has an absolute path, or a path already present in the FS.
func (fs *FS) Add(owner string, flist ...File) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.add(owner, flist...)
}

func (fs *FS) add(owner string, flist ...File) error {
	var result *multierror.Error
	for _, f := range flist {
		if rf, has := fs.files[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("cannot create %s for %q, already created for %q", f.RelativePath, owner, rf.owner))
		}
		if filepath.IsAbs(f.RelativePath) {
			result = multierror.Append(result, fmt.Errorf("generated files must have relative paths, got %s from %q", f.RelativePath, owner))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, f := range flist {
		fs.files[f.RelativePath] = &file{b: f.Data, owner: owner, from: f.From}
	}
	return nil
}

// addValidated adds Files that have already passed [Files.Validate], using
// the jenny stack of each as its owner.
func (fs *FS) addValidated(flist ...File) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var result *multierror.Error
	for _, f := range flist {
		result = multierror.Append(result, fs.add(jennystack(f.From), f))
	}
	return result.ErrorOrNil()
}

// File is a single generated file.
type File struct {
	// RelativePath is the path the file is written to, relative to the
	// output directory.
	RelativePath string

	// Data is the contents of the file.
	Data []byte

	// From is the stack of jennies that produced the file, outermost first.
	From []NamedJenny
}

// Exists reports whether f holds anything. A jenny returns a zero File to
// signal it had nothing to generate.
func (f File) Exists() bool {
	return f.RelativePath != "" && len(f.Data) > 0
}

// Files is a set of generated files.
type Files []File

// Validate checks that every File has a relative path and that no two Files
// share a path.
func (fl Files) Validate() error {
	var result *multierror.Error
	seen := make(map[string]File, len(fl))
	for _, f := range fl {
		if filepath.IsAbs(f.RelativePath) {
			result = multierror.Append(result, fmt.Errorf("%s: generated files must have relative paths", f.RelativePath))
		}
		if prior, has := seen[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("%s: produced by both %s and %s", f.RelativePath, jennystack(prior.From), jennystack(f.From)))
			continue
		}
		seen[f.RelativePath] = f
	}
	return result.ErrorOrNil()
}

// FileMapper transforms a File, e.g. to add a header or reformat it.
type FileMapper func(File) (File, error)

// PrependHeader returns a FileMapper that adds header, as a line comment, to
// the top of every file.
func PrependHeader(header string) FileMapper {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(header, "\n"), "\n") {
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	prefix := b.String()

	return func(f File) (File, error) {
		f.Data = append([]byte(prefix), f.Data...)
		return f, nil
	}
}

func jennystack(s []NamedJenny) string {
	names := make([]string, len(s))
	for i, j := range s {
		names[i] = j.JennyName()
	}
	return strings.Join(names, ":")
}
