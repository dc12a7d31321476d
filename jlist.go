package enumjen

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// JennyListWithNamer creates a new JennyList that decorates errors using the
// provided namer func, which derives a meaningful identifier from an Input.
func JennyListWithNamer[Input any](namer func(t Input) string) *JennyList[Input] {
	return &JennyList[Input]{
		inputnamer: namer,
	}
}

// JennyList is an ordered collection of jennies. JennyList itself implements
// [ManyToMany], and when called, builds an [FS] by calling each of its
// jennies in the order they were appended.
//
// The Files of all member jennies share one relative path namespace.
// JennyList does not modify emitted paths, and a path produced twice is an
// error.
type JennyList[Input any] struct {
	mu sync.RWMutex

	jennies []NamedJenny

	// postprocessors, run in order on every file returned by each jenny
	post []FileMapper

	// inputnamer, if non-nil, gives a name to an input.
	inputnamer func(t Input) string
}

var _ ManyToMany[EnumSpec] = &JennyList[EnumSpec]{}

func (js *JennyList[Input]) JennyName() string {
	return fmt.Sprintf("JennyList[%s]", reflect.TypeOf(new(Input)).Elem().Name())
}

func (js *JennyList[Input]) wrapinerr(in Input, err error) error {
	if err == nil || js.inputnamer == nil {
		return err
	}
	return fmt.Errorf("%w for input %q", err, js.inputnamer(in))
}

// GenerateFS calls every jenny with objs and collects their output. Errors
// from all jennies are aggregated; if any occurred, no FS is returned.
func (js *JennyList[Input]) GenerateFS(objs []Input) (*FS, error) {
	js.mu.RLock()
	defer js.mu.RUnlock()

	jfs := NewFS()

	manyout := func(j NamedJenny, fl Files, err error) error {
		if err != nil {
			return fmt.Errorf("%s: %w", j.JennyName(), err)
		}
		if err = fl.Validate(); err != nil {
			return fmt.Errorf("%s returned invalid Files: %w", j.JennyName(), err)
		}

		for i, f := range fl {
			f.From = append([]NamedJenny{j}, f.From...)
			for _, post := range js.post {
				of, err := post(f)
				if err != nil {
					return fmt.Errorf("postprocessing of %s from %s failed: %w", f.RelativePath, jennystack(f.From), err)
				}
				f = of
			}
			fl[i] = f
		}
		return jfs.addValidated(fl...)
	}
	oneout := func(j NamedJenny, f File, err error) error {
		var fl Files
		if f.Exists() {
			fl = Files{f}
		}
		if err == nil && len(fl) == 0 {
			return nil
		}
		return manyout(j, fl, err)
	}

	var result *multierror.Error
	for _, j := range js.jennies {
		switch jenny := j.(type) {
		case OneToOne[Input]:
			for _, obj := range objs {
				f, err := jenny.Generate(obj)
				if procerr := js.wrapinerr(obj, oneout(jenny, f, err)); procerr != nil {
					result = multierror.Append(result, procerr)
				}
			}
		case ManyToOne[Input]:
			f, err := jenny.Generate(objs)
			if procerr := oneout(jenny, f, err); procerr != nil {
				result = multierror.Append(result, procerr)
			}
		case ManyToMany[Input]:
			fl, err := jenny.Generate(objs)
			if procerr := manyout(jenny, fl, err); procerr != nil {
				result = multierror.Append(result, procerr)
			}
		default:
			panic("unreachable")
		}
	}

	if result.ErrorOrNil() != nil {
		return nil, multierror.Flatten(result)
	}
	return jfs, nil
}

// Generate implements [ManyToMany].
func (js *JennyList[Input]) Generate(objs []Input) (Files, error) {
	jfs, err := js.GenerateFS(objs)
	if err != nil {
		return nil, err
	}
	return jfs.AsFiles(), nil
}

// Append adds jennies to the end of the JennyList.
//
// Every jenny must also implement one of [OneToOne], [ManyToOne] or
// [ManyToMany], or this method panics. Use the Append* methods for
// compile-time safety.
func (js *JennyList[Input]) Append(jennies ...Jenny[Input]) {
	for _, j := range jennies {
		switch j.(type) {
		case OneToOne[Input], ManyToOne[Input], ManyToMany[Input]:
		default:
			panic(fmt.Sprintf("%T is not a valid Jenny, must implement (OneToOne | ManyToOne | ManyToMany)", j))
		}
	}
	js.mu.Lock()
	for _, j := range jennies {
		js.jennies = append(js.jennies, j)
	}
	js.mu.Unlock()
}

// AppendOneToOne is like [JennyList.Append], but typesafe for OneToOne jennies.
func (js *JennyList[Input]) AppendOneToOne(jennies ...OneToOne[Input]) {
	js.mu.Lock()
	for _, j := range jennies {
		js.jennies = append(js.jennies, j)
	}
	js.mu.Unlock()
}

// AppendManyToOne is like [JennyList.Append], but typesafe for ManyToOne jennies.
func (js *JennyList[Input]) AppendManyToOne(jennies ...ManyToOne[Input]) {
	js.mu.Lock()
	for _, j := range jennies {
		js.jennies = append(js.jennies, j)
	}
	js.mu.Unlock()
}

// AppendManyToMany is like [JennyList.Append], but typesafe for ManyToMany jennies.
func (js *JennyList[Input]) AppendManyToMany(jennies ...ManyToMany[Input]) {
	js.mu.Lock()
	for _, j := range jennies {
		js.jennies = append(js.jennies, j)
	}
	js.mu.Unlock()
}

// AddPostprocessors appends FileMappers to the list of postprocessors.
//
// Postprocessors are run in order on every File produced by the JennyList.
func (js *JennyList[Input]) AddPostprocessors(fn ...FileMapper) {
	js.mu.Lock()
	js.post = append(js.post, fn...)
	js.mu.Unlock()
}
