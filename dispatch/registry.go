package dispatch

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Registry maps a function name and an ordered argument-type signature to
// a callable. Registration happens at composition time; lookup at call
// time is an exact match on the dynamic types of the arguments.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]map[string]reflect.Value // name -> signature -> fn
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{funcs: make(map[string]map[string]reflect.Value)}
}

// Register adds fn as a variant of name, keyed by its argument types.
// Only fixed-arity functions qualify; the return types are not part of
// the signature, so two variants of one name must differ in arguments.
func (r *Registry) Register(name string, fn any) error {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return fmt.Errorf("register %q: %w", name, ErrNotFunc)
	}
	t := v.Type()
	if t.IsVariadic() {
		return fmt.Errorf("register %q: %w", name, ErrVariadic)
	}

	tags := make([]string, t.NumIn())
	for i := range tags {
		tags[i] = t.In(i).String()
	}
	sig := strings.Join(tags, ", ")

	r.mu.Lock()
	defer r.mu.Unlock()

	variants := r.funcs[name]
	if variants == nil {
		variants = make(map[string]reflect.Value)
		r.funcs[name] = variants
	}
	if _, exists := variants[sig]; exists {
		return fmt.Errorf("register %q [%s]: %w", name, sig, ErrDuplicate)
	}
	variants[sig] = v
	return nil
}

// MustRegister is Register that panics on error, for composition-root use.
func (r *Registry) MustRegister(name string, fn any) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Call invokes the variant of name whose signature exactly matches the
// dynamic types of args and returns its results. A miss, either an
// unknown name or no matching signature, returns a *MismatchError
// unchanged to the caller; there are no retries and no coercion.
func (r *Registry) Call(name string, args ...any) ([]any, error) {
	tags := make([]string, len(args))
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			tags[i] = "nil"
			continue
		}
		in[i] = reflect.ValueOf(arg)
		tags[i] = in[i].Type().String()
	}
	sig := strings.Join(tags, ", ")

	r.mu.RLock()
	fn, ok := r.funcs[name][sig]
	r.mu.RUnlock()
	if !ok {
		return nil, &MismatchError{Name: name, Signature: sig}
	}

	out := fn.Call(in)
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

// Has reports whether any variant is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.funcs[name]) > 0
}

// Variants returns the registered signatures for name, sorted.
func (r *Registry) Variants(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sigs := make([]string, 0, len(r.funcs[name]))
	for sig := range r.funcs[name] {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)
	return sigs
}
