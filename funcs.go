// Package funcs implements the scalar function layer of the columnar query
// engine. Functions operate on whole arrow column blocks and are looked up by
// name from a registry populated at process start.
package funcs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/apache/arrow/go/v15/arrow"
)

var (
	// ErrNotFound is returned when no function is registered under a name.
	ErrNotFound = errors.New("funcs: function not found")

	// ErrIllegalType is returned at resolve time when an argument's type does
	// not match the function signature. Execution never starts.
	ErrIllegalType = errors.New("funcs: illegal argument type")

	// ErrArity is returned at resolve time when the argument count is wrong.
	ErrArity = errors.New("funcs: wrong number of arguments")
)

// Function is a scalar function evaluated over one columnar block. Exec is
// pure over its arguments and allocates only through the context allocator, so
// a single Function value is safe for concurrent use across blocks.
type Function interface {
	Name() string
	Arity() int

	// Resolve type checks the argument types and returns the result type.
	// This is the plan time half of the contract, Exec is never called for
	// arguments that fail here.
	Resolve(args []arrow.DataType) (arrow.DataType, error)

	Exec(ctx context.Context, args []arrow.Array) (arrow.Array, error)
}

// Registry maps function names to implementations.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]Function
}

func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]Function)}
}

func (r *Registry) Register(f Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fns[f.Name()]; ok {
		return fmt.Errorf("funcs: %q is already registered", f.Name())
	}
	r.fns[f.Name()] = f
	return nil
}

// MustRegister is for init time wiring.
func (r *Registry) MustRegister(f Function) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fns[name]
	return f, ok
}

// Default is the process wide registry. Kernel packages register themselves
// into it from init, importers pull them in with a blank import.
var Default = NewRegistry()

func Register(f Function) error { return Default.Register(f) }

func Lookup(name string) (Function, bool) { return Default.Lookup(name) }

// Call resolves and executes a registered function on one block. The result
// allocates from compute.GetAllocator(ctx), ownership transfers to the caller.
func Call(ctx context.Context, name string, args ...arrow.Array) (arrow.Array, error) {
	f, ok := Default.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	types := make([]arrow.DataType, len(args))
	for i, a := range args {
		types[i] = a.DataType()
	}
	if _, err := f.Resolve(types); err != nil {
		return nil, err
	}
	return f.Exec(ctx, args)
}
