package interp

import "fmt"

// NativeFunc is the embedder-facing native callable contract: given
// the Value naming the callable and its evaluated arguments, it
// returns a result Value (NewNull() for "no useful result") or an
// error that aborts interpretation.
type NativeFunc func(callee *Value, args []*Value) (*Value, error)

// Registry is a table of bound native functions (one per NewRegistry
// call, not a process-wide singleton),
// populated by the embedder before interpretation and consulted at
// call time when a FunctionDecl resolves through a LoadID instead of
// a Body.
type Registry struct {
	fns map[string]NativeFunc
}

// NewRegistry creates an empty binding registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]NativeFunc)}
}

// Bind registers fn under name. Rebinding an already-bound name is
// rejected, matching the original runtime's "don't allow to overwrite"
// rule.
func (r *Registry) Bind(name string, fn NativeFunc) error {
	if _, exists := r.fns[name]; exists {
		return fmt.Errorf("native function %q is already bound", name)
	}
	r.fns[name] = fn
	return nil
}

// Unbind removes name from the registry. Unbinding a name that was
// never bound is a no-op, not an error.
func (r *Registry) Unbind(name string) {
	delete(r.fns, name)
}

// Lookup returns the function bound under name, if any.
func (r *Registry) Lookup(name string) (NativeFunc, bool) {
	fn, ok := r.fns[name]
	return fn, ok
}

// BuildReturnUint, BuildReturnInt, BuildReturnFloat, BuildReturnString
// and BuildReturnBool are convenience constructors a native function
// uses to build its return Value without reaching into the Value
// struct directly.
func BuildReturnUint(t Type, data uint64) *Value  { return NewUint(data, t) }
func BuildReturnInt(t Type, data int64) *Value    { return NewInt(data, t) }
func BuildReturnFloat(data float64) *Value        { return NewFloat(data) }
func BuildReturnString(data string) *Value        { return NewString(data) }
func BuildReturnBool(data bool) *Value            { return NewBool(data) }
