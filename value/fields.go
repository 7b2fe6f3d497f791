package value

// Fields is an insertion-ordered name→Value map backing InstanceObject, so
// §6's "ClassName(field: value, …)" and §3's field-by-field equality both
// iterate in declaration/assignment order rather than Go's randomized map
// order.
type Fields struct {
	keys []string
	vals map[string]Value
}

// NewFields creates an empty ordered field table.
func NewFields() *Fields {
	return &Fields{vals: make(map[string]Value)}
}

// Get returns the value bound to name, if any.
func (f *Fields) Get(name string) (Value, bool) {
	v, ok := f.vals[name]
	return v, ok
}

// Set inserts or updates name's binding. A new name is appended to Keys();
// an existing name keeps its original position.
func (f *Fields) Set(name string, v Value) {
	if _, exists := f.vals[name]; !exists {
		f.keys = append(f.keys, name)
	}
	f.vals[name] = v
}

// Keys returns field names in insertion order.
func (f *Fields) Keys() []string {
	return f.keys
}
