/*
File    : gomix/value/value.go
Package : value
*/

// Package value implements the closed runtime Value sum described in §3:
// Nil, Boolean, Number, Char, String, List, Range, Lambda, Class, Instance.
// Strings, Lists, Classes, and Instances are shared by reference — mutation
// through any alias is observable; Lambdas hold a shared reference to their
// AST node. Everything else compares and copies by value.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomix-lang/gomix/ast"
)

// Kind identifies which case of the closed Value sum a Value occupies.
type Kind string

const (
	NilKind      Kind = "nil"
	BooleanKind  Kind = "boolean"
	NumberKind   Kind = "number"
	CharKind     Kind = "char"
	StringKind   Kind = "string"
	ListKind     Kind = "list"
	RangeKind    Kind = "range"
	LambdaKind   Kind = "lambda"
	ClassKind    Kind = "class"
	InstanceKind Kind = "instance"
)

// Value is the interface every runtime value implements.
type Value interface {
	Kind() Kind
	String() string
	Equal(Value) bool
}

// ---------------------------------------------------------------------------
// Nil
// ---------------------------------------------------------------------------

type Nil struct{}

func (Nil) Kind() Kind     { return NilKind }
func (Nil) String() string { return "nil" }
func (Nil) Equal(v Value) bool {
	_, ok := v.(Nil)
	return ok
}

// ---------------------------------------------------------------------------
// Boolean
// ---------------------------------------------------------------------------

type Boolean bool

func (b Boolean) Kind() Kind { return BooleanKind }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Boolean) Equal(v Value) bool {
	other, ok := v.(Boolean)
	return ok && b == other
}

// ---------------------------------------------------------------------------
// Number — a single 32-bit floating type, per §9: never promote to double.
// ---------------------------------------------------------------------------

type Number float32

func (n Number) Kind() Kind { return NumberKind }

func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 32)
}

func (n Number) Equal(v Value) bool {
	other, ok := v.(Number)
	return ok && n == other
}

// Int truncates the Number to an integer, per §9 ("truncate to integer for
// indexing and for character-code arithmetic").
func (n Number) Int() int {
	return int(n)
}

// ---------------------------------------------------------------------------
// Char — a 32-bit code point, not a byte.
// ---------------------------------------------------------------------------

type Char rune

func (c Char) Kind() Kind     { return CharKind }
func (c Char) String() string { return string(rune(c)) }
func (c Char) Equal(v Value) bool {
	other, ok := v.(Char)
	return ok && c == other
}

// ---------------------------------------------------------------------------
// String — shared, mutable text.
// ---------------------------------------------------------------------------

// String holds mutable text as runes so for-loop writeback (§4.3) can
// replace individual characters without per-mutation string reallocation
// games; aliases see updates because String is always held by pointer.
type String struct {
	Runes []rune
}

// NewString creates a shared String value from Go text.
func NewString(s string) *String {
	return &String{Runes: []rune(s)}
}

func (s *String) Kind() Kind   { return StringKind }
func (s *String) String() string { return string(s.Runes) }
func (s *String) Equal(v Value) bool {
	other, ok := v.(*String)
	if !ok || len(s.Runes) != len(other.Runes) {
		return false
	}
	for i, r := range s.Runes {
		if other.Runes[i] != r {
			return false
		}
	}
	return true
}

// Concat appends the textual form of each argument, mutating in place — the
// built-in `concat(x, ...)` method on String receivers (§4.3).
func (s *String) Concat(args []Value) {
	for _, a := range args {
		s.Runes = append(s.Runes, []rune(Display(a))...)
	}
}

// ---------------------------------------------------------------------------
// List — shared, mutable ordered sequence.
// ---------------------------------------------------------------------------

type List struct {
	Items []Value
}

func NewList(items []Value) *List {
	return &List{Items: items}
}

func (l *List) Kind() Kind { return ListKind }

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = Display(it)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Equal(v Value) bool {
	other, ok := v.(*List)
	if !ok || len(l.Items) != len(other.Items) {
		return false
	}
	for i, it := range l.Items {
		if !it.Equal(other.Items[i]) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Range — a pair of like-typed bounds with an inclusivity flag.
// ---------------------------------------------------------------------------

type Range struct {
	Start, End Value
	Inclusive  bool
}

func (r *Range) Kind() Kind { return RangeKind }

func (r *Range) String() string {
	sep := ".."
	if r.Inclusive {
		sep = "..="
	}
	return Display(r.Start) + sep + Display(r.End)
}

func (r *Range) Equal(v Value) bool {
	other, ok := v.(*Range)
	return ok && r.Inclusive == other.Inclusive && r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// ---------------------------------------------------------------------------
// Lambda — a first-class function referring to its AST node by identity.
// ---------------------------------------------------------------------------

type Lambda struct {
	Node *ast.LambdaExpression
}

func (l *Lambda) Kind() Kind { return LambdaKind }

func (l *Lambda) String() string {
	var b strings.Builder
	b.WriteString("fn(")
	for i, p := range l.Node.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if l.Node.Varargs && i == len(l.Node.Params)-1 {
			b.WriteString("*")
		}
		b.WriteString(p)
	}
	b.WriteString(")")
	return b.String()
}

// Equal compares lambdas by AST node identity, per §3.
func (l *Lambda) Equal(v Value) bool {
	other, ok := v.(*Lambda)
	return ok && l.Node == other.Node
}

// ---------------------------------------------------------------------------
// Class / Instance
// ---------------------------------------------------------------------------

// SuperInitKey is the sentinel name under which an inherited `init` is
// re-bound in a subclass's method table, so `super(...)` can find it
// without a runtime class-chain walk (§4.3, §9).
const SuperInitKey = "<SUPER>"

// Class wraps a shared ClassObject.
type Class struct {
	Object *ClassObject
}

func (c *Class) Kind() Kind { return ClassKind }

func (c *Class) String() string {
	var b strings.Builder
	b.WriteString(c.Object.Name)
	if c.Object.Super != nil {
		b.WriteString("(" + c.Object.Super.Name + ")")
	}
	b.WriteString(" {")
	for _, name := range c.Object.MethodOrder {
		if name == SuperInitKey {
			continue
		}
		b.WriteString("\n  " + name)
	}
	for _, name := range c.Object.ClassMethodOrder {
		b.WriteString("\n  class." + name)
	}
	b.WriteString("\n}")
	return b.String()
}

// Equal compares classes by identity, per §3.
func (c *Class) Equal(v Value) bool {
	other, ok := v.(*Class)
	return ok && c.Object == other.Object
}

// ClassObject is the shared definition behind every Class value.
type ClassObject struct {
	Name             string
	Methods          map[string]*Lambda
	MethodOrder      []string
	ClassMethods     map[string]*Lambda
	ClassMethodOrder []string
	Super            *ClassObject
}

// NewClassObject creates an empty class with no superclass.
func NewClassObject(name string) *ClassObject {
	return &ClassObject{
		Name:         name,
		Methods:      make(map[string]*Lambda),
		ClassMethods: make(map[string]*Lambda),
	}
}

// AddMethod inserts an instance method, preserving declaration order.
func (c *ClassObject) AddMethod(name string, fn *Lambda) {
	if _, exists := c.Methods[name]; !exists {
		c.MethodOrder = append(c.MethodOrder, name)
	}
	c.Methods[name] = fn
}

// AddClassMethod inserts a class method, preserving declaration order.
func (c *ClassObject) AddClassMethod(name string, fn *Lambda) {
	if _, exists := c.ClassMethods[name]; !exists {
		c.ClassMethodOrder = append(c.ClassMethodOrder, name)
	}
	c.ClassMethods[name] = fn
}

// LookupMethod searches this class only (no super walk — inheritance is
// realized by copying the super's method table at declaration time).
func (c *ClassObject) LookupMethod(name string) (*Lambda, bool) {
	fn, ok := c.Methods[name]
	return fn, ok
}

// Instance wraps a shared InstanceObject.
type Instance struct {
	Object *InstanceObject
}

func (i *Instance) Kind() Kind { return InstanceKind }

func (i *Instance) String() string {
	var b strings.Builder
	b.WriteString(i.Object.CurrentClass.Name)
	b.WriteString("(")
	for idx, name := range i.Object.Fields.Keys() {
		if idx > 0 {
			b.WriteString(", ")
		}
		v, _ := i.Object.Fields.Get(name)
		b.WriteString(fmt.Sprintf("%s: %s", name, Display(v)))
	}
	b.WriteString(")")
	return b.String()
}

// Equal compares instances by class identity plus field-by-field deep
// equality in insertion order, per §3 and property 9 (different classes
// are never equal).
func (i *Instance) Equal(v Value) bool {
	other, ok := v.(*Instance)
	if !ok || i.Object.CurrentClass != other.Object.CurrentClass {
		return false
	}
	keys := i.Object.Fields.Keys()
	otherKeys := other.Object.Fields.Keys()
	if len(keys) != len(otherKeys) {
		return false
	}
	for idx, k := range keys {
		if otherKeys[idx] != k {
			return false
		}
		a, _ := i.Object.Fields.Get(k)
		b, _ := other.Object.Fields.Get(k)
		if !a.Equal(b) {
			return false
		}
	}
	return true
}

// InstanceObject is the shared state behind every Instance value.
type InstanceObject struct {
	CurrentClass *ClassObject
	Fields       *Fields
}

// NewInstanceObject creates an instance with no fields set yet.
func NewInstanceObject(class *ClassObject) *InstanceObject {
	return &InstanceObject{CurrentClass: class, Fields: NewFields()}
}

// Display renders v's textual form for print, the result dump, list/string
// interpolation, and String.concat — the single formatting rule of §6.
func Display(v Value) string {
	return v.String()
}
