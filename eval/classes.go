/*
File    : gomix/eval/classes.go
Package : eval
*/
package eval

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/scope"
	"github.com/gomix-lang/gomix/value"
)

// evalClassDeclaration resolves the optional superclass, copies its method
// table into the new class (renaming an inherited `init` to
// value.SuperInitKey so `super(...)` can find it without a class-chain
// walk), then layers the class's own methods on top, and finally binds the
// class as a constant in sc under its own name.
func (e *Evaluator) evalClassDeclaration(n *ast.ClassDeclaration, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	obj := value.NewClassObject(n.Name)

	if n.SuperName != "" {
		superVal, ok := sc.Lookup(n.SuperName)
		if !ok {
			return nil, nil, newError(n.Line, "unresolved identifier: %s", n.SuperName)
		}
		superClass, ok := superVal.(*value.Class)
		if !ok {
			return nil, nil, newError(n.Line, "%s is not a class", n.SuperName)
		}
		obj.Super = superClass.Object
		for _, name := range superClass.Object.MethodOrder {
			fn := superClass.Object.Methods[name]
			if name == "init" {
				obj.AddMethod(value.SuperInitKey, fn)
			} else {
				obj.AddMethod(name, fn)
			}
		}
		for _, name := range superClass.Object.ClassMethodOrder {
			obj.AddClassMethod(name, superClass.Object.ClassMethods[name])
		}
	}

	for _, lambdaNode := range n.Methods {
		obj.AddMethod(lambdaNode.Name, &value.Lambda{Node: lambdaNode})
	}
	for _, lambdaNode := range n.ClassMethods {
		obj.AddClassMethod(lambdaNode.Name, &value.Lambda{Node: lambdaNode})
	}

	class := &value.Class{Object: obj}
	if err := sc.DeclareConstant(n.Name, class); err != nil {
		return nil, nil, errAsEval(err, n.Line)
	}
	return class, nil, nil
}

// evalSuperStatement executes the superclass's original init (stored under
// value.SuperInitKey) against the enclosing method's `self`, temporarily
// up-casting the receiver's CurrentClass to the superclass for the
// duration of the call. Valid only when `self` resolves to an Instance
// whose class inherited an init — both conditions the spec leaves to be
// checked at evaluation time rather than by the parser.
func (e *Evaluator) evalSuperStatement(n *ast.SuperStatement, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	selfVal, ok := sc.Lookup(selfBinding)
	if !ok {
		return nil, nil, newError(n.Line, "super() used outside of an instance method")
	}
	self, ok := selfVal.(*value.Instance)
	if !ok {
		return nil, nil, newError(n.Line, "super() used outside of an instance method")
	}
	superInit, ok := self.Object.CurrentClass.LookupMethod(value.SuperInitKey)
	if !ok {
		return nil, nil, newError(n.Line, "%s has no superclass init to call", self.Object.CurrentClass.Name)
	}

	args, sig, err := e.evalArgs(n.Args, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}

	originalClass := self.Object.CurrentClass
	self.Object.CurrentClass = originalClass.Super
	result, sig, err := e.callLambda(superInit, args, self, n.Line)
	self.Object.CurrentClass = originalClass
	if err != nil || sig != nil {
		return nil, sig, err
	}
	if _, isNil := result.(value.Nil); !isNil {
		return nil, nil, newError(n.Line, "super init must not return a value")
	}
	return value.Nil{}, nil, nil
}
