/*
File    : gomix/eval/members.go
Package : eval
*/
package eval

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/scope"
	"github.com/gomix-lang/gomix/value"
)

// evalMemberReference resolves `recv.member` when it is not the callee of
// an Invocation. Instances expose their fields; Strings expose `length`;
// Lists expose `capacity` and `length`. Any other receiver, or an unknown
// member on a receiver that does support member access, is an error.
func (e *Evaluator) evalMemberReference(n *ast.MemberReference, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	recv, sig, err := e.eval(n.Recv, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	v, memErr := memberOf(recv, n.Member)
	if memErr != "" {
		return nil, nil, newError(n.Line, memErr)
	}
	return v, nil, nil
}

func memberOf(recv value.Value, member string) (value.Value, string) {
	switch r := recv.(type) {
	case *value.Instance:
		v, ok := r.Object.Fields.Get(member)
		if !ok {
			return nil, "instance has no field named " + member
		}
		return v, ""
	case *value.String:
		if member == "length" {
			return value.Number(len(r.Runes)), ""
		}
		return nil, "string has no member named " + member
	case *value.List:
		switch member {
		case "length":
			return value.Number(len(r.Items)), ""
		case "capacity":
			return value.Number(cap(r.Items)), ""
		}
		return nil, "list has no member named " + member
	default:
		return nil, "member access is not supported on " + string(recv.Kind())
	}
}
