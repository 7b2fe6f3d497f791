/*
File    : gomix/eval/builtins.go
Package : eval
*/
package eval

import "github.com/gomix-lang/gomix/value"

// callListBuiltin implements the List receiver's built-in methods named in
// spec.md §4.3: add(x), insert(i,x), find(x), remove(i).
func (e *Evaluator) callListBuiltin(l *value.List, member string, args []value.Value, line int) (value.Value, *Signal, *EvalError) {
	switch member {
	case "add":
		if len(args) != 1 {
			return nil, nil, newError(line, "add expects 1 argument, got %d", len(args))
		}
		l.Items = append(l.Items, args[0])
		return value.Nil{}, nil, nil

	case "insert":
		if len(args) != 2 {
			return nil, nil, newError(line, "insert expects 2 arguments, got %d", len(args))
		}
		idx, ok := args[0].(value.Number)
		if !ok {
			return nil, nil, newError(line, "insert's first argument must be a number, got %s", args[0].Kind())
		}
		i := idx.Int()
		if i < 0 || i > len(l.Items) {
			return nil, nil, newError(line, "insert index %d out of range (len %d)", i, len(l.Items))
		}
		l.Items = append(l.Items, nil)
		copy(l.Items[i+1:], l.Items[i:])
		l.Items[i] = args[1]
		return value.Nil{}, nil, nil

	case "find":
		if len(args) != 1 {
			return nil, nil, newError(line, "find expects 1 argument, got %d", len(args))
		}
		for i, it := range l.Items {
			if it.Equal(args[0]) {
				return value.Number(i), nil, nil
			}
		}
		return value.Number(-1), nil, nil

	case "remove":
		if len(args) != 1 {
			return nil, nil, newError(line, "remove expects 1 argument, got %d", len(args))
		}
		idx, ok := args[0].(value.Number)
		if !ok {
			return nil, nil, newError(line, "remove's argument must be a number, got %s", args[0].Kind())
		}
		i := idx.Int()
		if i < 0 || i >= len(l.Items) {
			return nil, nil, newError(line, "remove index %d out of range (len %d)", i, len(l.Items))
		}
		removed := l.Items[i]
		l.Items = append(l.Items[:i], l.Items[i+1:]...)
		return removed, nil, nil

	default:
		return nil, nil, newError(line, "list has no method named %s", member)
	}
}

// callStringBuiltin implements the String receiver's built-in method named
// in spec.md §4.3: concat(x, …), which mutates the receiver in place and
// returns it, so the prelude's String.concat class method can thread an
// accumulator through repeated calls.
func (e *Evaluator) callStringBuiltin(s *value.String, member string, args []value.Value, line int) (value.Value, *Signal, *EvalError) {
	switch member {
	case "concat":
		s.Concat(args)
		return s, nil, nil
	default:
		return nil, nil, newError(line, "string has no method named %s", member)
	}
}
