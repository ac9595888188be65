package evaluator

// applyFunction invokes a callable. For user-defined functions the sequence
// is: arity check, bind parameters into the function's captured namespace,
// evaluate the body there. The namespace switch itself happens through the
// ns argument of Eval, whose deferred CurrentNs restore covers normal
// completion, Return and errors alike.
//
// The captured namespace is the one created at definition time, so repeated
// and recursive calls of the same function share it: parameter bindings from
// an earlier call are simply overwritten by the next one.
func (e *Evaluator) applyFunction(fn Object, args []Object) Object {
	switch fn := fn.(type) {
	case *Function:
		if len(args) != len(fn.Params) {
			return newArityError(fn.Name, len(fn.Params), len(args))
		}
		for i, param := range fn.Params {
			fn.Ns.Set(param, args[i])
		}

		var returnValue Object = NONE
		for _, stmt := range fn.Body {
			res := e.Eval(stmt, fn.Ns)
			if res == nil {
				continue
			}
			if isError(res) {
				return res
			}
			if ret, ok := res.(*ReturnSignal); ok {
				if ret.Expr != nil {
					val := e.Eval(ret.Expr, fn.Ns)
					if isError(val) {
						return val
					}
					returnValue = val
				}
				break
			}
			// Break/Continue/Pass reaching the top of a function body have
			// no propagation target and are discarded.
		}
		return returnValue

	case *Builtin:
		return fn.Fn(args...)

	default:
		return newTypeError("'%s' object is not callable", fn.Type())
	}
}
