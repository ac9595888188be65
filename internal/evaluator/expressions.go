package evaluator

import (
	"math"

	"github.com/pintlang/pint/internal/ast"
)

// evalName implements the two evaluation modes of a name reference. Load
// resolves against the active namespace chain; Store yields the bare
// identifier for the assignment evaluator and never touches the namespace.
func (e *Evaluator) evalName(node *ast.Name, ns *Namespace) Object {
	if node.Ctx == ast.Store {
		return &String{Value: node.Value}
	}
	if val, ok := ns.Get(node.Value); ok {
		return val
	}
	if builtin, ok := e.lookupBuiltin(node.Value); ok {
		return builtin
	}
	return newUnboundNameError(node.Value)
}

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, ns *Namespace) Object {
	right := e.Eval(node.Right, ns)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "-":
		switch right := right.(type) {
		case *Integer:
			return &Integer{Value: -right.Value}
		case *Float:
			return &Float{Value: -right.Value}
		}
		return newTypeError("bad operand type for unary -: %s", right.Type())
	case "not":
		return nativeBoolToBooleanObject(!equalsTrue(right))
	}
	return newTypeError("unknown operator: %s%s", node.Operator, right.Type())
}

// evalInfixExpression evaluates left first, then right, and applies the
// operator. and/or short-circuit and yield the deciding operand.
func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, ns *Namespace) Object {
	if node.Operator == "and" || node.Operator == "or" {
		return e.evalBooleanShortCircuit(node, ns)
	}

	left := e.Eval(node.Left, ns)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, ns)
	if isError(right) {
		return right
	}

	operator := node.Operator

	if left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ {
		return evalIntegerInfixExpression(operator, left.(*Integer), right.(*Integer))
	}
	if left.Type() == FLOAT_OBJ || right.Type() == FLOAT_OBJ {
		if lf, rf, ok := floatOperands(left, right); ok {
			return evalFloatInfixExpression(operator, lf, rf)
		}
	}
	if left.Type() == STRING_OBJ && right.Type() == STRING_OBJ {
		return evalStringInfixExpression(operator, left.(*String), right.(*String))
	}

	switch operator {
	case "==":
		return nativeBoolToBooleanObject(objectsEqual(left, right))
	case "!=":
		return nativeBoolToBooleanObject(!objectsEqual(left, right))
	}

	return newTypeError("unsupported operand types for %s: %s and %s",
		operator, left.Type(), right.Type())
}

func (e *Evaluator) evalBooleanShortCircuit(node *ast.InfixExpression, ns *Namespace) Object {
	left := e.Eval(node.Left, ns)
	if isError(left) {
		return left
	}
	if node.Operator == "and" {
		if !equalsTrue(left) {
			return left
		}
	} else {
		if equalsTrue(left) {
			return left
		}
	}
	return e.Eval(node.Right, ns)
}

func evalIntegerInfixExpression(operator string, left, right *Integer) Object {
	switch operator {
	case "+":
		return &Integer{Value: left.Value + right.Value}
	case "-":
		return &Integer{Value: left.Value - right.Value}
	case "*":
		return &Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return newTypeError("integer division by zero")
		}
		return &Integer{Value: left.Value / right.Value}
	case "%":
		if right.Value == 0 {
			return newTypeError("integer modulo by zero")
		}
		return &Integer{Value: left.Value % right.Value}
	case "&":
		return &Integer{Value: left.Value & right.Value}
	case "|":
		return &Integer{Value: left.Value | right.Value}
	case "^":
		return &Integer{Value: left.Value ^ right.Value}
	case "<<":
		if right.Value < 0 {
			return newTypeError("negative shift count")
		}
		return &Integer{Value: left.Value << uint64(right.Value)}
	case ">>":
		if right.Value < 0 {
			return newTypeError("negative shift count")
		}
		return &Integer{Value: left.Value >> uint64(right.Value)}
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value)
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value)
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value)
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value)
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value)
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value)
	}
	return newTypeError("unknown operator: INTEGER %s INTEGER", operator)
}

func evalFloatInfixExpression(operator string, left, right float64) Object {
	switch operator {
	case "+":
		return &Float{Value: left + right}
	case "-":
		return &Float{Value: left - right}
	case "*":
		return &Float{Value: left * right}
	case "/":
		if right == 0 {
			return newTypeError("float division by zero")
		}
		return &Float{Value: left / right}
	case "%":
		if right == 0 {
			return newTypeError("float modulo by zero")
		}
		return &Float{Value: math.Mod(left, right)}
	case "==":
		return nativeBoolToBooleanObject(left == right)
	case "!=":
		return nativeBoolToBooleanObject(left != right)
	case "<":
		return nativeBoolToBooleanObject(left < right)
	case ">":
		return nativeBoolToBooleanObject(left > right)
	case "<=":
		return nativeBoolToBooleanObject(left <= right)
	case ">=":
		return nativeBoolToBooleanObject(left >= right)
	}
	return newTypeError("unknown operator: FLOAT %s FLOAT", operator)
}

func evalStringInfixExpression(operator string, left, right *String) Object {
	switch operator {
	case "+":
		return &String{Value: left.Value + right.Value}
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value)
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value)
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value)
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value)
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value)
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value)
	}
	return newTypeError("unsupported operand types for %s: STRING and STRING", operator)
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, ns *Namespace) Object {
	fn := e.Eval(node.Function, ns)
	if isError(fn) {
		return fn
	}

	args := make([]Object, 0, len(node.Arguments))
	for _, a := range node.Arguments {
		arg := e.Eval(a, ns)
		if isError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	return e.applyFunction(fn, args)
}

func floatOperands(left, right Object) (float64, float64, bool) {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	return lf, rf, lok && rok
}

func asFloat(obj Object) (float64, bool) {
	switch obj := obj.(type) {
	case *Integer:
		return float64(obj.Value), true
	case *Float:
		return obj.Value, true
	}
	return 0, false
}

// objectsEqual compares values for ==/!=. Booleans take part in the numeric
// comparison as 0 and 1, keeping equality consistent with the truth test:
// 1 == True and 0 == False hold.
func objectsEqual(left, right Object) bool {
	switch left := left.(type) {
	case *String:
		if right, ok := right.(*String); ok {
			return left.Value == right.Value
		}
		return false
	case *None:
		_, ok := right.(*None)
		return ok
	}
	if lf, lok := numericValue(left); lok {
		if rf, rok := numericValue(right); rok {
			return lf == rf
		}
	}
	return left == right
}

// numericValue widens integers, floats and booleans to float64 for equality.
func numericValue(obj Object) (float64, bool) {
	switch obj := obj.(type) {
	case *Boolean:
		if obj.Value {
			return 1, true
		}
		return 0, true
	}
	return asFloat(obj)
}
