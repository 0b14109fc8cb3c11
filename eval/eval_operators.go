package eval

import (
	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/values"
)

func (in *Interpreter) evalUnary(n *ast.Unary) (values.Value, error) {
	operand, err := in.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "!":
		return values.Boolean{V: !values.Truthy(operand)}, nil
	case "-":
		num, ok := operand.(values.Number)
		if !ok {
			return nil, values.NewRuntimeError(values.ErrTypeMismatch, n.Line(),
				"unary - requires a number, got %s", operand.Kind())
		}
		return values.Number{V: -num.V}, nil
	}
	return nil, values.NewRuntimeError(values.ErrInvalidCall, n.Line(), "unknown unary operator %q", n.Op)
}

// evalBinary handles string concatenation when both operands are
// strings, string coercion when exactly one operand of `+` is a string,
// numeric arithmetic otherwise, numeric comparisons, and structural
// equality for `==`/`!=` regardless of operand kind.
func (in *Interpreter) evalBinary(n *ast.Binary) (values.Value, error) {
	left, err := in.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "==":
		return values.Boolean{V: values.Equal(left, right)}, nil
	case "!=":
		return values.Boolean{V: !values.Equal(left, right)}, nil
	case "+":
		return evalAdd(left, right, n.Line())
	case "-", "*":
		return evalNumericArith(n.Op, left, right, n.Line())
	case "/", "%":
		return evalDivMod(n.Op, left, right, n.Line())
	case "<", "<=", ">", ">=":
		return evalComparison(n.Op, left, right, n.Line())
	}
	return nil, values.NewRuntimeError(values.ErrInvalidCall, n.Line(), "unknown binary operator %q", n.Op)
}

func evalAdd(left, right values.Value, line int) (values.Value, error) {
	ls, lIsStr := left.(values.String)
	rs, rIsStr := right.(values.String)
	switch {
	case lIsStr && rIsStr:
		return values.String{V: ls.V + rs.V}, nil
	case lIsStr:
		return values.String{V: ls.V + right.String()}, nil
	case rIsStr:
		return values.String{V: left.String() + rs.V}, nil
	}
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return nil, values.NewRuntimeError(values.ErrOperandMismatch, line,
			"+ requires two numbers or a string operand, got %s and %s", left.Kind(), right.Kind())
	}
	return values.Number{V: ln.V + rn.V}, nil
}

func evalNumericArith(op string, left, right values.Value, line int) (values.Value, error) {
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return nil, values.NewRuntimeError(values.ErrOperandMismatch, line,
			"%s requires two numbers, got %s and %s", op, left.Kind(), right.Kind())
	}
	if op == "-" {
		return values.Number{V: ln.V - rn.V}, nil
	}
	return values.Number{V: ln.V * rn.V}, nil
}

func evalDivMod(op string, left, right values.Value, line int) (values.Value, error) {
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return nil, values.NewRuntimeError(values.ErrOperandMismatch, line,
			"%s requires two numbers, got %s and %s", op, left.Kind(), right.Kind())
	}
	if rn.V == 0 {
		return nil, values.NewRuntimeError(values.ErrDivisionByZero, line, "%s by zero", op)
	}
	if op == "/" {
		return values.Number{V: ln.V / rn.V}, nil
	}
	return values.Number{V: float64(int64(ln.V) % int64(rn.V))}, nil
}

func evalComparison(op string, left, right values.Value, line int) (values.Value, error) {
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return nil, values.NewRuntimeError(values.ErrTypeMismatch, line,
			"%s requires two numbers, got %s and %s", op, left.Kind(), right.Kind())
	}
	switch op {
	case "<":
		return values.Boolean{V: ln.V < rn.V}, nil
	case "<=":
		return values.Boolean{V: ln.V <= rn.V}, nil
	case ">":
		return values.Boolean{V: ln.V > rn.V}, nil
	default:
		return values.Boolean{V: ln.V >= rn.V}, nil
	}
}

// evalLogical short-circuits: `or` skips Right if Left is already truthy,
// `and` skips Right if Left is already falsy.
func (in *Interpreter) evalLogical(n *ast.Logical) (values.Value, error) {
	left, err := in.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	truthy := values.Truthy(left)
	if n.Op == "or" && truthy {
		return left, nil
	}
	if n.Op == "and" && !truthy {
		return left, nil
	}
	return in.Eval(n.Right)
}
