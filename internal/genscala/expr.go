package genscala

// Expr is the Expression Combinator algebra (component B, spec.md §9): small
// value transforms composed into chained source fragments. Transforms are
// modelled as an enumerated tagged type folded by apply, rather than as
// first-class Go closures, so that a chain of transforms stays inspectable
// and testable as data -- the same design note the teacher applies to its
// own field-access code (each genOneofField*/genMessageField* function
// builds a fixed string template rather than composing func values).
type Expr struct {
	kind exprKind
	recv *Expr  // receiver for MethodApplication / left operand for OperatorApplication
	name string // Identity's source fragment, method or function name, or operator symbol
	args []*Expr
}

type exprKind int

const (
	// Identity yields its wrapped source fragment unchanged.
	exprIdentity exprKind = iota
	// MethodApplication renders as "recv.name(args...)".
	exprMethodApplication
	// FunctionApplication renders as "name(args...)".
	exprFunctionApplication
	// OperatorApplication renders as "recv name args[0]" (infix).
	exprOperatorApplication
)

// Ident wraps a bare source fragment (a variable reference or literal) as
// the identity transform.
func Ident(s string) *Expr { return &Expr{kind: exprIdentity, name: s} }

// Method composes a method-application transform: recv.name(args...).
func Method(recv *Expr, name string, args ...*Expr) *Expr {
	return &Expr{kind: exprMethodApplication, recv: recv, name: name, args: args}
}

// Func composes a function-application transform: name(args...).
func Func(name string, args ...*Expr) *Expr {
	return &Expr{kind: exprFunctionApplication, name: name, args: args}
}

// Op composes an infix operator-application transform: recv name rhs.
func Op(recv *Expr, op string, rhs *Expr) *Expr {
	return &Expr{kind: exprOperatorApplication, recv: recv, name: op, args: []*Expr{rhs}}
}

// apply folds expr into its rendered source-text form. isCollection widens
// the rendering of a bare Identity to account for the zero-arg call
// convention the Message Emitter needs when a transform is applied to a
// collection element (e.g. "xs.map(_.toBase)" vs "x.toBase"): an Identity
// with an empty fragment renders as "_" when isCollection is set, matching
// a map-function placeholder; a non-empty Identity always renders as its
// fragment.
func apply(expr *Expr, isCollection bool) string {
	if expr == nil {
		return ""
	}
	switch expr.kind {
	case exprIdentity:
		if isCollection && expr.name == "" {
			return "_"
		}
		return expr.name
	case exprMethodApplication:
		recv := apply(expr.recv, isCollection)
		return recv + "." + expr.name + "(" + joinArgs(expr.args, isCollection) + ")"
	case exprFunctionApplication:
		return expr.name + "(" + joinArgs(expr.args, isCollection) + ")"
	case exprOperatorApplication:
		recv := apply(expr.recv, isCollection)
		rhs := apply(expr.args[0], isCollection)
		return recv + " " + expr.name + " " + rhs
	default:
		panic("genscala: apply: unhandled expr kind")
	}
}

func joinArgs(args []*Expr, isCollection bool) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += apply(a, isCollection)
	}
	return out
}

// Apply renders expr to its source-text form. It is the only entry point
// emitters use; the exprKind tag dispatch above is package-private.
func Apply(expr *Expr) string { return apply(expr, false) }

// ApplyCollection renders expr the way a map-function body would, with an
// empty Identity (Ident("")) rendering as the placeholder "_".
func ApplyCollection(expr *Expr) string { return apply(expr, true) }

// ToBase chains a CustomType's toBase lift onto recv, or returns recv
// unmodified when ct is nil (no custom mapping declared).
func ToBase(recv *Expr, ct *CustomType) *Expr {
	if ct == nil {
		return recv
	}
	return Func(ct.ToBase, recv)
}

// ToCustom chains a CustomType's toCustom lift onto recv, or returns recv
// unmodified when ct is nil.
func ToCustom(recv *Expr, ct *CustomType) *Expr {
	if ct == nil {
		return recv
	}
	return Func(ct.ToCustom, recv)
}
