package genscala

import "testing"

func TestApplyIdentity(t *testing.T) {
	if got := Apply(Ident("x")); got != "x" {
		t.Errorf("Apply(Ident(%q)) = %q", "x", got)
	}
}

func TestApplyMethod(t *testing.T) {
	e := Method(Ident("x"), "toBase")
	if got := Apply(e); got != "x.toBase()" {
		t.Errorf("Apply(Method) = %q, want %q", got, "x.toBase()")
	}
}

func TestApplyFunc(t *testing.T) {
	e := Func("MyWrapper.apply", Ident("x"))
	if got := Apply(e); got != "MyWrapper.apply(x)" {
		t.Errorf("Apply(Func) = %q, want %q", got, "MyWrapper.apply(x)")
	}
}

func TestApplyOp(t *testing.T) {
	e := Op(Ident("a"), "==", Ident("b"))
	if got := Apply(e); got != "a == b" {
		t.Errorf("Apply(Op) = %q, want %q", got, "a == b")
	}
}

func TestApplyCollectionPlaceholderIdentity(t *testing.T) {
	e := Ident("")
	if got := ApplyCollection(e); got != "_" {
		t.Errorf("ApplyCollection(Ident(\"\")) = %q, want %q", got, "_")
	}
}

func TestToBaseToCustomNilPassthrough(t *testing.T) {
	recv := Ident("v")
	if got := Apply(ToBase(recv, nil)); got != "v" {
		t.Errorf("ToBase with nil CustomType should pass through, got %q", got)
	}
	if got := Apply(ToCustom(recv, nil)); got != "v" {
		t.Errorf("ToCustom with nil CustomType should pass through, got %q", got)
	}
}

func TestToBaseToCustomLift(t *testing.T) {
	ct := &CustomType{BaseType: "String", ToBase: "pkg.toBase", ToCustom: "pkg.toCustom"}
	recv := Ident("v")
	if got := Apply(ToBase(recv, ct)); got != "pkg.toBase(v)" {
		t.Errorf("ToBase = %q, want %q", got, "pkg.toBase(v)")
	}
	if got := Apply(ToCustom(recv, ct)); got != "pkg.toCustom(v)" {
		t.Errorf("ToCustom = %q, want %q", got, "pkg.toCustom(v)")
	}
}
