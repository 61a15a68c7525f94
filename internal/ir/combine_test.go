package ir_test

import (
	"errors"
	"testing"

	"xelogen/internal/ir"
)

func TestCombine_IntLiteralOneSelectsIncrement(t *testing.T) {
	g := newGraph(t)
	root := mustAdd(t, g, "RootSlot")
	numChildren := mustAdd(t, g, "NumChildren")
	if err := mustInput(t, numChildren, "slot").Connect(mustOutput(t, root, "*")); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	result, err := numChildren.Combine(ir.IntLiteral(1))
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if result.Spec().Name != "PlusOne<Int>" {
		t.Fatalf("combinator = %q, want PlusOne<Int>", result.Spec().Name)
	}
	assertContains(t, result, "value", numChildren)
}

func TestCombine_IntLiteralOtherSelectsAccumulator(t *testing.T) {
	g := newGraph(t)
	numChildren := mustAdd(t, g, "NumChildren")

	result, err := numChildren.Combine(ir.IntLiteral(5))
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if result.Spec().Name != "Plus<Int>" {
		t.Fatalf("combinator = %q, want Plus<Int>", result.Spec().Name)
	}

	bound, err := result.Bound("values")
	if err != nil {
		t.Fatalf("Bound: %v", err)
	}
	if len(bound) != 2 {
		t.Fatalf("expected source and literal holder bound, got %d", len(bound))
	}
	if bound[0].Node().ID() != numChildren.ID() {
		t.Fatalf("first accumulated value must be the source output")
	}
	holder := bound[1].Node()
	if holder.Spec().Name != "IntInput" {
		t.Fatalf("holder = %q, want IntInput", holder.Spec().Name)
	}
	content, err := holder.Content()
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if content != 5 {
		t.Fatalf("holder content = %v, want 5", content)
	}
}

func TestCombine_IntOutputsSelectAccumulator(t *testing.T) {
	g := newGraph(t)
	a := mustAdd(t, g, "NumChildren")
	b := mustAdd(t, g, "NumChildren")

	bOut := mustOutput(t, b, "*")
	result, err := a.Combine(ir.OutputOperand{Out: bOut})
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if result.Spec().Name != "Plus<Int>" {
		t.Fatalf("combinator = %q, want Plus<Int>", result.Spec().Name)
	}
	bound, _ := result.Bound("values")
	if len(bound) != 2 || bound[0].Node().ID() != a.ID() || bound[1].Node().ID() != b.ID() {
		t.Fatalf("accumulator must receive source then operand, got %v", bound)
	}
}

func TestCombine_StringOutputsSelectConcat(t *testing.T) {
	g := newGraph(t)
	a := mustAdd(t, g, "StringInput")
	b := mustAdd(t, g, "StringInput")

	aOut := mustOutput(t, a, "*")
	result, err := aOut.Combine(ir.OutputOperand{Out: mustOutput(t, b, "*")})
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if result.Spec().Name != "Plus<String>" {
		t.Fatalf("combinator = %q, want Plus<String>", result.Spec().Name)
	}
	bound, _ := result.Bound("values")
	if len(bound) != 2 {
		t.Fatalf("expected two accumulated values, got %d", len(bound))
	}
}

func TestCombine_StringLiteral(t *testing.T) {
	g := newGraph(t)
	str := mustAdd(t, g, "StringInput")

	result, err := str.Combine(ir.StringLiteral("suffix"))
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if result.Spec().Name != "Plus<String>" {
		t.Fatalf("combinator = %q, want Plus<String>", result.Spec().Name)
	}
	bound, _ := result.Bound("values")
	if len(bound) != 2 {
		t.Fatalf("expected source and holder bound, got %d", len(bound))
	}
	holder := bound[1].Node()
	if holder.Spec().Name != "StringInput" {
		t.Fatalf("holder = %q, want StringInput", holder.Spec().Name)
	}
	content, _ := holder.Content()
	if content != "suffix" {
		t.Fatalf("holder content = %v, want suffix", content)
	}
}

func TestCombine_TypeMismatch(t *testing.T) {
	g := newGraph(t)
	str := mustAdd(t, g, "StringInput")
	num := mustAdd(t, g, "NumChildren")

	if _, err := str.Combine(ir.IntLiteral(1)); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if _, err := num.Combine(ir.StringLiteral("x")); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	numOut := mustOutput(t, num, "*")
	if _, err := str.Combine(ir.OutputOperand{Out: numOut}); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestCombine_UnsupportedPairing(t *testing.T) {
	g := newGraph(t)
	a := mustAdd(t, g, "BoolInput")
	b := mustAdd(t, g, "BoolInput")

	bOut := mustOutput(t, b, "*")
	_, err := a.Combine(ir.OutputOperand{Out: bOut})
	if !errors.Is(err, ir.ErrUnsupportedCombination) {
		t.Fatalf("expected ErrUnsupportedCombination, got %v", err)
	}
}
