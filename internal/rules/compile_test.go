package rules

import (
	"errors"
	"testing"
)

func TestCompile_UnknownOp(t *testing.T) {
	_, err := Compile(Rule{Op: "nonsense"})
	if !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("expected ErrUnknownOp, got %v", err)
	}
}

func TestCompile_UnknownField(t *testing.T) {
	_, err := Compile(Rule{Op: OpEq, Field: "notAField", Value: "x"})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestCompile_BadValueType(t *testing.T) {
	_, err := Compile(Rule{Op: OpGt, Field: FieldPlanetCount, Value: "not a number"})
	if !errors.Is(err, ErrBadValue) {
		t.Fatalf("expected ErrBadValue, got %v", err)
	}
}

func TestCompile_EmptyCombinator(t *testing.T) {
	_, err := Compile(Rule{Op: OpAnd})
	if !errors.Is(err, ErrEmptyRules) {
		t.Fatalf("expected ErrEmptyRules, got %v", err)
	}
}

func TestCompile_NotRequiresExactlyOneChild(t *testing.T) {
	_, err := Compile(Rule{Op: OpNot, Rules: []Rule{
		{Op: OpEq, Field: FieldSpectrType, Value: "O"},
		{Op: OpEq, Field: FieldSpectrType, Value: "B"},
	}})
	if err == nil {
		t.Fatal("expected error for not with two children")
	}
}

func TestCompile_Valid(t *testing.T) {
	_, err := Compile(Rule{
		Op: OpAnd,
		Rules: []Rule{
			{Op: OpEq, Field: FieldSpectrType, Value: "O"},
			{Op: OpGte, Field: FieldPlanetCount, Value: 3.0},
			{Op: OpNot, Rules: []Rule{{Op: OpHas, Field: FieldResources, Value: "FireIce"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error compiling valid rule: %v", err)
	}
}

func TestClone_IndependentScratch(t *testing.T) {
	compiled, err := Compile(Rule{Op: OpEq, Field: FieldSpectrType, Value: "O"})
	if err != nil {
		t.Fatal(err)
	}
	clone := compiled.Clone()
	if &clone.scratch == &compiled.scratch {
		t.Fatal("clone shares the original's scratch buffer")
	}
}
