package genscala

import (
	"testing"

	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

func TestCheckOneofNameCollisionNoCollision(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	if err := CheckOneofNameCollision(sample); err != nil {
		t.Fatalf("unexpected collision error: %v", err)
	}
}

func TestCheckOneofNameCollisionDetectsNestedMessageClash(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	oneof := sample.Oneofs[0]
	// Force a collision: pretend a nested message shares the oneof's name.
	clash := *sample.Messages[0]
	clash.ScalaIdent.Name = oneof.ScalaName
	sample.Messages = append(sample.Messages, &clash)
	defer func() { sample.Messages = sample.Messages[:len(sample.Messages)-1] }()

	if err := CheckOneofNameCollision(sample); err == nil {
		t.Fatal("expected a DomainError for the forced name collision, got nil")
	}
}

func TestGenerateOneofProducesVariants(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	oneof := sample.Oneofs[0]
	g := gen.NewGeneratedFile("scratch.scala")
	GenerateOneof(g, oneof, func(f *protogen.Field) FieldType { return ResolveFieldType(f, nil) })
	out := string(g.Content())
	for _, want := range []string{"sealed trait Kind", "case object Empty", "final case class A(value: String)", "final case class B(value: Int)"} {
		if !contains(out, want) {
			t.Errorf("generated oneof output missing %q:\n%s", want, out)
		}
	}
}
