package genscala

import (
	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

// CheckOneofNameCollision implements the Descriptor View's naming-collision
// guard (spec.md §4.A): the derived oneof sum-type name must not collide
// with any nested enum or nested message name declared in the same scope.
// The teacher resolves the analogous Go collision (a oneof wrapper type
// colliding with a sibling struct/interface type) by silently appending an
// underscore and retrying (internal_gengo/oneof.go's fieldOneofType,
// guarded by a `Loop:` label) -- this engine instead raises a DomainError,
// a deliberate, spec-mandated (§7.2) behavioural departure from that
// teacher pattern.
func CheckOneofNameCollision(message *protogen.Message) error {
	for _, oneof := range message.Oneofs {
		name := oneof.ScalaName
		for _, m := range message.Messages {
			if m.ScalaIdent.Name == name {
				return protogen.DomainErrorf(
					"message %v: oneof %q's sum-type name collides with nested message %q",
					message.Desc.FullName(), oneof.Desc.Name(), m.Desc.Name())
			}
		}
		for _, e := range message.Enums {
			if e.ScalaIdent.Name == name {
				return protogen.DomainErrorf(
					"message %v: oneof %q's sum-type name collides with nested enum %q",
					message.Desc.FullName(), oneof.Desc.Name(), e.Desc.Name())
			}
		}
		for _, other := range message.Oneofs {
			if other != oneof && other.ScalaName == name {
				return protogen.DomainErrorf(
					"message %v: oneof %q's sum-type name collides with oneof %q",
					message.Desc.FullName(), oneof.Desc.Name(), other.Desc.Name())
			}
		}
	}
	return nil
}

// GenerateOneof emits the sealed sum type + variants for one OneofGroup
// (component E, spec.md §4.E): a reserved Empty case and one CaseName(value:
// T) case per member field, each exposing a number, isX predicates, and an
// option-shaped accessor returning Some(value) only on its own arm.
func GenerateOneof(g *protogen.GeneratedFile, oneof *protogen.Oneof, fieldType func(*protogen.Field) FieldType) {
	name := oneof.ScalaName

	g.P("sealed trait ", name, " {")
	g.In()
	g.P("def number: Int")
	g.P("def isEmpty: Boolean = false")
	for _, f := range oneof.Fields {
		g.P("def is", f.Name, ": Boolean = false")
		g.P("def ", f.LowerName, ": Option[", fieldType(f).Element, "] = None")
	}
	g.Out()
	g.P("}")
	g.P()

	g.P("object ", name, " {")
	g.In()
	g.P("case object Empty extends ", name, " {")
	g.In()
	g.P("def number: Int = 0")
	g.P("override def isEmpty: Boolean = true")
	g.Out()
	g.P("}")
	g.P()

	for _, f := range oneof.Fields {
		// A oneof variant always holds the bare element type T, never
		// Option[T] or a collection -- presence is expressed by which
		// variant is selected, not by the field's own container shape.
		elem := fieldType(f).Element
		g.P("final case class ", f.Name, "(value: ", elem, ") extends ", name, " {")
		g.In()
		g.P("def number: Int = ", f.Desc.Number())
		g.P("override def is", f.Name, ": Boolean = true")
		g.P("override def ", f.LowerName, ": Option[", elem, "] = Some(value)")
		g.Out()
		g.P("}")
	}
	g.Out()
	g.P("}")
}
