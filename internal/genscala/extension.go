package genscala

import (
	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

// GenerateExtension emits typed accessors for one Extension (component H,
// spec.md §4, GLOSSARY "Extension"): a field scoped to the extendable
// descriptor it extends rather than to an enclosing message, exposed as a
// GeneratedExtension value keyed by field number for the unknown-field
// decoder. The val identifier is lowerCamelCase, matching every other
// stored-value reference in the generated source.
func GenerateExtension(g *protogen.GeneratedFile, ext *protogen.Field, lookup customTypeLookup) error {
	if lookup == nil {
		lookup = noCustomTypes
	}
	if _, err := WireType(ext.Desc); err != nil {
		return err
	}
	ct := lookup(ext)
	ft := ResolveFieldType(ext, ct)
	extended := ext.ExtendedType.ScalaIdent.String()

	g.P("val ", ext.LowerName, ": com.scalapb.GeneratedExtension[", extended, ", ", ft.ContainerExpr(), "] =")
	g.In()
	g.P("com.scalapb.GeneratedExtension[", extended, ", ", ft.ContainerExpr(), "](")
	g.In()
	g.P("number = ", ext.Desc.Number(), ",")
	g.P("defaultValue = ", Apply(DefaultExpr(ext, ct)), ",")
	g.Out()
	g.P(")")
	g.Out()
	g.P()
	return nil
}
