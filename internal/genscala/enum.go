package genscala

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

// GenerateEnum emits the sealed sum type + companion for one EnumType
// (component D, spec.md §4.D): one case object per declared value plus a
// reserved Unrecognized(Int) case class, and a companion fromValue total
// function whose decode switch is built from the first-occurrence-only
// deduplicated value list. javaConversions gates the interop conversions
// to/from the native runtime enum (SPEC_FULL.md §11.4). fileCompanion is
// the enclosing file's companion object name, used to build the path down
// to this enum's raw java descriptor (spec.md §4.D item 2).
func GenerateEnum(g *protogen.GeneratedFile, enum *protogen.Enum, javaConversions bool, fileCompanion string) {
	name := enum.ScalaIdent.Name
	firstByNumber := dedupeEnumValues(enum.Values)
	descriptorExpr := javaEnumDescriptorExpr(fileCompanion, enum)

	g.P("sealed trait ", name, " extends com.scalapb.GeneratedEnum {")
	g.In()
	g.P("def value: Int")
	g.P("def index: Int")
	g.P("def name: String")
	g.P("def isUnrecognized: Boolean = false")
	g.P("def scalaDescriptor: com.google.protobuf.Descriptors.EnumValueDescriptor")
	for _, v := range enum.Values {
		g.P("def is", v.ScalaIdent.Name, ": Boolean = false")
	}
	g.When(javaConversions, func() {
		g.P("def toJavaValue: Int = value")
	})
	g.Out()
	g.P("}")
	g.P()

	g.P("object ", name, " {")
	g.In()

	g.P("def descriptor: com.google.protobuf.Descriptors.EnumDescriptor = ", descriptorExpr)
	g.P()

	for i, v := range enum.Values {
		g.P("case object ", v.ScalaIdent.Name, " extends ", name, " {")
		g.In()
		g.P("val value: Int = ", intLit(v))
		g.P("val index: Int = ", i)
		g.P("val name: String = ", quote(string(v.Desc.Name())))
		g.P("val scalaDescriptor: com.google.protobuf.Descriptors.EnumValueDescriptor = descriptor.getValues.get(", i, ")")
		g.P("override val is", v.ScalaIdent.Name, ": Boolean = true")
		g.Out()
		g.P("}")
	}
	g.P()

	g.P("final case class Unrecognized(value: Int) extends ", name, " {")
	g.In()
	g.P("val index: Int = -1")
	g.P("val name: String = \"UNRECOGNIZED\"")
	g.P("def scalaDescriptor: com.google.protobuf.Descriptors.EnumValueDescriptor =")
	g.In()
	g.P("throw new IllegalArgumentException(\"Unrecognized enum values do not have a descriptor\")")
	g.Out()
	g.P("override val isUnrecognized: Boolean = true")
	g.Out()
	g.P("}")
	g.P()

	g.Block("val values: Seq["+name+"] = Seq(", func() {
		for _, v := range enum.Values {
			g.P(v.ScalaIdent.Name, ",")
		}
	}, ")")
	g.P()

	g.Block("def fromValue(value: Int): "+name+" = value match {", func() {
		for _, v := range firstByNumber {
			g.P("case ", intLit(v), " => ", v.ScalaIdent.Name)
		}
		g.P("case _ => Unrecognized(value)")
	}, "}")
	g.When(javaConversions, func() {
		g.P()
		g.P("def fromJavaValue(v: Int): ", name, " = fromValue(v)")
	})
	g.Out()
	g.P("}")
}

// javaEnumDescriptorExpr builds the Java descriptor API accessor chain from
// the file companion's own descriptor down to this enum, walking the
// message-nesting chain (spec.md §4.D item 2: "a reference to the raw enum
// descriptor").
func javaEnumDescriptorExpr(fileCompanion string, enum *protogen.Enum) string {
	var messageIndices []int
	d := protoreflect.Descriptor(enum.Desc)
	for {
		parent := d.Parent()
		md, ok := parent.(protoreflect.MessageDescriptor)
		if !ok {
			break
		}
		messageIndices = append([]int{md.Index()}, messageIndices...)
		d = md
	}

	expr := fileCompanion + ".descriptor"
	for _, idx := range messageIndices {
		expr += ".getMessageTypes.get(" + formatInt(int64(idx)) + ")"
	}
	expr += ".getEnumTypes.get(" + formatInt(int64(enum.Desc.Index())) + ")"
	return expr
}

// dedupeEnumValues keeps only the first occurrence of each declared number,
// matching spec.md §3 ("only the first occurrence of each number
// participates in the decode switch").
func dedupeEnumValues(values []*protogen.EnumValue) []*protogen.EnumValue {
	seen := make(map[int32]bool)
	var out []*protogen.EnumValue
	for _, v := range values {
		n := int32(v.Desc.Number())
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, v)
	}
	return out
}

func intLit(v *protogen.EnumValue) string {
	return formatInt(int64(v.Desc.Number()))
}
