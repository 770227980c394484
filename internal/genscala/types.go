package genscala

import (
	"fmt"
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

// CustomType is a user-declared pair of symbol references lifting a
// protobuf-native base type to and from a custom target-language type
// (spec.md §3 "custom-type mapping", GLOSSARY "Type mapper"). BaseType is
// the scalar/message type the wire format actually carries.
type CustomType struct {
	BaseType string
	ToCustom string // fully qualified function name: base -> custom
	ToBase   string // fully qualified function name: custom -> base
}

// Container classifies how a field's element type is wrapped (spec.md
// §4.A "Type resolution").
type Container int

const (
	ContainerSingular Container = iota
	ContainerOptional
	ContainerRepeated
	ContainerMap
)

// FieldType is the Descriptor View's resolved type information for one
// Field, combining the single-element type name, the container shape, and
// an optional custom-type mapping.
type FieldType struct {
	Element   string // the single element type name (T)
	Container Container
	KeyType   string // non-empty only when Container == ContainerMap
	Custom    *CustomType
}

// ContainerExpr renders the full declared type for a field, e.g.
// "Option[T]", "Seq[T]", "Map[K,V]", or bare "T".
func (ft FieldType) ContainerExpr() string {
	elem := ft.Element
	if ft.Custom != nil {
		elem = ft.Custom.BaseType
	}
	switch ft.Container {
	case ContainerOptional:
		return "Option[" + elem + "]"
	case ContainerRepeated:
		return "Seq[" + elem + "]"
	case ContainerMap:
		return "Map[" + ft.KeyType + ", " + elem + "]"
	default:
		return elem
	}
}

// ResolveFieldType implements the Descriptor View's type-resolution query
// (spec.md §4.A) for a regular (non-oneof) or oneof-member field. custom is
// supplied by the caller (test, or a future options-reading layer) per
// SPEC_FULL.md §11.1 -- this engine does not itself parse an extension
// registration for custom-type options.
func ResolveFieldType(f *protogen.Field, custom *CustomType) FieldType {
	ft := FieldType{Element: scalarElementType(f), Custom: custom}
	switch {
	case f.Desc.IsMap():
		ft.Container = ContainerMap
		entry := f.MessageType
		ft.KeyType = scalarKindType(entry.Fields[0].Desc)
		ft.Element = elementTypeOf(entry.Fields[1])
	case f.Desc.IsList():
		ft.Container = ContainerRepeated
	case supportsPresence(f.Desc):
		ft.Container = ContainerOptional
	default:
		ft.Container = ContainerSingular
	}
	return ft
}

func scalarElementType(f *protogen.Field) string {
	return elementTypeOf(f)
}

func elementTypeOf(f *protogen.Field) string {
	switch f.Desc.Kind() {
	case protoreflect.MessageKind:
		return f.MessageType.ScalaIdent.String()
	case protoreflect.GroupKind:
		return f.MessageType.ScalaIdent.String()
	case protoreflect.EnumKind:
		return f.EnumType.ScalaIdent.String()
	default:
		return scalarKindType(f.Desc)
	}
}

// scalarKindType maps a proto scalar kind to its target-language type name.
func scalarKindType(desc protoreflect.FieldDescriptor) string {
	switch desc.Kind() {
	case protoreflect.BoolKind:
		return "Boolean"
	case protoreflect.Int32Kind, protoreflect.SInt32Kind, protoreflect.SFixed32Kind:
		return "Int"
	case protoreflect.Int64Kind, protoreflect.SInt64Kind, protoreflect.SFixed64Kind:
		return "Long"
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return "Int"
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return "Long"
	case protoreflect.FloatKind:
		return "Float"
	case protoreflect.DoubleKind:
		return "Double"
	case protoreflect.StringKind:
		return "String"
	case protoreflect.BytesKind:
		return "com.google.protobuf.ByteString"
	default:
		panic(fmt.Sprintf("genscala: unhandled scalar kind %v", desc.Kind()))
	}
}

// supportsPresence implements spec.md §3's Field.supportsPresence flag:
// true iff proto2 optional, any oneof member, or a message-typed field. A
// map field is physically a repeated message of a MapEntry type, but it is
// its own category (ContainerMap) and never supports presence the way a
// singular message field does, so it is excluded here even though
// desc.IsList() is false for it.
func supportsPresence(desc protoreflect.FieldDescriptor) bool {
	if desc.IsMap() {
		return false
	}
	if desc.ContainingOneof() != nil && !desc.ContainingOneof().IsSynthetic() {
		return true
	}
	if desc.Kind() == protoreflect.MessageKind || desc.Kind() == protoreflect.GroupKind {
		return !desc.IsList()
	}
	return desc.HasOptionalKeyword()
}

// IsPacked implements spec.md §3: isPacked ⇒ repeated primitive. A packable
// field is packed by default in proto3 (unless explicitly unpacked) and in
// proto2 only when [packed=true].
func IsPacked(desc protoreflect.FieldDescriptor) bool {
	if !desc.IsList() || !desc.IsPacked() {
		return false
	}
	switch desc.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind, protoreflect.StringKind, protoreflect.BytesKind:
		return false
	default:
		return true
	}
}

// DefaultExpr implements the Descriptor View's default-value query D(f)
// (spec.md §4.A). For message fields D(f) is the enclosing message's
// default-instance accessor; custom-mapped fields are lifted through
// toCustom.
func DefaultExpr(f *protogen.Field, custom *CustomType) *Expr {
	var base *Expr
	switch {
	case f.Desc.IsMap():
		base = Ident("Map.empty")
	case f.Desc.IsList():
		base = Ident("Seq.empty")
	case f.Desc.Kind() == protoreflect.MessageKind || f.Desc.Kind() == protoreflect.GroupKind:
		base = Method(Ident(f.MessageType.ScalaIdent.String()), "defaultInstance")
	case f.Desc.Kind() == protoreflect.EnumKind:
		base = Ident(defaultEnumValueIdent(f))
	default:
		base = Ident(scalarDefaultLiteral(f.Desc))
	}
	if supportsPresence(f.Desc) && !f.Desc.IsMap() && !f.Desc.IsList() {
		return base
	}
	return ToCustom(base, custom)
}

func defaultEnumValueIdent(f *protogen.Field) string {
	def := f.Desc.Default().Enum()
	values := f.EnumType.Desc.Values()
	if v := values.ByNumber(def); v != nil {
		for _, ev := range f.EnumType.Values {
			if ev.Desc.Number() == def {
				return ev.ScalaIdent.String()
			}
		}
	}
	if values.Len() > 0 {
		return f.EnumType.Values[0].ScalaIdent.String()
	}
	return f.EnumType.ScalaIdent.String() + ".Unrecognized(0)"
}

// scalarDefaultLiteral renders D(f) for a scalar field: the proto2
// `default` option's literal when set, otherwise the zero value of the
// type.
func scalarDefaultLiteral(desc protoreflect.FieldDescriptor) string {
	def := desc.Default()
	switch desc.Kind() {
	case protoreflect.BoolKind:
		if def.Bool() {
			return "true"
		}
		return "false"
	case protoreflect.Int32Kind, protoreflect.SInt32Kind, protoreflect.SFixed32Kind,
		protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return strconv.FormatInt(def.Int(), 10)
	case protoreflect.Int64Kind, protoreflect.SInt64Kind, protoreflect.SFixed64Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return strconv.FormatInt(def.Int(), 10) + "L"
	case protoreflect.FloatKind:
		return strconv.FormatFloat(def.Float(), 'g', -1, 32) + "f"
	case protoreflect.DoubleKind:
		return strconv.FormatFloat(def.Float(), 'g', -1, 64)
	case protoreflect.StringKind:
		return strconv.Quote(def.String())
	case protoreflect.BytesKind:
		return "com.google.protobuf.ByteString.copyFrom(Array.emptyByteArray)"
	default:
		panic(fmt.Sprintf("genscala: unhandled scalar default kind %v", desc.Kind()))
	}
}

// WireType returns the protobuf wire type for a field's kind, following
// encoding/protowire's wire-type constants. GROUP is intentionally excluded
// (spec.md §7 domain error "unsupported GROUP wire type").
func WireType(desc protoreflect.FieldDescriptor) (int, error) {
	if desc.Kind() == protoreflect.GroupKind {
		return 0, protogen.DomainErrorf("field %v: GROUP wire type is not supported", desc.FullName())
	}
	if desc.IsList() && IsPacked(desc) {
		return 2, nil // length-delimited packed block
	}
	switch desc.Kind() {
	case protoreflect.Int32Kind, protoreflect.Int64Kind, protoreflect.Uint32Kind, protoreflect.Uint64Kind,
		protoreflect.SInt32Kind, protoreflect.SInt64Kind, protoreflect.BoolKind, protoreflect.EnumKind:
		return 0, nil // varint
	case protoreflect.Fixed64Kind, protoreflect.SFixed64Kind, protoreflect.DoubleKind:
		return 1, nil // 64-bit
	case protoreflect.StringKind, protoreflect.BytesKind, protoreflect.MessageKind:
		return 2, nil // length-delimited
	case protoreflect.Fixed32Kind, protoreflect.SFixed32Kind, protoreflect.FloatKind:
		return 5, nil // 32-bit
	default:
		panic(fmt.Sprintf("genscala: unhandled kind in WireType: %v", desc.Kind()))
	}
}
