package genscala

import (
	"sort"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

// customTypeLookup looks up a field's custom-type mapping. This engine does not
// parse an option-extension registration for it (SPEC_FULL.md §11.1); the
// hook exists so a caller (test, or a future options-reading layer) can
// supply one. The zero-value lookup always returns nil, i.e. no field is
// custom-mapped unless the caller overrides this.
type customTypeLookup func(*protogen.Field) *CustomType

func noCustomTypes(*protogen.Field) *CustomType { return nil }

// GenerateMessage emits the value type and its companion operations for one
// Message (component F, spec.md §4.F, the central subsystem). A MapEntry
// message gets the same full treatment as any other nested message, plus a
// TypeMapper to its (K, V) pair (4.F.7) -- it is never emitted as a
// top-level file, since protobuf only ever synthesizes one as a direct
// nested child of the message declaring the map field. fileCompanion is
// the enclosing file's companion object name, threaded down so nested
// enums can reference their raw java descriptor (spec.md §4.D item 2).
func GenerateMessage(g *protogen.GeneratedFile, message *protogen.Message, opts *Options, lookup customTypeLookup, fileCompanion string) error {
	if lookup == nil {
		lookup = noCustomTypes
	}
	if err := CheckOneofNameCollision(message); err != nil {
		return err
	}
	if err := checkNoGroupFields(message); err != nil {
		return err
	}

	name := message.ScalaIdent.Name
	fields := allFieldsInDeclOrder(message)

	for _, o := range message.Oneofs {
		GenerateOneof(g, o, func(f *protogen.Field) FieldType { return ResolveFieldType(f, lookup(f)) })
		g.P()
	}

	genClassDecl(g, message, name, fields, lookup)
	g.In()
	genAccessors(g, message, fields, lookup)
	genSerializedSize(g, message, fields, lookup)
	genWrite(g, message, fields, lookup)
	genGetField(g, message, fields, lookup)
	g.When(opts.JavaConversions, func() { genInteropShims(g, message, fields, lookup) })
	g.Out()
	g.P("}")
	g.P()

	g.P("object ", name, " extends com.scalapb.GeneratedMessageCompanion[", name, "] {")
	g.In()
	genDefaultInstance(g, message, fields, lookup)
	genMerge(g, message, fields, lookup)
	genFromFieldsMap(g, message, fields, lookup)
	for _, o := range message.Oneofs {
		genOneofFromFieldsMap(g, o, lookup)
	}
	g.When(message.Desc.IsMapEntry(), func() { genTypeMapper(g, message) })
	for _, ext := range message.Extensions {
		if err := GenerateExtension(g, ext, lookup); err != nil {
			return err
		}
	}
	for _, nested := range message.Messages {
		// MapEntry descriptors are never top-level (protobuf only
		// synthesizes them as direct children of the message declaring the
		// map field), so nested messages always get the full Message
		// Emitter treatment, entry or not; the IsMapEntry check above adds
		// the TypeMapper on top of it (4.F.7).
		if err := GenerateMessage(g, nested, opts, lookup, fileCompanion); err != nil {
			return err
		}
	}
	for _, ne := range message.Enums {
		GenerateEnum(g, ne, opts.JavaConversions, fileCompanion)
		g.P()
	}
	g.Out()
	g.P("}")

	return nil
}

// checkNoGroupFields raises the spec-mandated domain error (§7.2) for any
// GROUP-kind field reachable from this message -- regular fields, oneof
// members, and extensions alike -- before any source is emitted for it.
func checkNoGroupFields(message *protogen.Message) error {
	for _, f := range message.Fields {
		if _, err := WireType(f.Desc); err != nil {
			return err
		}
	}
	for _, ext := range message.Extensions {
		if _, err := WireType(ext.Desc); err != nil {
			return err
		}
	}
	return nil
}

// allFieldsInDeclOrder returns message.Fields in declaration order, oneof
// members included. Callers skip the oneof members and emit one entry per
// oneof group after the regular fields (spec.md §4.F: "one constructor
// parameter per regular field ... and one per oneof").
func allFieldsInDeclOrder(message *protogen.Message) []*protogen.Field {
	return message.Fields
}

func genClassDecl(g *protogen.GeneratedFile, message *protogen.Message, name string, fields []*protogen.Field, lookup customTypeLookup) {
	g.P("final case class ", name, "(")
	g.In()
	for _, f := range fields {
		if f.OneofType != nil {
			continue
		}
		ft := ResolveFieldType(f, lookup(f))
		g.P(f.LowerName, ": ", ft.ContainerExpr(), " = ", Apply(DefaultExpr(f, lookup(f))), ",")
	}
	for _, o := range message.Oneofs {
		g.P(o.LowerName, ": ", o.ScalaName, " = ", o.ScalaName, ".Empty,")
	}
	g.P("unknownFields: com.scalapb.UnknownFieldSet = com.scalapb.UnknownFieldSet.empty,")
	g.Out()
	g.P(") extends com.scalapb.GeneratedMessage {")
}

// genAccessors emits 4.F.1: xOrDefault, withX, clearX, addX/addAllX. Verb-
// prefixed accessor names are built from the field's PascalCase Name;
// references to the stored value itself use its LowerName, matching
// ScalaPB's own field-naming convention.
func genAccessors(g *protogen.GeneratedFile, message *protogen.Message, fields []*protogen.Field, lookup customTypeLookup) {
	for _, f := range fields {
		if f.OneofType != nil {
			continue
		}
		ct := lookup(f)
		ft := ResolveFieldType(f, ct)

		switch {
		case f.Desc.IsMap():
			g.P("def clear", f.Name, ": ", message.ScalaIdent.Name, " = copy(", f.LowerName, " = Map.empty)")
			g.P("def add", f.Name, "(__vs: (", ft.KeyType, ", ", ft.Element, ")*): ", message.ScalaIdent.Name, " = copy(", f.LowerName, " = ", f.LowerName, " ++ __vs)")
		case f.Desc.IsList():
			g.P("def clear", f.Name, ": ", message.ScalaIdent.Name, " = copy(", f.LowerName, " = Seq.empty)")
			g.P("def add", f.Name, "(__vs: ", ft.Element, "*): ", message.ScalaIdent.Name, " = copy(", f.LowerName, " = ", f.LowerName, " ++ __vs)")
			g.P("def addAll", f.Name, "(__vs: TraversableOnce[", ft.Element, "]): ", message.ScalaIdent.Name, " = copy(", f.LowerName, " = ", f.LowerName, " ++ __vs)")
		case ft.Container == ContainerOptional:
			g.P("def ", f.LowerName, "OrDefault: ", ft.Element, " = ", f.LowerName, ".getOrElse(", Apply(baseDefault(f, ct)), ")")
			g.P("def with", f.Name, "(__v: ", ft.Element, "): ", message.ScalaIdent.Name, " = copy(", f.LowerName, " = Some(__v))")
			g.P("def clear", f.Name, ": ", message.ScalaIdent.Name, " = copy(", f.LowerName, " = None)")
		default:
			g.P("def with", f.Name, "(__v: ", ft.Element, "): ", message.ScalaIdent.Name, " = copy(", f.LowerName, " = __v)")
			g.P("def clear", f.Name, ": ", message.ScalaIdent.Name, " = copy(", f.LowerName, " = ", Apply(DefaultExpr(f, ct)), ")")
		}
	}
	for _, o := range message.Oneofs {
		for _, f := range o.Fields {
			ft := ResolveFieldType(f, lookup(f))
			g.P("def with", f.Name, "(__v: ", ft.Element, "): ", message.ScalaIdent.Name, " = copy(", o.LowerName, " = ", o.ScalaName, ".", f.Name, "(__v))")
		}
		g.P("def clear", o.ScalaName, ": ", message.ScalaIdent.Name, " = copy(", o.LowerName, " = ", o.ScalaName, ".Empty)")
	}
	g.P()
}

func baseDefault(f *protogen.Field, ct *CustomType) *Expr {
	if f.Desc.Kind() == protoreflect.MessageKind {
		return Method(Ident(f.MessageType.ScalaIdent.String()), "defaultInstance")
	}
	return Ident(scalarDefaultLiteral(f.Desc))
}

// genSerializedSize emits 4.F.2: a memoised serializedSize. The cache holds
// the size plus one, so that 0 means "not yet computed". A packed-repeated
// field's body length is recomputed inline here and again in writeTo; it is
// not memoised per field.
func genSerializedSize(g *protogen.GeneratedFile, message *protogen.Message, fields []*protogen.Field, lookup customTypeLookup) {
	g.P("@transient private var __serializedSizeCachedValue: Int = 0")
	g.P("def serializedSize: Int = {")
	g.In()
	g.P("var __size = __serializedSizeCachedValue")
	g.P("if (__size == 0) {")
	g.In()
	g.P("var __s = 0")
	for _, f := range fieldsByWriteOrder(message) {
		genFieldSizeContribution(g, f, lookup(f))
	}
	g.P("__s += unknownFields.serializedSize")
	g.P("__size = __s + 1")
	g.P("__serializedSizeCachedValue = __size")
	g.Out()
	g.P("}")
	g.P("__size - 1")
	g.Out()
	g.P("}")
	g.P()
}

func genFieldSizeContribution(g *protogen.GeneratedFile, f *protogen.Field, ct *CustomType) {
	n := f.Desc.Number()
	base := ToBase(Ident(f.LowerName), ct)
	switch {
	case f.Desc.IsMap():
		g.P(f.LowerName, ".foreach { case (__k, __v) => val __ms = ", message0EntryCtor(f), "(__k, __v).serializedSize; __s += com.scalapb.WireFormat.tagSize(", n, ") + com.scalapb.WireFormat.uInt32SizeNoTag(__ms) + __ms }")
	case f.Desc.IsList() && IsPacked(f.Desc):
		g.P("if (", f.LowerName, ".nonEmpty) {")
		g.In()
		g.P("val __packed = ", f.LowerName, ".iterator.map(", ApplyCollectionPlaceholder(ct), ").map(com.scalapb.WireFormat.sizeNoTag).sum")
		g.P("__s += com.scalapb.WireFormat.tagSize(", n, ") + com.scalapb.WireFormat.uInt32SizeNoTag(__packed) + __packed")
		g.Out()
		g.P("}")
	case f.Desc.IsList():
		g.P("__s += ", f.LowerName, ".iterator.map(__e => com.scalapb.WireFormat.tagSize(", n, ") + com.scalapb.WireFormat.elementSize(__e)).sum")
	case f.Desc.Kind() == protoreflect.MessageKind:
		g.P(f.LowerName, ".foreach { __m => val __ms = __m.serializedSize; __s += com.scalapb.WireFormat.tagSize(", n, ") + com.scalapb.WireFormat.uInt32SizeNoTag(__ms) + __ms }")
	case supportsPresence(f.Desc):
		g.P(f.LowerName, ".foreach { __v => __s += com.scalapb.WireFormat.tagSize(", n, ") + com.scalapb.WireFormat.payloadSize(", Apply(ToBase(Ident("__v"), ct)), ") }")
	case f.Desc.Syntax() == protoreflect.Proto2:
		g.P("__s += com.scalapb.WireFormat.tagSize(", n, ") + com.scalapb.WireFormat.payloadSize(", Apply(base), ")")
	default:
		g.P("if (", Apply(base), " != ", Apply(DefaultExpr(f, ct)), ") __s += com.scalapb.WireFormat.tagSize(", n, ") + com.scalapb.WireFormat.payloadSize(", Apply(base), ")")
	}
}

// ApplyCollectionPlaceholder renders the map-function passed to a packed
// field's per-element toBase lift, or the identity placeholder when no
// custom mapping is declared.
func ApplyCollectionPlaceholder(ct *CustomType) string {
	if ct == nil {
		return "identity"
	}
	return ct.ToBase + " _"
}

// genWrite emits 4.F.3: fields written in ascending field-number order.
func genWrite(g *protogen.GeneratedFile, message *protogen.Message, fields []*protogen.Field, lookup customTypeLookup) {
	g.P("def writeTo(__out: com.scalapb.CodedOutputStream): Unit = {")
	g.In()
	for _, f := range fieldsByWriteOrder(message) {
		genFieldWrite(g, f, lookup(f))
	}
	g.P("unknownFields.writeTo(__out)")
	g.Out()
	g.P("}")
	g.P()
}

func genFieldWrite(g *protogen.GeneratedFile, f *protogen.Field, ct *CustomType) {
	n := f.Desc.Number()
	base := ToBase(Ident(f.LowerName), ct)
	switch {
	case f.Desc.IsMap():
		g.P(f.LowerName, ".foreach { case (__k, __v) => __out.writeTag(", n, ", 2); __out.writeMessageNoTag(", message0EntryCtor(f), "(__k, __v)) }")
	case f.Desc.IsList() && IsPacked(f.Desc):
		g.P("if (", f.LowerName, ".nonEmpty) {")
		g.In()
		g.P("__out.writeTag(", n, ", 2)")
		g.P("val __packed = ", f.LowerName, ".iterator.map(", ApplyCollectionPlaceholder(ct), ").map(com.scalapb.WireFormat.sizeNoTag).sum")
		g.P("__out.writeUInt32NoTag(__packed)")
		g.P(f.LowerName, ".foreach(__e => __out.writePayloadNoTag(", ApplyCollectionPlaceholder(ct), "(__e)))")
		g.Out()
		g.P("}")
	case f.Desc.IsList():
		g.P(f.LowerName, ".foreach { __e => __out.writeTag(", n, ", com.scalapb.WireFormat.wireTypeOf(__e)); __out.writePayload(", Apply(ToBase(Ident("__e"), ct)), ") }")
	case f.Desc.Kind() == protoreflect.MessageKind:
		g.P(f.LowerName, ".foreach { __m => __out.writeTag(", n, ", 2); __out.writeUInt32NoTag(__m.serializedSize); __m.writeTo(__out) }")
	case supportsPresence(f.Desc):
		g.P(f.LowerName, ".foreach { __v => __out.writeTag(", n, ", com.scalapb.WireFormat.wireTypeOf(__v)); __out.writePayload(", Apply(ToBase(Ident("__v"), ct)), ") }")
	case f.Desc.Syntax() == protoreflect.Proto2:
		g.P("__out.writeTag(", n, ", com.scalapb.WireFormat.wireTypeOf(", Apply(base), ")); __out.writePayload(", Apply(base), ")")
	default:
		g.P("if (", Apply(base), " != ", Apply(DefaultExpr(f, ct)), ") { __out.writeTag(", n, ", com.scalapb.WireFormat.wireTypeOf(", Apply(base), ")); __out.writePayload(", Apply(base), ") }")
	}
}

func message0EntryCtor(f *protogen.Field) string {
	if f.MessageType != nil {
		return f.MessageType.ScalaIdent.String()
	}
	return "Entry"
}

// fieldsByWriteOrder returns regular and oneof-member fields sorted by
// ascending field number, the order writeTo emits them in (spec.md §4.F.3,
// §5 ordering guarantee), regardless of declaration order.
func fieldsByWriteOrder(message *protogen.Message) []*protogen.Field {
	all := append([]*protogen.Field{}, message.Fields...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Desc.Number() < all[j].Desc.Number()
	})
	var out []*protogen.Field
	for _, f := range all {
		if f.OneofType != nil {
			continue // emitted via the oneof's own write dispatch below
		}
		out = append(out, f)
	}
	return out
}

// genMerge emits 4.F.4: decode by tag, known/unknown/repeated/packed/oneof
// dispatch, with alternate-encoding acceptance for packable fields. An
// unrecognized tag is folded into the accumulated UnknownFieldSet rather
// than discarded, preserving the wire round-trip invariant (spec.md §4.F.4,
// §8).
func genMerge(g *protogen.GeneratedFile, message *protogen.Message, fields []*protogen.Field, lookup customTypeLookup) {
	name := message.ScalaIdent.Name
	g.P("def merge(__in: com.scalapb.CodedInputStream, __base: ", name, "): ", name, " = {")
	g.In()
	g.P("var __result = __base")
	g.P("var __done = false")
	g.P("while (!__done) {")
	g.In()
	g.P("__in.readTag() match {")
	g.In()
	g.P("case 0 => __done = true")
	for _, f := range fieldsByWriteOrder(message) {
		genFieldMergeCase(g, f, lookup(f))
	}
	for _, o := range message.Oneofs {
		for _, f := range o.Fields {
			genOneofMergeCase(g, o, f, lookup(f))
		}
	}
	g.P("case __tag => __result = __result.copy(unknownFields = __result.unknownFields.mergeFieldFrom(__tag, __in))")
	g.Out()
	g.P("}")
	g.Out()
	g.P("}")
	g.P("__result")
	g.Out()
	g.P("}")
	g.P()
}

func genFieldMergeCase(g *protogen.GeneratedFile, f *protogen.Field, ct *CustomType) {
	n := f.Desc.Number()
	switch {
	case f.Desc.IsMap():
		key := f.MessageType.Fields[0]
		val := f.MessageType.Fields[1]
		g.P("case com.scalapb.WireFormat.makeTag(", n, ", 2) => { val __e = __in.readMessage(", message0EntryCtor(f), "()); __result = __result.copy(", f.LowerName, " = __result.", f.LowerName, " + (__e.", key.LowerName, " -> __e.", val.LowerName, ")) }")
	case f.Desc.IsList() && IsPacked(f.Desc):
		g.P("case com.scalapb.WireFormat.makeTag(", n, ", 2) => __result = __result.copy(", f.LowerName, " = __result.", f.LowerName, " ++ __in.readPackedVarintOrFixed())")
		g.P("case com.scalapb.WireFormat.makeTag(", n, ", _) => __result = __result.copy(", f.LowerName, " = __result.", f.LowerName, " :+ ", Apply(ToCustom(Ident("__in.readElement()"), ct)), ")")
	case f.Desc.IsList():
		switch f.Desc.Kind() {
		case protoreflect.MessageKind, protoreflect.GroupKind, protoreflect.StringKind, protoreflect.BytesKind:
		default:
			// A packable field declared unpacked still accepts a packed block.
			g.P("case com.scalapb.WireFormat.makeTag(", n, ", 2) => __result = __result.copy(", f.LowerName, " = __result.", f.LowerName, " ++ __in.readPackedVarintOrFixed())")
		}
		g.P("case com.scalapb.WireFormat.makeTag(", n, ", _) => __result = __result.copy(", f.LowerName, " = __result.", f.LowerName, " :+ ", Apply(ToCustom(Ident("__in.readElement()"), ct)), ")")
	case f.Desc.Kind() == protoreflect.MessageKind:
		g.P("case com.scalapb.WireFormat.makeTag(", n, ", 2) => __result = __result.copy(", f.LowerName, " = Some(__in.readMessage(__result.", f.LowerName, "OrDefault)))")
	case supportsPresence(f.Desc):
		g.P("case com.scalapb.WireFormat.makeTag(", n, ", _) => __result = __result.copy(", f.LowerName, " = Some(", Apply(ToCustom(Ident("__in.readElement()"), ct)), "))")
	default:
		g.P("case com.scalapb.WireFormat.makeTag(", n, ", _) => __result = __result.copy(", f.LowerName, " = ", Apply(ToCustom(Ident("__in.readElement()"), ct)), ")")
	}
}

func genOneofMergeCase(g *protogen.GeneratedFile, o *protogen.Oneof, f *protogen.Field, ct *CustomType) {
	n := f.Desc.Number()
	g.P("case com.scalapb.WireFormat.makeTag(", n, ", _) => __result = __result.copy(", o.LowerName, " = ", o.ScalaName, ".", f.Name, "(", Apply(ToCustom(Ident("__in.readElement()"), ct)), "))")
}

// genGetField emits 4.F.5: field lookup by descriptor, returning the base
// type the runtime reflection protocol expects.
func genGetField(g *protogen.GeneratedFile, message *protogen.Message, fields []*protogen.Field, lookup customTypeLookup) {
	g.P("def getField(__field: com.google.protobuf.Descriptors.FieldDescriptor): scala.Any = {")
	g.In()
	g.P("__field.getNumber match {")
	g.In()
	for _, f := range fields {
		if f.OneofType != nil {
			continue
		}
		ct := lookup(f)
		n := f.Desc.Number()
		switch {
		case f.Desc.IsMap():
			g.P("case ", n, " => ", f.LowerName, ".iterator.map { case (__k, __v) => ", message0EntryCtor(f), "(__k, __v) }.toSeq")
		case f.Desc.IsList():
			g.P("case ", n, " => ", f.LowerName)
		case supportsPresence(f.Desc):
			g.P("case ", n, " => ", f.LowerName, ".map(", ApplyCollectionPlaceholder(ct), ").orNull")
		case f.Desc.Kind() == protoreflect.EnumKind:
			g.P("case ", n, " => if (", f.LowerName, ".value == 0) null else ", f.LowerName, ".scalaDescriptor")
		default:
			g.P("case ", n, " => if (", Apply(ToBase(Ident(f.LowerName), ct)), " == ", Apply(DefaultExpr(f, ct)), ") null else ", Apply(ToBase(Ident(f.LowerName), ct)))
		}
	}
	g.P("case _ => throw new MatchError(__field)")
	g.Out()
	g.P("}")
	g.Out()
	g.P("}")
	g.P()
}

// genFromFieldsMap emits 4.F.6: the inverse of getField. A map field
// collects its reconstructed entries into the target Map container; a
// oneof selects the first field whose map entry is present, dispatching to
// the per-oneof FromFieldsMap helper (genOneofFromFieldsMap).
func genFromFieldsMap(g *protogen.GeneratedFile, message *protogen.Message, fields []*protogen.Field, lookup customTypeLookup) {
	name := message.ScalaIdent.Name
	g.P("def fromFieldsMap(__fields: Map[com.google.protobuf.Descriptors.FieldDescriptor, scala.Any]): ", name, " = {")
	g.In()
	g.P(name, "(")
	g.In()
	for _, f := range fields {
		if f.OneofType != nil {
			continue
		}
		n := f.Desc.Number()
		ct := lookup(f)
		switch {
		case f.Desc.IsMap():
			key := f.MessageType.Fields[0]
			val := f.MessageType.Fields[1]
			g.P(f.LowerName, " = __fields.getOrElse(descriptorForNumber(", n, "), Nil).asInstanceOf[Seq[", message0EntryCtor(f), "]].map(__e => __e.", key.LowerName, " -> __e.", val.LowerName, ").toMap,")
		case f.Desc.IsList():
			g.P(f.LowerName, " = __fields.getOrElse(descriptorForNumber(", n, "), Nil).asInstanceOf[Seq[Any]].map(", Apply(ToCustom(Ident("_"), ct)), "),")
		default:
			g.P(f.LowerName, " = Option(__fields.get(descriptorForNumber(", n, "))).flatten.map(", Apply(ToCustom(Ident("_"), ct)), ").getOrElse(", Apply(DefaultExpr(f, ct)), "),")
		}
	}
	for _, o := range message.Oneofs {
		g.P(o.LowerName, " = ", o.ScalaName, "FromFieldsMap(__fields),")
	}
	g.Out()
	g.P(")")
	g.Out()
	g.P("}")
	g.P()
}

// genOneofFromFieldsMap emits the companion helper genFromFieldsMap calls
// into for each oneof: select the first field whose map entry is present,
// falling back to Empty (spec.md §4.F.6).
func genOneofFromFieldsMap(g *protogen.GeneratedFile, o *protogen.Oneof, lookup customTypeLookup) {
	g.P("private def ", o.ScalaName, "FromFieldsMap(__fields: Map[com.google.protobuf.Descriptors.FieldDescriptor, scala.Any]): ", o.ScalaName, " = {")
	g.In()
	for _, f := range o.Fields {
		ct := lookup(f)
		n := f.Desc.Number()
		g.P("__fields.get(descriptorForNumber(", n, ")).foreach { __v => return ", o.ScalaName, ".", f.Name, "(", Apply(ToCustom(Ident("__v"), ct)), ") }")
	}
	g.P(o.ScalaName, ".Empty")
	g.Out()
	g.P("}")
	g.P()
}

// genDefaultInstance emits the companion's canonical all-defaults value,
// the starting point for decoding (GLOSSARY "Default instance").
func genDefaultInstance(g *protogen.GeneratedFile, message *protogen.Message, fields []*protogen.Field, lookup customTypeLookup) {
	g.P("val defaultInstance: ", message.ScalaIdent.Name, " = ", message.ScalaIdent.Name, "()")
	g.P()
}

// genTypeMapper emits 4.F.7: a TypeMapper between a MapEntry message and
// its (K, V) pair, grounded on the moby-moby reflect.go reference's
// map-entry handling, generalised from Go struct literals to Scala tuples.
func genTypeMapper(g *protogen.GeneratedFile, entry *protogen.Message) {
	key := entry.Fields[0]
	val := entry.Fields[1]
	kt := scalarKindType(key.Desc)
	vt := elementTypeOf(val)
	g.P("implicit val typeMapper: com.scalapb.TypeMapper[", entry.ScalaIdent.Name, ", (", kt, ", ", vt, ")] =")
	g.In()
	g.P("com.scalapb.TypeMapper[", entry.ScalaIdent.Name, ", (", kt, ", ", vt, ")](__e => (__e.", key.LowerName, ", __e.", val.LowerName, "))(__kv => ", entry.ScalaIdent.Name, "(__kv._1, __kv._2))")
	g.Out()
	g.P()
}

// genInteropShims emits 4.F.8: toJavaProto/fromJavaProto, gated on the
// java_conversions flag. Proto3 enum fields interop through the numeric
// value to preserve unrecognized values; proto2 goes through the typed
// enum.
func genInteropShims(g *protogen.GeneratedFile, message *protogen.Message, fields []*protogen.Field, lookup customTypeLookup) {
	javaName := "com.example.java." + message.ScalaIdent.Name
	g.P("def toJavaProto(__scala: ", message.ScalaIdent.Name, "): ", javaName, " = {")
	g.In()
	g.P("val __b = ", javaName, ".newBuilder")
	for _, f := range fields {
		if f.OneofType != nil {
			continue
		}
		ct := lookup(f)
		if f.Desc.Kind() == protoreflect.EnumKind && f.Desc.Syntax() == protoreflect.Proto3 {
			g.P("__b.set", f.Name, "Value(__scala.", f.LowerName, ".value)")
			continue
		}
		g.P("__b.set", f.Name, "(", Apply(ToBase(Ident("__scala."+f.LowerName), ct)), ")")
	}
	g.P("__b.build")
	g.Out()
	g.P("}")
	g.P()
	g.P("def fromJavaProto(__java: ", javaName, "): ", message.ScalaIdent.Name, " = ", message.ScalaIdent.Name, "(")
	g.In()
	for _, f := range fields {
		if f.OneofType != nil {
			continue
		}
		ct := lookup(f)
		if f.Desc.Kind() == protoreflect.EnumKind && f.Desc.Syntax() == protoreflect.Proto3 {
			g.P(f.LowerName, " = ", f.EnumType.ScalaIdent.String(), ".fromValue(__java.get", f.Name, "Value),")
			continue
		}
		g.P(f.LowerName, " = ", Apply(ToCustom(Ident("__java.get"+f.Name), ct)), ",")
	}
	g.Out()
	g.P(")")
	g.P()
}
