package genscala

import (
	"testing"
)

// TestGenerateMessageWiresOneof exercises the oneof path flagged unwired:
// GenerateMessage must emit the oneof's sum type, use its lowerCamelCase
// name for the constructor parameter, and reference it (not a PascalCase
// field name) from the accessor bodies.
func TestGenerateMessageWiresOneof(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	g := gen.NewGeneratedFile("scratch.scala")
	if err := GenerateMessage(g, sample, &Options{}, nil, "TestProto"); err != nil {
		t.Fatalf("GenerateMessage: %v", err)
	}
	out := string(g.Content())

	for _, want := range []string{
		"sealed trait Kind",
		"final case class A(value: String) extends Kind",
		"final case class B(value: Int) extends Kind",
		"kind: Kind = Kind.Empty,",
		"def clearKind: Sample = copy(kind = Kind.Empty)",
	} {
		if !contains(out, want) {
			t.Errorf("generated message output missing %q:\n%s", want, out)
		}
	}
}

// TestGenerateMessageMapField exercises the IsMap() branches flagged as
// missing from genGetField/genFromFieldsMap: a Map-typed field must never
// be routed through the presence (.orNull) or scalar default branches.
func TestGenerateMessageMapField(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	g := gen.NewGeneratedFile("scratch.scala")
	if err := GenerateMessage(g, sample, &Options{}, nil, "TestProto"); err != nil {
		t.Fatalf("GenerateMessage: %v", err)
	}
	out := string(g.Content())

	if contains(out, "tags.map(identity).orNull") {
		t.Errorf("map field tags must not go through the presence .orNull branch:\n%s", out)
	}

	for _, want := range []string{
		// constructor parameter and accessor shape
		"tags: Map[String, Int] = Map.empty,",
		"def clearTags: Sample = copy(tags = Map.empty)",
		// writeTo: one tagged TagsEntry message per map entry
		"tags.foreach { case (__k, __v) => __out.writeTag(4, 2); __out.writeMessageNoTag(example.test.Sample_TagsEntry(__k, __v)) }",
		// merge: reconstruct the entry message and fold it into the map
		"__result = __result.copy(tags = __result.tags + (__e.key -> __e.value))",
		// getField: reconstructed entries as a Seq, not .orNull
		"case 4 => tags.iterator.map { case (__k, __v) => example.test.Sample_TagsEntry(__k, __v) }.toSeq",
		// fromFieldsMap: collect entries back into a Map
		"tags = __fields.getOrElse(descriptorForNumber(4), Nil).asInstanceOf[Seq[example.test.Sample_TagsEntry]].map(__e => __e.key -> __e.value).toMap,",
	} {
		if !contains(out, want) {
			t.Errorf("generated message output missing %q:\n%s", want, out)
		}
	}
}

// TestGenerateMessageSkipsUnknownFields exercises the unknown-tag merge arm:
// it must fold the tag and its payload into the accumulated
// UnknownFieldSet rather than silently discard the stream position (the
// round-trip invariant spec.md §8.1 depends on this).
func TestGenerateMessageSkipsUnknownFields(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	g := gen.NewGeneratedFile("scratch.scala")
	if err := GenerateMessage(g, sample, &Options{}, nil, "TestProto"); err != nil {
		t.Fatalf("GenerateMessage: %v", err)
	}
	out := string(g.Content())

	if contains(out, "__result = __result.copy()") {
		t.Errorf("unknown-tag merge arm must not be a no-op copy():\n%s", out)
	}
	for _, want := range []string{
		"unknownFields: com.scalapb.UnknownFieldSet = com.scalapb.UnknownFieldSet.empty,",
		"case __tag => __result = __result.copy(unknownFields = __result.unknownFields.mergeFieldFrom(__tag, __in))",
		"__s += unknownFields.serializedSize",
		"unknownFields.writeTo(__out)",
	} {
		if !contains(out, want) {
			t.Errorf("generated message output missing %q:\n%s", want, out)
		}
	}
}

// TestGenerateMessageScalarGetField exercises the plain scalar field shape
// (id: Int) through genGetField/genFromFieldsMap, guarding against a
// regression that would route it through the map or presence branches.
func TestGenerateMessageScalarGetField(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	g := gen.NewGeneratedFile("scratch.scala")
	if err := GenerateMessage(g, sample, &Options{}, nil, "TestProto"); err != nil {
		t.Fatalf("GenerateMessage: %v", err)
	}
	out := string(g.Content())

	for _, want := range []string{
		"case 1 => if (id == 0) null else id",
		"id = Option(__fields.get(descriptorForNumber(1))).flatten.map(_).getOrElse(0),",
	} {
		if !contains(out, want) {
			t.Errorf("generated message output missing %q:\n%s", want, out)
		}
	}
}
