package genscala

import (
	"testing"

	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

// buildTestPlugin constructs a small synthetic descriptor graph
// programmatically (no protoc invocation, per SPEC_FULL.md §8): one file
// "test.proto", package "example", containing:
//   - message Sample { int32 id = 1; oneof kind { string a = 2; int32 b = 3; } map<string,int32> tags = 4; }
//   - enum Color { RED = 0; GREEN = 1; BLUE = 1; } // BLUE aliases GREEN
func buildTestPlugin(t *testing.T) *protogen.Plugin {
	t.Helper()

	label := func(l descriptorpb.FieldDescriptorProto_Label) *descriptorpb.FieldDescriptorProto_Label { return &l }
	typ := func(ty descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto_Type { return &ty }
	str := func(s string) *string { return &s }
	i32 := func(i int32) *int32 { return &i }

	entry := &descriptorpb.DescriptorProto{
		Name: str("TagsEntry"),
		Field: []*descriptorpb.FieldDescriptorProto{
			{Name: str("key"), Number: i32(1), Label: label(descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL), Type: typ(descriptorpb.FieldDescriptorProto_TYPE_STRING)},
			{Name: str("value"), Number: i32(2), Label: label(descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL), Type: typ(descriptorpb.FieldDescriptorProto_TYPE_INT32)},
		},
		Options: &descriptorpb.MessageOptions{MapEntry: boolPtr(true)},
	}

	sample := &descriptorpb.DescriptorProto{
		Name: str("Sample"),
		Field: []*descriptorpb.FieldDescriptorProto{
			{Name: str("id"), Number: i32(1), Label: label(descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL), Type: typ(descriptorpb.FieldDescriptorProto_TYPE_INT32)},
			{Name: str("a"), Number: i32(2), Label: label(descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL), Type: typ(descriptorpb.FieldDescriptorProto_TYPE_STRING), OneofIndex: i32(0)},
			{Name: str("b"), Number: i32(3), Label: label(descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL), Type: typ(descriptorpb.FieldDescriptorProto_TYPE_INT32), OneofIndex: i32(0)},
			{Name: str("tags"), Number: i32(4), Label: label(descriptorpb.FieldDescriptorProto_LABEL_REPEATED), Type: typ(descriptorpb.FieldDescriptorProto_TYPE_MESSAGE), TypeName: str(".example.Sample.TagsEntry")},
		},
		OneofDecl: []*descriptorpb.OneofDescriptorProto{
			{Name: str("kind")},
		},
		NestedType: []*descriptorpb.DescriptorProto{entry},
	}

	color := &descriptorpb.EnumDescriptorProto{
		Name: str("Color"),
		Value: []*descriptorpb.EnumValueDescriptorProto{
			{Name: str("RED"), Number: i32(0)},
			{Name: str("GREEN"), Number: i32(1)},
			{Name: str("BLUE"), Number: i32(1)},
		},
		Options: &descriptorpb.EnumOptions{AllowAlias: boolPtr(true)},
	}

	fdp := &descriptorpb.FileDescriptorProto{
		Name:       str("test.proto"),
		Package:    str("example"),
		Syntax:     str("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{sample},
		EnumType:    []*descriptorpb.EnumDescriptorProto{color},
	}

	req := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"test.proto"},
		ProtoFile:      []*descriptorpb.FileDescriptorProto{fdp},
	}

	gen, err := protogen.New(req, nil)
	if err != nil {
		t.Fatalf("protogen.New: %v", err)
	}
	return gen
}

func boolPtr(b bool) *bool { return &b }
