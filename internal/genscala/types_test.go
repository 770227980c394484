package genscala

import (
	"testing"

	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

func findField(t *testing.T, m *protogen.Message, name string) *protogen.Field {
	t.Helper()
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("no field named %q in message %v", name, m.Desc.FullName())
	return nil
}

func TestResolveFieldTypeScalar(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	id := findField(t, sample, "Id")
	ft := ResolveFieldType(id, nil)
	if ft.Element != "Int" {
		t.Errorf("id element = %q, want Int", ft.Element)
	}
	if ft.Container != ContainerSingular {
		t.Errorf("id container = %v, want Singular", ft.Container)
	}
}

func TestResolveFieldTypeMap(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	f := findField(t, sample, "Tags")
	ft := ResolveFieldType(f, nil)
	if ft.Container != ContainerMap {
		t.Fatalf("tags container = %v, want Map", ft.Container)
	}
	if ft.KeyType != "String" {
		t.Errorf("tags key type = %q, want String", ft.KeyType)
	}
	if ft.Element != "Int" {
		t.Errorf("tags value type = %q, want Int", ft.Element)
	}
}

func TestIsPackedNonRepeated(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	f := findField(t, sample, "Id")
	if IsPacked(f.Desc) {
		t.Errorf("non-repeated field should never be packed")
	}
}

func TestWireTypeScalarInt32(t *testing.T) {
	gen := buildTestPlugin(t)
	f := findField(t, gen.Files[0].Messages[0], "Id")
	wt, err := WireType(f.Desc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wt != 0 {
		t.Errorf("int32 wire type = %d, want 0 (varint)", wt)
	}
}

func TestOneofMembersPresence(t *testing.T) {
	gen := buildTestPlugin(t)
	sample := gen.Files[0].Messages[0]
	a := findField(t, sample, "A")
	if a.OneofType == nil {
		t.Fatal("field A should be a oneof member")
	}
	if !supportsPresence(a.Desc) {
		t.Errorf("oneof member field should support presence")
	}
}
