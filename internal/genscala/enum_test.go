package genscala

import "testing"

func TestDedupeEnumValuesKeepsFirstOccurrence(t *testing.T) {
	gen := buildTestPlugin(t)
	color := gen.Files[0].Enums[0]
	if len(color.Values) != 3 {
		t.Fatalf("expected 3 declared values (including the BLUE alias), got %d", len(color.Values))
	}
	first := dedupeEnumValues(color.Values)
	if len(first) != 2 {
		t.Fatalf("expected 2 values after dedup (RED, GREEN), got %d", len(first))
	}
	if first[0].Desc.Name() != "RED" || first[1].Desc.Name() != "GREEN" {
		t.Errorf("dedup did not preserve first-occurrence order: got %v, %v", first[0].Desc.Name(), first[1].Desc.Name())
	}
}

func TestGenerateEnumProducesFromValueSwitch(t *testing.T) {
	gen := buildTestPlugin(t)
	color := gen.Files[0].Enums[0]
	g := gen.NewGeneratedFile("scratch.scala")
	GenerateEnum(g, color, false, "TestProto")
	out := string(g.Content())
	for _, want := range []string{"sealed trait Color", "case object RED", "case object GREEN", "case object BLUE", "final case class Unrecognized", "def fromValue"} {
		if !contains(out, want) {
			t.Errorf("generated enum output missing %q:\n%s", want, out)
		}
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && indexOf(s, substr) >= 0
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
