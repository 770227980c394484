package genscala

import (
	"testing"

	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

func TestGenerateMultiFileLayout(t *testing.T) {
	gen := buildTestPlugin(t)
	if err := Generate(gen, &Options{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	resp := gen.Response()
	if resp.GetError() != "" {
		t.Fatalf("unexpected response error: %s", resp.GetError())
	}
	names := make(map[string]bool)
	for _, f := range resp.File {
		names[f.GetName()] = true
	}
	if !names["Sample.scala"] {
		t.Errorf("expected Sample.scala in output, got %v", names)
	}
	if !names["Color.scala"] {
		t.Errorf("expected Color.scala in output, got %v", names)
	}
}

func TestPreambleWithoutSingleFileIsDomainError(t *testing.T) {
	gen := buildTestPlugin(t)
	f := gen.Files[0]
	f.Preamble = []string{"// hand-written preamble"}
	f.SingleFile = false

	err := GenerateFile(gen, f, &Options{})
	if err == nil {
		t.Fatal("expected a DomainError for preamble without single_file")
	}
	if _, ok := err.(*protogen.DomainError); !ok {
		t.Errorf("expected *protogen.DomainError, got %T: %v", err, err)
	}
}

func TestGenerateSingleFileLayout(t *testing.T) {
	gen := buildTestPlugin(t)
	f := gen.Files[0]
	f.SingleFile = true

	if err := GenerateFile(gen, f, &Options{}); err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}
	resp := gen.Response()
	if len(resp.File) != 1 {
		t.Fatalf("single_file layout should produce exactly one file, got %d", len(resp.File))
	}
}
