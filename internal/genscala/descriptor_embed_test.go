package genscala

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestEncodeFileDescriptorChunking(t *testing.T) {
	gen := buildTestPlugin(t)
	f := gen.Files[0]

	chunks, err := EncodeFileDescriptor(f.Proto)
	if err != nil {
		t.Fatalf("EncodeFileDescriptor: %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}
	for i, c := range chunks {
		if len(c) > maxChunkBytes {
			t.Errorf("chunk %d length %d exceeds maxChunkBytes %d", i, len(c), maxChunkBytes)
		}
	}

	joined := strings.Join(chunks, "")
	raw, err := base64.StdEncoding.DecodeString(joined)
	if err != nil {
		t.Fatalf("decoding joined chunks: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("decoded descriptor bytes are empty")
	}
}

func TestEncodeFileDescriptorNilSourceInfo(t *testing.T) {
	gen := buildTestPlugin(t)
	f := gen.Files[0]
	f.Proto.SourceCodeInfo = nil // nothing to strip in this fixture; exercise the nil-safe path
	if _, err := EncodeFileDescriptor(f.Proto); err != nil {
		t.Fatalf("EncodeFileDescriptor with nil SourceCodeInfo: %v", err)
	}
}
