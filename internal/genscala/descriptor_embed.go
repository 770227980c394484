package genscala

import (
	"encoding/base64"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

// maxChunkBytes is the conservative string-literal chunk size (spec.md
// §4.G: "a conservative 55,000-byte chunk policy is adequate for all
// targets"), applied here to the base64-encoded text rather than the raw
// descriptor bytes -- grounded on the teacher's own genFileDescriptor
// (other_examples/7e0349de, moby-moby's vendored copy), which splits raw
// marshaled bytes into Go string-literal chunks at 0x0a boundaries; we
// split the base64 text at a fixed byte count instead, since the target
// language's string-literal limit is measured in characters, not protobuf
// field boundaries.
const maxChunkBytes = 55000

// EncodeFileDescriptor strips source-code info from p (it is never needed
// at run time and only inflates the embedded payload), marshals it
// deterministically, and returns the base64 text split into chunks no
// larger than maxChunkBytes.
func EncodeFileDescriptor(p *descriptorpb.FileDescriptorProto) ([]string, error) {
	stripped := proto.Clone(p).(*descriptorpb.FileDescriptorProto)
	stripped.SourceCodeInfo = nil

	raw, err := proto.MarshalOptions{Deterministic: true}.Marshal(stripped)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	var chunks []string
	for len(encoded) > 0 {
		n := maxChunkBytes
		if n > len(encoded) {
			n = len(encoded)
		}
		chunks = append(chunks, encoded[:n])
		encoded = encoded[n:]
	}
	if len(chunks) == 0 {
		chunks = []string{""}
	}
	return chunks, nil
}

// GenerateDescriptorBootstrap emits the companion `descriptor` value that
// rebuilds the FileDescriptor at run time by decoding the embedded,
// base64-chunked raw bytes and linking against the already-built
// dependency descriptors (component G, spec.md §4.G). gen resolves each
// proto dependency's own file companion, so the `Array(...)` buildFrom
// argument has a real binding to reference rather than a dangling name.
func GenerateDescriptorBootstrap(gen *protogen.Plugin, g *protogen.GeneratedFile, f *protogen.File, companionName string) error {
	chunks, err := EncodeFileDescriptor(f.Proto)
	if err != nil {
		return protogen.DomainErrorf("file %v: marshaling embedded descriptor: %v", f.Desc.Path(), err)
	}

	g.P("private val __descriptorBytesBase64: String = (")
	g.In()
	for i, c := range chunks {
		sep := " +"
		if i == len(chunks)-1 {
			sep = ""
		}
		g.P(quote(c), sep)
	}
	g.Out()
	g.P(")")
	g.P()

	for i, dep := range f.Proto.GetDependency() {
		depFile, ok := gen.FileByName(dep)
		if !ok {
			return protogen.DomainErrorf("file %v: dependency %v not found in the request", f.Desc.Path(), dep)
		}
		depCompanion := depFile.ScalaPackage.String() + "." + camelCaseFileName(depFile) + "Proto"
		g.P("private val __dep", formatInt(int64(i)), " = ", depCompanion)
	}
	g.P()

	g.P("lazy val descriptor: com.google.protobuf.Descriptors.FileDescriptor = {")
	g.In()
	g.P("val __raw = com.google.protobuf.CodedInputStream.newInstance(")
	g.P("  java.util.Base64.getDecoder.decode(__descriptorBytesBase64))")
	g.P("val __proto = com.google.protobuf.DescriptorProtos.FileDescriptorProto.parseFrom(__raw)")
	g.P("com.google.protobuf.Descriptors.FileDescriptor.buildFrom(__proto, Array(", importDescriptorRefs(f), "))")
	g.Out()
	g.P("}")
	g.P()
	return nil
}

func importDescriptorRefs(f *protogen.File) string {
	out := ""
	for i := range f.Proto.GetDependency() {
		if i > 0 {
			out += ", "
		}
		out += "__dep" + formatInt(int64(i)) + ".descriptor"
	}
	return out
}
