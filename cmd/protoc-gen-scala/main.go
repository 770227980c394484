// The protoc-gen-scala binary is a protoc plugin that generates ScalaPB-style
// Scala source from a protocol buffer schema.
package main

import (
	"flag"

	"github.com/scalapb-go/protoc-gen-scala/compiler"
	"github.com/scalapb-go/protoc-gen-scala/internal/genscala"
	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

func main() {
	var (
		flags flag.FlagSet
		// flat_package is recognised directly by protogen.New, since it
		// governs package derivation rather than emission; it is not
		// registered here.
		javaConversions    = flags.Bool("java_conversions", false, "emit interop shims against a native protobuf runtime")
		grpc               = flags.Bool("grpc", false, "invoke the external service stub printer for each service")
		singleLineToString = flags.Bool("single_line_to_string", false, "emit a compact single-line text-format toString")
		opts               = &protogen.Options{
			ParamFunc: flags.Set,
		}
	)
	compiler.Run(opts, func(gen *protogen.Plugin) error {
		return genscala.Generate(gen, &genscala.Options{
			JavaConversions:    *javaConversions,
			Grpc:               *grpc,
			SingleLineToString: *singleLineToString,
		})
	})
}
