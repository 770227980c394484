// Package genscala implements the Scala-target emission logic of the
// translation engine (components B, D, E, F, G, H, and the emission half of
// I): Expression Combinators, Enum/Oneof/Message/Extension emitters, the
// embedded file-descriptor bootstrap, and the per-file layout driver.
package genscala

import (
	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

// Options are the plugin parameter flags that affect emission (spec.md §6).
// flat_package is the fourth recognised flag but is handled directly by
// protogen.New, since it governs package derivation rather than emission --
// see protogen.Plugin.flatPackage.
type Options struct {
	JavaConversions    bool // emit interop shims against a native protobuf runtime
	Grpc               bool // invoke the external service stub printer for each service
	SingleLineToString bool // emit a compact single-line text-format toString

	ServiceStubs ServiceStubPrinter // defaults to NoopServiceStubPrinter if nil
}

// Generate is the Request Driver's emission half (component I): for every
// file in gen.Files marked Generate, invoke the File Emitter. A DomainError
// from any file aborts the whole invocation -- spec.md §7 and §5 both
// require generation to be a pure, atomic transformation; no partial output
// is emitted on failure.
func Generate(gen *protogen.Plugin, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	if opts.ServiceStubs == nil {
		opts.ServiceStubs = NoopServiceStubPrinter{}
	}
	for _, f := range gen.Files {
		if !f.Generate {
			continue
		}
		if err := GenerateFile(gen, f, opts); err != nil {
			return err
		}
	}
	return nil
}

// GenerateFile is the File Emitter (component G, spec.md §4.G): it assembles
// one file's output in either single-file or multi-file layout and emits
// the descriptor bootstrap companion.
func GenerateFile(gen *protogen.Plugin, f *protogen.File, opts *Options) error {
	if len(f.Preamble) > 0 && !f.SingleFile {
		return protogen.DomainErrorf("file %v: preamble option requires single_file", f.Desc.Path())
	}

	companionName := camelCaseFileName(f) + "Proto"

	if f.SingleFile {
		g := gen.NewGeneratedFile(f.GeneratedFilenamePrefix + ".scala")
		writeFileHeader(g, f, opts)
		for _, line := range f.Preamble {
			g.P(line)
		}
		if err := emitAllDecls(gen, g, f, opts, companionName); err != nil {
			return err
		}
		return nil
	}

	for _, m := range f.Messages {
		g := gen.NewGeneratedFile(m.ScalaIdent.Name + ".scala")
		writeFileHeader(g, f, opts)
		if err := GenerateMessage(g, m, opts, noCustomTypes, companionName); err != nil {
			return err
		}
	}
	for _, e := range f.Enums {
		g := gen.NewGeneratedFile(e.ScalaIdent.Name + ".scala")
		writeFileHeader(g, f, opts)
		GenerateEnum(g, e, opts.JavaConversions, companionName)
	}

	g := gen.NewGeneratedFile(f.GeneratedFilenamePrefix + companionName + ".scala")
	writeFileHeader(g, f, opts)
	if err := emitCompanion(gen, g, f, opts, companionName); err != nil {
		return err
	}
	return nil
}

func writeFileHeader(g *protogen.GeneratedFile, f *protogen.File, opts *Options) {
	g.P("// Code generated by protoc-gen-scala. DO NOT EDIT.")
	g.P("// source: ", f.Desc.Path())
	g.P()
	g.P("package ", f.ScalaPackage)
	g.P()
	for _, imp := range f.Imports {
		g.P("import ", imp)
	}
	g.P()
}

// emitAllDecls emits every top-level message, enum, extension, service hook
// invocation, and the descriptor companion into a single already-opened
// file (the single_file=true layout).
func emitAllDecls(gen *protogen.Plugin, g *protogen.GeneratedFile, f *protogen.File, opts *Options, companionName string) error {
	for _, m := range f.Messages {
		if err := GenerateMessage(g, m, opts, noCustomTypes, companionName); err != nil {
			return err
		}
		g.P()
	}
	for _, e := range f.Enums {
		GenerateEnum(g, e, opts.JavaConversions, companionName)
		g.P()
	}
	return emitCompanion(gen, g, f, opts, companionName)
}

// emitCompanion emits the file companion object: the embedded descriptor
// bootstrap, top-level extensions, and (when the grpc flag is set) the
// service stub printer's output per service. No TypeMapper is emitted for a
// top-level extension.
func emitCompanion(gen *protogen.Plugin, g *protogen.GeneratedFile, f *protogen.File, opts *Options, companionName string) error {
	g.P("object ", companionName, " {")
	g.In()
	if err := GenerateDescriptorBootstrap(gen, g, f, companionName); err != nil {
		return err
	}
	for _, ext := range f.Extensions {
		if err := GenerateExtension(g, ext, noCustomTypes); err != nil {
			return err
		}
	}
	g.Out()
	g.P("}")
	g.P()

	if opts.Grpc {
		for _, svc := range f.Services {
			stub, err := opts.ServiceStubs.PrintService(svc)
			if err != nil {
				return protogen.DomainErrorf("service %v: %v", svc.Desc.FullName(), err)
			}
			if stub != "" {
				g.P(stub)
			}
		}
	}
	return nil
}

func camelCaseFileName(f *protogen.File) string {
	base := f.GeneratedFilenamePrefix
	if i := lastSlash(base); i >= 0 {
		base = base[i+1:]
	}
	return upperFirst(base)
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if 'a' <= b[0] && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
