// Package compiler implements the plugin stdin/stdout framing spec.md §1
// and §6 place out of scope as an external collaborator: reading a
// CodeGeneratorRequest from standard input, invoking the Request Driver,
// and writing a CodeGeneratorResponse to standard output.
package compiler

import (
	"errors"
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/scalapb-go/protoc-gen-scala/protogen"
)

// Run reads a CodeGeneratorRequest from stdin, builds the descriptor graph
// via protogen.New, calls f (the Request Driver's emission entry point),
// and writes the resulting CodeGeneratorResponse to stdout. A framing
// failure (malformed input, an unwritable stdout) is reported to stderr and
// terminates the process with a non-zero exit code; a well-formed request
// that fails to generate code is reported through the response's error
// string instead, with the process still exiting 0 -- this is the protoc
// plugin contract (spec.md §6), carried forward from the teacher's own
// Run/run pair verbatim.
func Run(opts *protogen.Options, f func(*protogen.Plugin) error) {
	if err := run(opts, f); err != nil {
		fmt.Fprintf(os.Stderr, "protoc-gen-scala: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *protogen.Options, f func(*protogen.Plugin) error) error {
	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading input: %v", err)
	}

	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(in, req); err != nil {
		return fmt.Errorf("parsing request: %v", err)
	}

	gen, err := protogen.New(req, opts)
	if err != nil {
		var paramErr *protogen.ParameterError
		var domainErr *protogen.DomainError
		if errors.As(err, &paramErr) || errors.As(err, &domainErr) {
			return writeErrorResponse(err)
		}
		return err
	}

	if err := f(gen); err != nil {
		gen.Error(err)
	}

	resp := gen.Response()
	resp.SupportedFeatures = proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL))

	out, err := proto.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshaling response: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("writing output: %v", err)
	}
	return nil
}

// writeErrorResponse reports a ParameterError or DomainError raised while
// building the descriptor graph -- before any file was marked for
// generation -- through the response's error string (spec.md §7.1), rather
// than as a framing failure: the request was well-formed, only its content
// was rejected.
func writeErrorResponse(cause error) error {
	resp := &pluginpb.CodeGeneratorResponse{
		Error: proto.String(cause.Error()),
	}
	out, err := proto.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshaling error response: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("writing output: %v", err)
	}
	return nil
}
