package genscala

import "github.com/scalapb-go/protoc-gen-scala/protogen"

// ServiceStubPrinter is the external collaborator spec.md §6 describes but
// places out of scope: "a service stub emitter (given a service
// descriptor, returns a source string)". This engine provides the seam --
// a concrete, testable invocation point for the `grpc` parameter flag --
// without implementing RPC stub generation itself (SPEC_FULL.md §11.5).
type ServiceStubPrinter interface {
	// PrintService returns the source text for one service's RPC stub, or
	// an error if the service cannot be rendered.
	PrintService(svc *protogen.Service) (string, error)
}

// NoopServiceStubPrinter is the default ServiceStubPrinter: it renders
// nothing. It lets internal/genscala/driver.go exercise the `grpc` flag's
// invocation point in tests without depending on a real stub emitter.
type NoopServiceStubPrinter struct{}

func (NoopServiceStubPrinter) PrintService(svc *protogen.Service) (string, error) {
	return "", nil
}
