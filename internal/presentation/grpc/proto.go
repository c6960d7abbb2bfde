package grpc

// proto.go defines the gRPC server interface derived from laxmi/finance/v1/finance.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/Aknathpanchal/laxmi-sub000/api/gen/go/laxmi/finance/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FinanceEngineServer is the server API for FinanceEngine.
// It mirrors the proto-generated interface from laxmi.finance.v1.FinanceEngine.
type FinanceEngineServer interface {
	EvaluateEligibility(context.Context, *EvaluateEligibilityRequest) (*EvaluateEligibilityResponse, error)
	QuotePrepayment(context.Context, *QuotePrepaymentRequest) (*QuotePrepaymentResponse, error)
	AnalyzeSchedule(context.Context, *AnalyzeScheduleRequest) (*AnalyzeScheduleResponse, error)
	ComputeAmortization(context.Context, *ComputeAmortizationRequest) (*ComputeAmortizationResponse, error)
	mustEmbedUnimplementedFinanceEngineServer()
}

// UnimplementedFinanceEngineServer provides forward-compatible default implementations.
type UnimplementedFinanceEngineServer struct{}

func (UnimplementedFinanceEngineServer) EvaluateEligibility(context.Context, *EvaluateEligibilityRequest) (*EvaluateEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateEligibility not implemented")
}
func (UnimplementedFinanceEngineServer) QuotePrepayment(context.Context, *QuotePrepaymentRequest) (*QuotePrepaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuotePrepayment not implemented")
}
func (UnimplementedFinanceEngineServer) AnalyzeSchedule(context.Context, *AnalyzeScheduleRequest) (*AnalyzeScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeSchedule not implemented")
}
func (UnimplementedFinanceEngineServer) ComputeAmortization(context.Context, *ComputeAmortizationRequest) (*ComputeAmortizationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeAmortization not implemented")
}
func (UnimplementedFinanceEngineServer) mustEmbedUnimplementedFinanceEngineServer() {}

// RegisterFinanceEngineServer registers the FinanceEngineServer with the gRPC server.
func RegisterFinanceEngineServer(s *grpclib.Server, srv FinanceEngineServer) {
	s.RegisterService(&_FinanceEngine_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _FinanceEngine_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "laxmi.finance.v1.FinanceEngine",
	HandlerType: (*FinanceEngineServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "EvaluateEligibility", Handler: _FinanceEngine_EvaluateEligibility_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "QuotePrepayment", Handler: _FinanceEngine_QuotePrepayment_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "AnalyzeSchedule", Handler: _FinanceEngine_AnalyzeSchedule_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "ComputeAmortization", Handler: _FinanceEngine_ComputeAmortization_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceEngine_EvaluateEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceEngineServer).EvaluateEligibility(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/laxmi.finance.v1.FinanceEngine/EvaluateEligibility",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceEngineServer).EvaluateEligibility(ctx, req.(*EvaluateEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceEngine_QuotePrepayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuotePrepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceEngineServer).QuotePrepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/laxmi.finance.v1.FinanceEngine/QuotePrepayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceEngineServer).QuotePrepayment(ctx, req.(*QuotePrepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceEngine_AnalyzeSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceEngineServer).AnalyzeSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/laxmi.finance.v1.FinanceEngine/AnalyzeSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceEngineServer).AnalyzeSchedule(ctx, req.(*AnalyzeScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceEngine_ComputeAmortization_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeAmortizationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceEngineServer).ComputeAmortization(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/laxmi.finance.v1.FinanceEngine/ComputeAmortization",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceEngineServer).ComputeAmortization(ctx, req.(*ComputeAmortizationRequest))
	}
	return interceptor(ctx, in, info, handler)
}
