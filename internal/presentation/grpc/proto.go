package grpc

// proto.go defines the gRPC server interface derived from loc/decision/v1/decision.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/sindhuatluri/LOC/api/gen/go/loc/decision/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DecisionServiceServer is the server API for DecisionService.
type DecisionServiceServer interface {
	DecideApplication(context.Context, *DecideApplicationRequest) (*DecideApplicationResponse, error)
	GetDecision(context.Context, *GetDecisionRequest) (*GetDecisionResponse, error)
	ListDecisions(context.Context, *ListDecisionsRequest) (*ListDecisionsResponse, error)
	mustEmbedUnimplementedDecisionServiceServer()
}

// UnimplementedDecisionServiceServer provides forward-compatible default implementations.
type UnimplementedDecisionServiceServer struct{}

func (UnimplementedDecisionServiceServer) DecideApplication(context.Context, *DecideApplicationRequest) (*DecideApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecideApplication not implemented")
}
func (UnimplementedDecisionServiceServer) GetDecision(context.Context, *GetDecisionRequest) (*GetDecisionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDecision not implemented")
}
func (UnimplementedDecisionServiceServer) ListDecisions(context.Context, *ListDecisionsRequest) (*ListDecisionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDecisions not implemented")
}
func (UnimplementedDecisionServiceServer) mustEmbedUnimplementedDecisionServiceServer() {}

// RegisterDecisionServiceServer registers the DecisionServiceServer with the gRPC server.
func RegisterDecisionServiceServer(s *grpclib.Server, srv DecisionServiceServer) {
	s.RegisterService(&_DecisionService_serviceDesc, srv)
}

var _DecisionService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "loc.decision.v1.DecisionService",
	HandlerType: (*DecisionServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "DecideApplication", Handler: _DecisionService_DecideApplication_Handler},
		{MethodName: "GetDecision", Handler: _DecisionService_GetDecision_Handler},
		{MethodName: "ListDecisions", Handler: _DecisionService_ListDecisions_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _DecisionService_DecideApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(DecideApplicationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).DecideApplication(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loc.decision.v1.DecisionService/DecideApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DecisionServiceServer).DecideApplication(ctx, req.(*DecideApplicationRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _DecisionService_GetDecision_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetDecisionRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).GetDecision(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loc.decision.v1.DecisionService/GetDecision",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DecisionServiceServer).GetDecision(ctx, req.(*GetDecisionRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _DecisionService_ListDecisions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ListDecisionsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).ListDecisions(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loc.decision.v1.DecisionService/ListDecisions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DecisionServiceServer).ListDecisions(ctx, req.(*ListDecisionsRequest))
	}
	return interceptor(ctx, req, info, handler)
}
