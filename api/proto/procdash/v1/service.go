// Package procdashv1 holds the wire types and gRPC bindings of the
// ProcDash daemon service.
package procdashv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "procdash.v1.ProcDash"

const (
	ProcDash_Ping_FullMethodName     = "/procdash.v1.ProcDash/Ping"
	ProcDash_List_FullMethodName     = "/procdash.v1.ProcDash/List"
	ProcDash_Start_FullMethodName    = "/procdash.v1.ProcDash/Start"
	ProcDash_Jobs_FullMethodName     = "/procdash.v1.ProcDash/Jobs"
	ProcDash_Register_FullMethodName = "/procdash.v1.ProcDash/Register"
	ProcDash_Remove_FullMethodName   = "/procdash.v1.ProcDash/Remove"
	ProcDash_Reset_FullMethodName    = "/procdash.v1.ProcDash/Reset"
)

// ProcDashClient is the client API for the ProcDash service.
type ProcDashClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error)
	Start(ctx context.Context, in *StartRequest, opts ...grpc.CallOption) (*StartResponse, error)
	Jobs(ctx context.Context, in *JobsRequest, opts ...grpc.CallOption) (*JobsResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*RemoveResponse, error)
	Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type procDashClient struct {
	cc grpc.ClientConnInterface
}

func NewProcDashClient(cc grpc.ClientConnInterface) ProcDashClient {
	return &procDashClient{cc}
}

// withCodec prepends the service codec so callers may still override it.
func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *procDashClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ProcDash_Ping_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procDashClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.cc.Invoke(ctx, ProcDash_List_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procDashClient) Start(ctx context.Context, in *StartRequest, opts ...grpc.CallOption) (*StartResponse, error) {
	out := new(StartResponse)
	if err := c.cc.Invoke(ctx, ProcDash_Start_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procDashClient) Jobs(ctx context.Context, in *JobsRequest, opts ...grpc.CallOption) (*JobsResponse, error) {
	out := new(JobsResponse)
	if err := c.cc.Invoke(ctx, ProcDash_Jobs_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procDashClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.cc.Invoke(ctx, ProcDash_Register_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procDashClient) Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*RemoveResponse, error) {
	out := new(RemoveResponse)
	if err := c.cc.Invoke(ctx, ProcDash_Remove_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procDashClient) Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, ProcDash_Reset_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcDashServer is the server API for the ProcDash service.
type ProcDashServer interface {
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	List(context.Context, *ListRequest) (*ListResponse, error)
	Start(context.Context, *StartRequest) (*StartResponse, error)
	Jobs(context.Context, *JobsRequest) (*JobsResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Remove(context.Context, *RemoveRequest) (*RemoveResponse, error)
	Reset(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// UnimplementedProcDashServer can be embedded to have forward compatible implementations.
type UnimplementedProcDashServer struct{}

func (UnimplementedProcDashServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedProcDashServer) List(context.Context, *ListRequest) (*ListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedProcDashServer) Start(context.Context, *StartRequest) (*StartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Start not implemented")
}
func (UnimplementedProcDashServer) Jobs(context.Context, *JobsRequest) (*JobsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Jobs not implemented")
}
func (UnimplementedProcDashServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedProcDashServer) Remove(context.Context, *RemoveRequest) (*RemoveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Remove not implemented")
}
func (UnimplementedProcDashServer) Reset(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Reset not implemented")
}

func RegisterProcDashServer(s grpc.ServiceRegistrar, srv ProcDashServer) {
	s.RegisterService(&ProcDash_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](method string, call func(ProcDashServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ProcDashServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ProcDashServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ProcDash_ServiceDesc is the grpc.ServiceDesc for the ProcDash service.
var ProcDash_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProcDashServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(ProcDash_Ping_FullMethodName, ProcDashServer.Ping)},
		{MethodName: "List", Handler: unaryHandler(ProcDash_List_FullMethodName, ProcDashServer.List)},
		{MethodName: "Start", Handler: unaryHandler(ProcDash_Start_FullMethodName, ProcDashServer.Start)},
		{MethodName: "Jobs", Handler: unaryHandler(ProcDash_Jobs_FullMethodName, ProcDashServer.Jobs)},
		{MethodName: "Register", Handler: unaryHandler(ProcDash_Register_FullMethodName, ProcDashServer.Register)},
		{MethodName: "Remove", Handler: unaryHandler(ProcDash_Remove_FullMethodName, ProcDashServer.Remove)},
		{MethodName: "Reset", Handler: unaryHandler(ProcDash_Reset_FullMethodName, ProcDashServer.Reset)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "procdash/v1/procdash.proto",
}
