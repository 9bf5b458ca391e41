package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	LandingServiceName              = "landing.LandingService"
	GetLandingPageFullMethodName    = "/" + LandingServiceName + "/GetLandingPage"
	RenderLandingPageFullMethodName = "/" + LandingServiceName + "/RenderLandingPage"
)

// LandingServiceServer is built on well-known protobuf types only, so the
// service needs no generated message code.
type LandingServiceServer interface {
	GetLandingPage(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	RenderLandingPage(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

func RegisterLandingServiceServer(s grpc.ServiceRegistrar, srv LandingServiceServer) {
	s.RegisterService(&LandingServiceDesc, srv)
}

var LandingServiceDesc = grpc.ServiceDesc{
	ServiceName: LandingServiceName,
	HandlerType: (*LandingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetLandingPage",
			Handler:    getLandingPageHandler,
		},
		{
			MethodName: "RenderLandingPage",
			Handler:    renderLandingPageHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "landing.proto",
}

func getLandingPageHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LandingServiceServer).GetLandingPage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetLandingPageFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LandingServiceServer).GetLandingPage(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func renderLandingPageHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LandingServiceServer).RenderLandingPage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RenderLandingPageFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LandingServiceServer).RenderLandingPage(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

type LandingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLandingServiceClient(cc grpc.ClientConnInterface) *LandingServiceClient {
	return &LandingServiceClient{cc: cc}
}

func (c *LandingServiceClient) GetLandingPage(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetLandingPageFullMethodName, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LandingServiceClient) RenderLandingPage(ctx context.Context, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, RenderLandingPageFullMethodName, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
