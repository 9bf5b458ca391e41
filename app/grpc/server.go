package grpc

import (
	"context"

	"github.com/vibast-solutions/ms-go-landing/app/entity"
	"github.com/vibast-solutions/ms-go-landing/app/mapper"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type landingService interface {
	Page() entity.Page
	HTML() []byte
}

type Server struct {
	landingService landingService
}

func NewServer(landingService landingService) *Server {
	return &Server{landingService: landingService}
}

func (s *Server) GetLandingPage(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	resp, err := mapper.PageToProto(s.landingService.Page())
	if err != nil {
		loggerWithContext(ctx).WithError(err).Error("Get landing page failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return resp, nil
}

func (s *Server) RenderLandingPage(_ context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(string(s.landingService.HTML())), nil
}
