package cmd

import (
	"context"
	"net"
	"strings"
	"testing"

	authclient "github.com/vibast-solutions/lib-go-auth/client"
	authmiddleware "github.com/vibast-solutions/lib-go-auth/middleware"
	authlibservice "github.com/vibast-solutions/lib-go-auth/service"
	authpb "github.com/vibast-solutions/ms-go-auth/app/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	testServiceName       = "landing-service"
	testCallerAPIKey      = "landing-caller-key"
	testNoAccessAPIKey    = "landing-no-access-key"
	testAuthServiceCaller = "landing-gateway"
)

type landingAuthGRPCServer struct {
	authpb.UnimplementedAuthServiceServer
}

func (s *landingAuthGRPCServer) ValidateInternalAccess(_ context.Context, req *authpb.ValidateInternalAccessRequest) (*authpb.ValidateInternalAccessResponse, error) {
	switch strings.TrimSpace(req.GetApiKey()) {
	case testCallerAPIKey:
		return &authpb.ValidateInternalAccessResponse{
			ServiceName:   testAuthServiceCaller,
			AllowedAccess: []string{testServiceName},
		}, nil
	case testNoAccessAPIKey:
		return &authpb.ValidateInternalAccessResponse{
			ServiceName:   testAuthServiceCaller,
			AllowedAccess: []string{"profile-service"},
		}, nil
	default:
		return nil, status.Error(codes.Unauthenticated, "invalid api key")
	}
}

type testInternalAuth struct {
	echo *authmiddleware.EchoInternalAuthMiddleware
	grpc *authmiddleware.GRPCInternalAuthMiddleware
}

// newTestInternalAuth runs an in-process auth service and builds the same
// middleware chain runServe uses against it.
func newTestInternalAuth(t *testing.T) testInternalAuth {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen for auth mock: %v", err)
	}

	srv := grpc.NewServer()
	authpb.RegisterAuthServiceServer(srv, &landingAuthGRPCServer{})
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	client, err := authclient.NewGRPCClientFromAddr(context.Background(), lis.Addr().String())
	if err != nil {
		t.Fatalf("create auth client: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	internalAuthService := authlibservice.NewInternalAuthService(client)
	return testInternalAuth{
		echo: authmiddleware.NewEchoInternalAuthMiddleware(internalAuthService),
		grpc: authmiddleware.NewGRPCInternalAuthMiddleware(internalAuthService),
	}
}
