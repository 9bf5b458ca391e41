package grpc

import (
	"context"
	"net"
	"strings"
	"testing"

	"github.com/vibast-solutions/ms-go-landing/app/landing"
	"github.com/vibast-solutions/ms-go-landing/app/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

func newLandingServiceForTest(t *testing.T) *service.LandingService {
	t.Helper()
	svc, err := service.NewLandingService(landing.MustNewRenderer())
	if err != nil {
		t.Fatalf("create landing service: %v", err)
	}
	return svc
}

func startBufServer(t *testing.T, svc *service.LandingService) *LandingServiceClient {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RecoveryInterceptor(),
		RequestIDInterceptor(),
		LoggingInterceptor("landing-test"),
	))
	RegisterLandingServiceServer(srv, NewServer(svc))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return NewLandingServiceClient(conn)
}

func TestServerGetLandingPage(t *testing.T) {
	srv := NewServer(newLandingServiceForTest(t))

	resp, err := srv.GetLandingPage(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := resp.GetFields()["title"].GetStringValue(); got != "Diffium To‑Do" {
		t.Fatalf("unexpected title: %q", got)
	}
	if got := len(resp.GetFields()["plans"].GetListValue().GetValues()); got != 3 {
		t.Fatalf("expected 3 plans, got %d", got)
	}
}

func TestServerRenderLandingPage(t *testing.T) {
	svc := newLandingServiceForTest(t)
	srv := NewServer(svc)

	resp, err := srv.RenderLandingPage(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.GetValue() != string(svc.HTML()) {
		t.Fatal("rendered document differs from service HTML")
	}
}

func TestLandingServiceOverBufconn(t *testing.T) {
	client := startBufServer(t, newLandingServiceForTest(t))
	ctx := metadata.AppendToOutgoingContext(context.Background(), requestIDHeader, "grpc-e2e-1")

	var header metadata.MD
	page, err := client.GetLandingPage(ctx, grpc.Header(&header))
	if err != nil {
		t.Fatalf("GetLandingPage failed: %v", err)
	}
	if got := page.GetFields()["sample_heading"].GetStringValue(); got != "Sample" {
		t.Fatalf("unexpected sample heading: %q", got)
	}
	if got := header.Get(requestIDHeader); len(got) == 0 || got[0] != "grpc-e2e-1" {
		t.Fatalf("expected echoed request id, got %v", got)
	}

	doc, err := client.RenderLandingPage(context.Background())
	if err != nil {
		t.Fatalf("RenderLandingPage failed: %v", err)
	}
	for _, want := range []string{"<h1", "Diffium To‑Do", "Persist in localStorage"} {
		if !strings.Contains(doc.GetValue(), want) {
			t.Fatalf("expected document to contain %q", want)
		}
	}
}
