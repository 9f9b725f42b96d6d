package daemon

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// shortSocketPath keeps the path under the sun_path limit on every platform.
func shortSocketPath(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "pd")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, SocketBaseName)
}

func TestDialSocket(t *testing.T) {
	path := shortSocketPath(t)
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	svc, _, _ := newTestService(t)
	gs := grpc.NewServer()
	procdashv1.RegisterProcDashServer(gs, svc)
	go gs.Serve(ln)
	t.Cleanup(gs.Stop)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, conn, err := DialSocket(ctx, path)
	if err != nil {
		t.Fatalf("DialSocket returned error: %v", err)
	}
	defer conn.Close()

	pong, err := client.Ping(ctx, &emptypb.Empty{})
	if err != nil || pong.GetValue() != PingReply {
		t.Fatalf("unexpected ping %v err=%v", pong, err)
	}
	list, err := client.List(ctx, &procdashv1.ListRequest{FolderId: 2})
	if err != nil || len(list.GetProcs()) != 1 {
		t.Fatalf("unexpected list %+v err=%v", list.GetProcs(), err)
	}
}

func TestDialSocketMissing(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if _, _, err := DialSocket(ctx, shortSocketPath(t)); err == nil {
		t.Fatal("expected error dialing a socket nobody listens on")
	}
	if _, _, err := DialSocket(ctx, ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
