package app

import (
	"context"
	"errors"
	"io"
	"testing"

	procdashv1 "procdash/api/proto/procdash/v1"

	"google.golang.org/grpc"
)

type fakeConn struct {
	invoke func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error
}

func (f *fakeConn) Invoke(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
	if f.invoke != nil {
		return f.invoke(ctx, method, args, reply, opts...)
	}
	return nil
}

func (f *fakeConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeConn) Close() error { return nil }

func stubDaemon(t *testing.T, running bool, dial func(context.Context) (procdashv1.ProcDashClient, io.Closer, error)) {
	t.Helper()
	resetDaemonDeps()
	daemonIsRunning = func() bool { return running }
	if dial == nil {
		dial = func(context.Context) (procdashv1.ProcDashClient, io.Closer, error) {
			return nil, nil, errors.New("dial not stubbed")
		}
	}
	dialDaemonClient = dial
	t.Cleanup(resetDaemonDeps)
}

// stubInvoke wires a running daemon whose every RPC goes through invoke.
func stubInvoke(t *testing.T, invoke func(method string, args, reply interface{}) error) {
	t.Helper()
	stubDaemon(t, true, func(context.Context) (procdashv1.ProcDashClient, io.Closer, error) {
		conn := &fakeConn{
			invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
				return invoke(method, args, reply)
			},
		}
		return procdashv1.NewProcDashClient(conn), conn, nil
	})
}

func wireProcs() []*procdashv1.Proc {
	return []*procdashv1.Proc{
		{Id: 1, Name: "Invoice Bot", Key: "inv-1", FolderId: 2},
		{Id: 2, Name: "alpha", Key: "a-2", FolderId: 1},
		{Id: 3, Name: "Orphan", Key: "orph-3"},
	}
}

// stubList answers List with procs filtered by the requested folder.
func stubList(t *testing.T, procs []*procdashv1.Proc, next func(method string, args, reply interface{}) error) {
	t.Helper()
	stubInvoke(t, func(method string, args, reply interface{}) error {
		if method == procdashv1.ProcDash_List_FullMethodName {
			req := args.(*procdashv1.ListRequest)
			resp := reply.(*procdashv1.ListResponse)
			for _, p := range procs {
				folder := p.GetFolderId()
				if folder == 0 {
					folder = 1
				}
				if req.GetFolderId() == 0 || req.GetFolderId() == folder {
					resp.Procs = append(resp.Procs, p)
				}
			}
			return nil
		}
		if next == nil {
			t.Fatalf("unexpected method %s", method)
		}
		return next(method, args, reply)
	})
}
