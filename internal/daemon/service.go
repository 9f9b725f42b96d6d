package daemon

import (
	"context"
	"errors"
	"log"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/catalog"
	"procdash/internal/jobs"
	"procdash/internal/orchestrator"
	"procdash/internal/process"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// service implements the ProcDash gRPC service.
type service struct {
	procdashv1.UnimplementedProcDashServer

	backend Backend
	// cat is nil when the daemon proxies an orchestrator.
	cat    *catalog.Catalog
	ledger *jobs.Ledger
}

func newService(backend Backend, cat *catalog.Catalog, ledger *jobs.Ledger) *service {
	return &service{backend: backend, cat: cat, ledger: ledger}
}

func (s *service) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(PingReply), nil
}

func (s *service) List(ctx context.Context, req *procdashv1.ListRequest) (*procdashv1.ListResponse, error) {
	folder := process.FolderFilter(req.GetFolderId())
	if folder < 0 {
		return nil, status.Error(codes.InvalidArgument, "folder id must not be negative")
	}
	ps, err := s.backend.Fetch(ctx, folder)
	if err != nil {
		return nil, toStatus(err, "list failed")
	}
	resp := &procdashv1.ListResponse{
		Procs: make([]*procdashv1.Proc, 0, len(ps)),
	}
	for _, p := range ps {
		resp.Procs = append(resp.Procs, ProcToWire(p))
	}
	return resp, nil
}

func (s *service) Start(ctx context.Context, req *procdashv1.StartRequest) (*procdashv1.StartResponse, error) {
	start := process.StartRequest{Key: req.GetKey(), FolderID: int(req.GetFolderId())}
	if err := start.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	job, err := s.ledger.Record(ctx, start.Key, start.FolderID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "record job: %v", err)
	}
	dispatchErr := s.backend.Start(ctx, start)
	if finished, err := s.ledger.Finish(context.WithoutCancel(ctx), job.ID, dispatchErr); err != nil {
		log.Printf("job %s: update failed: %v", job.ID, err)
	} else {
		job = finished
	}
	if dispatchErr != nil {
		log.Printf("start %s in folder %d failed: %v", start.Key, start.FolderID, dispatchErr)
		return nil, toStatus(dispatchErr, "start failed")
	}
	log.Printf("started %s in folder %d (job %s)", start.Key, start.FolderID, job.ID)
	return &procdashv1.StartResponse{Job: JobToWire(job)}, nil
}

func (s *service) Jobs(ctx context.Context, req *procdashv1.JobsRequest) (*procdashv1.JobsResponse, error) {
	list, err := s.ledger.List(ctx, jobs.Filter{ProcessKey: req.GetProcessKey(), Limit: int(req.GetLimit())})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}
	resp := &procdashv1.JobsResponse{Jobs: make([]*procdashv1.Job, 0, len(list))}
	for _, j := range list {
		resp.Jobs = append(resp.Jobs, JobToWire(j))
	}
	return resp, nil
}

func (s *service) Register(ctx context.Context, req *procdashv1.RegisterRequest) (*procdashv1.RegisterResponse, error) {
	if s.cat == nil {
		return nil, status.Error(codes.FailedPrecondition, "daemon is proxying an orchestrator; the local catalog is read-only")
	}
	if req.GetProc() == nil {
		return nil, status.Error(codes.InvalidArgument, "process is required")
	}
	id, err := s.cat.Add(ProcFromWire(req.GetProc()))
	if err != nil {
		return &procdashv1.RegisterResponse{Id: id}, toStatus(err, "register failed")
	}
	return &procdashv1.RegisterResponse{Id: id}, nil
}

func (s *service) Remove(ctx context.Context, req *procdashv1.RemoveRequest) (*procdashv1.RemoveResponse, error) {
	if s.cat == nil {
		return nil, status.Error(codes.FailedPrecondition, "daemon is proxying an orchestrator; the local catalog is read-only")
	}
	if req.GetKey() == "" {
		return nil, status.Error(codes.InvalidArgument, "key must be provided")
	}
	if err := s.cat.Remove(req.GetKey()); err != nil {
		return nil, toStatus(err, "remove failed")
	}
	return &procdashv1.RemoveResponse{}, nil
}

func (s *service) Reset(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if s.cat != nil {
		s.cat.Reset()
	}
	if err := s.ledger.Purge(ctx); err != nil {
		return nil, status.Errorf(codes.Internal, "reset jobs: %v", err)
	}
	log.Printf("catalog and job ledger reset")
	return &emptypb.Empty{}, nil
}

// toStatus maps domain errors onto gRPC codes.
func toStatus(err error, msg string) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	var apiErr *orchestrator.APIError
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s: %v", msg, err)
	case errors.Is(err, catalog.ErrExists):
		return status.Errorf(codes.AlreadyExists, "%s: %v", msg, err)
	case errors.Is(err, catalog.ErrInvalid):
		return status.Errorf(codes.InvalidArgument, "%s: %v", msg, err)
	case errors.As(err, &apiErr):
		if apiErr.NotFound() {
			return status.Errorf(codes.NotFound, "%s: %v", msg, err)
		}
		return status.Errorf(codes.Unavailable, "%s: %v", msg, err)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s: %v", msg, err)
	default:
		return status.Errorf(codes.Internal, "%s: %v", msg, err)
	}
}
