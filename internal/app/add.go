package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/daemon"
	"procdash/internal/process"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AddParams configures catalog registration.
type AddParams struct {
	Process process.Process
	Timeout time.Duration
}

// AddResult reports the daemon response.
type AddResult struct {
	ID             int64
	AlreadyExists  bool
	ExistingReason string
}

// Add registers a process in the daemon's local catalog.
func (a *App) Add(ctx context.Context, params AddParams) (AddResult, error) {
	var result AddResult

	p := params.Process
	p.Key = strings.TrimSpace(p.Key)
	p.Name = strings.TrimSpace(p.Name)
	if p.Key == "" {
		return result, errors.New("process key must not be empty")
	}
	if p.FolderID < 0 {
		return result, fmt.Errorf("invalid folder %d", p.FolderID)
	}

	err := a.withClient(ctx, params.Timeout, func(ctx context.Context, client procdashv1.ProcDashClient) error {
		resp, err := client.Register(ctx, &procdashv1.RegisterRequest{Proc: daemon.ProcToWire(p)})
		if err != nil {
			if st, ok := status.FromError(err); ok && st.Code() == codes.AlreadyExists {
				result.AlreadyExists = true
				result.ExistingReason = st.Message()
				return nil
			}
			return fmt.Errorf("daemon register RPC failed: %w", err)
		}
		result.ID = resp.GetId()
		return nil
	})
	return result, err
}
