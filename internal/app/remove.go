package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RemoveParams configures rm command semantics.
type RemoveParams struct {
	Keys    []string
	Timeout time.Duration
}

// RemoveResult reports the catalog entries removed.
type RemoveResult struct {
	Removed []string
	Missing []string
}

// Remove deletes catalog entries by key. Unknown keys are reported, not fatal.
func (a *App) Remove(ctx context.Context, params RemoveParams) (RemoveResult, error) {
	var result RemoveResult
	keys := make([]string, 0, len(params.Keys))
	for _, k := range params.Keys {
		k = strings.TrimSpace(k)
		if k == "" {
			return result, errors.New("process keys must not be empty")
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return result, errors.New("provide at least one process key")
	}

	err := a.withClient(ctx, params.Timeout, func(ctx context.Context, client procdashv1.ProcDashClient) error {
		for _, key := range keys {
			if _, err := client.Remove(ctx, &procdashv1.RemoveRequest{Key: key}); err != nil {
				if status.Code(err) == codes.NotFound {
					result.Missing = append(result.Missing, key)
					continue
				}
				return fmt.Errorf("remove %s failed: %w", key, err)
			}
			result.Removed = append(result.Removed, key)
		}
		return nil
	})
	return result, err
}
