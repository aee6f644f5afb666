package app

import (
	"context"
	"sort"
)

// List resolves the allow policy inputs without auditing anything.
// Useful for checking what a validation run would consider internal
// and approved.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	snap, err := s.buildSnapshot(ctx, req.ManifestPath, req.PackagesDir)
	if err != nil {
		return ListResult{}, err
	}
	internal := make([]string, 0, len(snap.internal.Members))
	for _, name := range snap.internal.Members {
		internal = append(internal, name)
	}
	sort.Strings(internal)
	approved := append([]string(nil), snap.approved.Raw...)
	sort.Strings(approved)
	return ListResult{Internal: internal, Approved: approved}, nil
}
