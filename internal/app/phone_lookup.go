package app

import (
	"context"
	"errors"

	"go-sitepass/internal/verification"
)

// phoneLookup lets the verification service ask the worker registry about a
// phone even though the registry is built after it.
type phoneLookup struct {
	workers verification.PhoneDirectory
}

func (p *phoneLookup) PhoneRegistered(ctx context.Context, phone string) (bool, error) {
	if p.workers == nil {
		return false, errors.New("worker registry is not wired")
	}
	return p.workers.PhoneRegistered(ctx, phone)
}
