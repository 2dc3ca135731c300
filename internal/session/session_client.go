package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go-sitepass/internal/attendance"
	"go-sitepass/internal/middleware"
	"go-sitepass/internal/worker"

	"github.com/google/uuid"
)

const apiPrefix = "/api/v1"

func call[T any](ctx context.Context, g *Gateway, req Request) (T, []string, error) {
	var out T
	env, err := g.Do(ctx, req)
	if err != nil {
		return out, nil, err
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return out, nil, fmt.Errorf("decode %s: %w", req.Path, err)
		}
	}
	return out, env.Warnings, nil
}

// idempotent gives a mutating call one key for all of its transport retries.
func idempotent() http.Header {
	return http.Header{middleware.HeaderIdempotencyKey: []string{uuid.NewString()}}
}

// EnrollSelf submits a self-service enrollment. It needs no credentials, the
// verification token in req proves the phone.
func (g *Gateway) EnrollSelf(ctx context.Context, req worker.SelfEnrollRequest) (worker.EnrollResponse, error) {
	resp, _, err := call[worker.EnrollResponse](ctx, g, Request{
		Method:    http.MethodPost,
		Path:      apiPrefix + "/enroll/self",
		Body:      req,
		Header:    idempotent(),
		Anonymous: true,
	})
	return resp, err
}

// Invite creates a PENDING worker. Warnings carry non-fatal delivery
// problems such as an undelivered SMS.
func (g *Gateway) Invite(ctx context.Context, req worker.InviteRequest) (worker.InviteResponse, []string, error) {
	return call[worker.InviteResponse](ctx, g, Request{
		Method: http.MethodPost,
		Path:   apiPrefix + "/enroll/invite",
		Body:   req,
		Header: idempotent(),
	})
}

func (g *Gateway) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	resp, _, err := call[attendance.CheckInResponse](ctx, g, Request{
		Method: http.MethodPost,
		Path:   apiPrefix + "/attendance/checkin",
		Header: idempotent(),
	})
	return resp, err
}

func (g *Gateway) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	resp, _, err := call[attendance.CheckOutResponse](ctx, g, Request{
		Method: http.MethodPost,
		Path:   apiPrefix + "/attendance/checkout",
		Header: idempotent(),
	})
	return resp, err
}
