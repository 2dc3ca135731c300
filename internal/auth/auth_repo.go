package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "auth:refresh:"

var ErrSessionNotFound = errors.New("refresh session not found")

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, session RefreshSession, ttl time.Duration) error
	Take(ctx context.Context, id string) (*RefreshSession, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb: rdb}
}

func refreshKey(id string) string { return refreshKeyPrefix + id }

func (r *repository) Save(ctx context.Context, session RefreshSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, refreshKey(session.ID), payload, ttl).Err()
}

// Take reads and deletes the session in one GETDEL so that a refresh token
// can be rotated at most once.
func (r *repository) Take(ctx context.Context, id string) (*RefreshSession, error) {
	val, err := r.rdb.GetDel(ctx, refreshKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var session RefreshSession
	if err := json.Unmarshal(val, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, refreshKey(id)).Err()
}
