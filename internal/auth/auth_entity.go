package auth

import "time"

// RefreshSession is the server side half of an opaque refresh token. It lives
// in redis under refreshKeyPrefix+ID and is deleted when rotated.
type RefreshSession struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"worker_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
