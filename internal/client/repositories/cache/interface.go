// Package cache persists the client's session records as key/value rows
// in the local sqlite database. The key set is closed: only the session
// keys declared below are ever written.
package cache

import (
	"context"
)

// Keys under which session records are persisted. The value under KeyUserInfo
// is a JSON-encoded models.User; the value under KeyAccessToken is the raw
// bearer token string.
const (
	KeyUserInfo    = "userInfo"
	KeyAccessToken = "accessToken"
)

// Repository is the strict persistence layer: every storage failure is
// returned to the caller. Fail-soft behavior lives one level up, in
// session.Store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
