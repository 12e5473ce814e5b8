package auth

import (
	"context"
	"strconv"

	"estately/internal/cache"
)

const denyListKeyPrefix = "denylist:user:"

// DenyListInterface defines the operations for the deactivated-user deny list.
type DenyListInterface interface {
	Deny(ctx context.Context, userID uint) error
	Allow(ctx context.Context, userID uint) error
	IsDenied(ctx context.Context, userID uint) bool
}

// DenyList records deactivated users in Redis so their live tokens are
// rejected before expiry. Entries carry the token lifetime as TTL; after
// that, every previously issued token has expired on its own.
type DenyList struct {
	cache *cache.Client
}

var _ DenyListInterface = (*DenyList)(nil)

// NewDenyList creates a deny list backed by the given cache client.
func NewDenyList(cache *cache.Client) *DenyList {
	return &DenyList{cache: cache}
}

// Deny marks a user id as deactivated for the token lifetime.
func (d *DenyList) Deny(ctx context.Context, userID uint) error {
	return d.cache.Set(ctx, denyListKey(userID), []byte("1"), TokenExpiry)
}

// Allow clears a user id from the deny list.
func (d *DenyList) Allow(ctx context.Context, userID uint) error {
	return d.cache.Delete(ctx, denyListKey(userID))
}

// IsDenied reports whether a user id is on the deny list. Redis being
// unreachable reads as not denied (fail safe).
func (d *DenyList) IsDenied(ctx context.Context, userID uint) bool {
	data, err := d.cache.Get(ctx, denyListKey(userID))
	if err != nil {
		return false
	}
	return data != nil
}

func denyListKey(userID uint) string {
	return denyListKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}
