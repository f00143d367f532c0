package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
)

// UserSessionKey holds the signed-in user.
const UserSessionKey = "user-session"

// BalloonsKey returns the key holding a user's placed balloons.
func BalloonsKey(userID string) string {
	return "placed-items-" + userID
}

// ErrNoUser is returned by SignIn when nobody is signed in and no email was
// given.
var ErrNoUser = errors.New("no signed-in user")

// Repository reads and writes canvas state. Corrupt entries are deleted
// and reported as absent.
type Repository struct {
	store  Store
	logger *log.Logger
}

// NewRepository wraps a store.
func NewRepository(s Store, logger *log.Logger) *Repository {
	return &Repository{store: s, logger: logger}
}

// LoadUser returns the signed-in user, or nil if there is none.
func (r *Repository) LoadUser(ctx context.Context) (*core.User, error) {
	u, found, err := load[core.User](ctx, r, UserSessionKey)
	if err != nil || !found {
		return nil, err
	}
	if u.ID == "" {
		r.discard(ctx, UserSessionKey, errors.New("missing user id"))
		return nil, nil
	}
	return &u, nil
}

// SaveUser stores the signed-in user.
func (r *Repository) SaveUser(ctx context.Context, u core.User) error {
	return r.save(ctx, UserSessionKey, u)
}

// DeleteUser signs the user out. Their balloons are kept.
func (r *Repository) DeleteUser(ctx context.Context) error {
	return r.store.Delete(ctx, UserSessionKey)
}

// SignIn resumes the stored session, refreshing its login time, unless
// email names a different user. A new user gets a fresh ID.
func (r *Repository) SignIn(ctx context.Context, email string, now time.Time) (core.User, error) {
	email = strings.TrimSpace(email)
	current, err := r.LoadUser(ctx)
	if err != nil {
		return core.User{}, err
	}

	var u core.User
	switch {
	case current != nil && (email == "" || strings.EqualFold(email, current.Email)):
		u = *current
	case email == "":
		return core.User{}, ErrNoUser
	default:
		addr, err := mail.ParseAddress(email)
		if err != nil {
			return core.User{}, fmt.Errorf("invalid email %q: %w", email, err)
		}
		u = core.User{ID: uuid.NewString(), Email: addr.Address}
	}

	u.LastLogin = now
	if err := r.SaveUser(ctx, u); err != nil {
		return core.User{}, err
	}
	return u, nil
}

// LoadBalloons returns a user's placed balloons in paint order.
func (r *Repository) LoadBalloons(ctx context.Context, userID string) ([]core.Balloon, error) {
	bs, found, err := load[[]core.Balloon](ctx, r, BalloonsKey(userID))
	if err != nil || !found {
		return nil, err
	}
	return bs, nil
}

// SaveBalloons rewrites a user's balloon list in full.
func (r *Repository) SaveBalloons(ctx context.Context, userID string, bs []core.Balloon) error {
	if bs == nil {
		bs = []core.Balloon{}
	}
	return r.save(ctx, BalloonsKey(userID), bs)
}

// load decodes the value at key. A value that fails to decode is discarded
// and reported as not found, with nothing partially decoded returned.
func load[T any](ctx context.Context, r *Repository, key string) (T, bool, error) {
	var zero T
	data, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		r.discard(ctx, key, err)
		return zero, false, nil
	}
	return v, true, nil
}

func (r *Repository) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.store.Set(ctx, key, data)
}

// discard drops a corrupt entry so the caller can fall back to defaults.
func (r *Repository) discard(ctx context.Context, key string, cause error) {
	r.logger.Warn("discarding corrupt entry", "key", key, "err", cause)
	if err := r.store.Delete(ctx, key); err != nil {
		r.logger.Warn("failed to remove corrupt entry", "key", key, "err", err)
	}
}
