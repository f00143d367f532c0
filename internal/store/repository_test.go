package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
)

func newTestRepo() (*Repository, *MemoryStore, *bytes.Buffer) {
	var buf bytes.Buffer
	s := NewMemoryStore()
	return NewRepository(s, log.New(&buf)), s, &buf
}

func TestBalloonsRoundTrip(t *testing.T) {
	repo, _, _ := newTestRepo()
	ctx := context.Background()

	bs := []core.Balloon{
		{ID: "b1", Phrase: core.Phrase{ID: "phrase-1", Text: "hi", OriginalIndex: 0}, X: 1, Y: 2, Width: 120, Height: 40},
		{ID: "b2", Phrase: core.Phrase{ID: "phrase-5", Text: "there", OriginalIndex: 4}, X: 300, Y: 20, Width: 120, Height: 40},
	}
	if err := repo.SaveBalloons(ctx, "u1", bs); err != nil {
		t.Fatal(err)
	}
	got, err := repo.LoadBalloons(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != bs[0] || got[1] != bs[1] {
		t.Errorf("LoadBalloons = %+v", got)
	}

	other, err := repo.LoadBalloons(ctx, "u2")
	if err != nil || other != nil {
		t.Errorf("other user = %v, %v", other, err)
	}
}

func TestSaveEmptyBalloons(t *testing.T) {
	repo, s, _ := newTestRepo()
	ctx := context.Background()
	if err := repo.SaveBalloons(ctx, "u1", nil); err != nil {
		t.Fatal(err)
	}
	raw, _ := s.Get(ctx, BalloonsKey("u1"))
	if string(raw) != "[]" {
		t.Errorf("stored %s, want []", raw)
	}
}

func TestCorruptEntriesAreDiscarded(t *testing.T) {
	repo, s, logs := newTestRepo()
	ctx := context.Background()

	s.Set(ctx, UserSessionKey, []byte("{not json"))
	s.Set(ctx, BalloonsKey("u1"), []byte(`{"id": 3}`))

	u, err := repo.LoadUser(ctx)
	if err != nil || u != nil {
		t.Errorf("LoadUser = %v, %v; want nil, nil", u, err)
	}
	bs, err := repo.LoadBalloons(ctx, "u1")
	if err != nil || bs != nil {
		t.Errorf("LoadBalloons = %v, %v; want nil, nil", bs, err)
	}

	for _, key := range []string{UserSessionKey, BalloonsKey("u1")} {
		if _, err := s.Get(ctx, key); !errors.Is(err, ErrNotFound) {
			t.Errorf("corrupt %s not removed", key)
		}
	}
	if !strings.Contains(logs.String(), "discarding corrupt entry") {
		t.Errorf("no warning logged: %q", logs.String())
	}
}

func TestMistypedBalloonsAreDiscarded(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"string coordinate", `[{"id":"b1","phrase":{"id":"phrase-1"},"x":"oops","y":5,"width":120,"height":40}]`},
		{"second entry bad", `[{"id":"b1","phrase":{"id":"phrase-1"},"x":1,"y":5,"width":120,"height":40},{"id":"b2","width":"wide"}]`},
		{"object not array", `{"id": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, s, logs := newTestRepo()
			ctx := context.Background()
			s.Set(ctx, BalloonsKey("u1"), []byte(tt.raw))

			bs, err := repo.LoadBalloons(ctx, "u1")
			if err != nil {
				t.Fatalf("LoadBalloons: %v", err)
			}
			if len(bs) != 0 {
				t.Errorf("LoadBalloons = %+v, want empty", bs)
			}
			if _, err := s.Get(ctx, BalloonsKey("u1")); !errors.Is(err, ErrNotFound) {
				t.Error("corrupt entry not removed")
			}
			if !strings.Contains(logs.String(), "discarding corrupt entry") {
				t.Errorf("no warning logged: %q", logs.String())
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	repo, _, _ := newTestRepo()
	ctx := context.Background()
	t0 := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	if _, err := repo.SignIn(ctx, "", t0); !errors.Is(err, ErrNoUser) {
		t.Errorf("SignIn without session or email err = %v", err)
	}
	if _, err := repo.SignIn(ctx, "not an email", t0); err == nil {
		t.Error("SignIn accepted an invalid email")
	}

	u, err := repo.SignIn(ctx, "ada@example.com", t0)
	if err != nil {
		t.Fatal(err)
	}
	if u.ID == "" || u.Email != "ada@example.com" || !u.LastLogin.Equal(t0) {
		t.Errorf("new user = %+v", u)
	}

	t1 := t0.Add(time.Hour)
	again, err := repo.SignIn(ctx, "", t1)
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != u.ID || !again.LastLogin.Equal(t1) {
		t.Errorf("resumed user = %+v", again)
	}

	same, _ := repo.SignIn(ctx, "ADA@example.com", t1)
	if same.ID != u.ID {
		t.Error("email comparison should ignore case")
	}

	other, err := repo.SignIn(ctx, "bob@example.com", t1)
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == u.ID {
		t.Error("different email reused the stored user")
	}

	stored, _ := repo.LoadUser(ctx)
	if stored == nil || stored.ID != other.ID {
		t.Errorf("stored user = %+v", stored)
	}

	if err := repo.DeleteUser(ctx); err != nil {
		t.Fatal(err)
	}
	if u, _ := repo.LoadUser(ctx); u != nil {
		t.Error("user survived DeleteUser")
	}
}
