package notes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type mapRepo struct {
	mu    sync.Mutex
	items map[string][]Note
}

func newMapRepo() *mapRepo { return &mapRepo{items: map[string][]Note{}} }

func (r *mapRepo) Load(_ context.Context, u, p string) ([]Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Note{}, r.items[u+"/"+p]...), nil
}

func (r *mapRepo) Save(_ context.Context, u, p string, items []Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[u+"/"+p] = append([]Note(nil), items...)
	return nil
}

func TestCreateListOrder(t *testing.T) {
	svc := NewService(newMapRepo())
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	first, err := svc.Create(ctx, "u", "p", Input{Title: "vet", Content: "checkup"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, _ := svc.Create(ctx, "u", "p", Input{Content: "  only content  "})

	items, err := svc.List(ctx, "u", "p")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("items = %+v", items)
	}
	if items[0].Content != "only content" {
		t.Fatalf("content not trimmed: %q", items[0].Content)
	}
}

func TestCreate_RequiresTitleOrContent(t *testing.T) {
	svc := NewService(newMapRepo())
	if _, err := svc.Create(context.Background(), "u", "p", Input{Title: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "", "p", Input{Title: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_KeepsDate(t *testing.T) {
	svc := NewService(newMapRepo())
	ctx := context.Background()
	n, _ := svc.Create(ctx, "u", "p", Input{Title: "a"})

	svc.now = func() time.Time { return n.Date.Add(time.Hour) }
	up, err := svc.Update(ctx, "u", "p", n.ID, Input{Title: "b", Content: "c"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !up.Date.Equal(n.Date) || up.Title != "b" || up.Content != "c" {
		t.Fatalf("up = %+v", up)
	}

	if _, err := svc.Update(ctx, "u", "p", "missing", Input{Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(newMapRepo())
	ctx := context.Background()
	n, _ := svc.Create(ctx, "u", "p", Input{Title: "a"})
	_, _ = svc.Create(ctx, "u", "p", Input{Title: "b"})

	if err := svc.Delete(ctx, "u", "p", n.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	items, _ := svc.List(ctx, "u", "p")
	if len(items) != 1 || items[0].Title != "b" {
		t.Fatalf("items = %+v", items)
	}
	if err := svc.Delete(ctx, "u", "p", n.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreate_ConcurrentWritersDoNotLoseNotes(t *testing.T) {
	svc := NewService(newMapRepo())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Create(ctx, "u", "p", Input{Title: "n"})
		}()
	}
	wg.Wait()

	items, _ := svc.List(ctx, "u", "p")
	if len(items) != 20 {
		t.Fatalf("len = %d, want 20", len(items))
	}
}
