package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestInMemoryStore_Save_Duplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore()
	ds := entity.Dataset{ID: "ds-1", Raw: []byte("a\n1\n")}

	if err := store.Save(ctx, ds); err != nil {
		t.Fatalf("Save() err = %v", err)
	}

	err := store.Save(ctx, ds)
	if err == nil {
		t.Fatal("Save() expected error, got nil")
	}

	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("Save() expected pkgerror.Error, got %T", err)
	}

	if perr.Code() != pkgerror.CodeConflict {
		t.Fatalf("Save() error code = %v, want %v", perr.Code(), pkgerror.CodeConflict)
	}
}

func TestInMemoryStore_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore()
	ds := entity.Dataset{ID: "ds-2", Filename: "p.csv", Raw: []byte("a\n1\n")}

	if err := store.Save(ctx, ds); err != nil {
		t.Fatalf("Save() err = %v", err)
	}

	got, err := store.Get(ctx, ds.ID)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	if got.Filename != "p.csv" || string(got.Raw) != "a\n1\n" {
		t.Fatalf("Get() = %+v, want %+v", got, ds)
	}

	if _, err := store.Get(ctx, "nope"); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("Get() err = %v, want ErrNotFound", err)
	}
}

func TestInMemoryStore_Expiry_And_Sweep(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := &manualClock{now: time.Unix(1_000, 0)}
	store := NewInMemoryStore().WithClock(clock.Now)

	if err := store.Save(ctx, entity.Dataset{ID: "short", ExpiresAt: 1_010}); err != nil {
		t.Fatalf("Save() err = %v", err)
	}
	if err := store.Save(ctx, entity.Dataset{ID: "long", ExpiresAt: 2_000}); err != nil {
		t.Fatalf("Save() err = %v", err)
	}
	if err := store.Save(ctx, entity.Dataset{ID: "forever"}); err != nil {
		t.Fatalf("Save() err = %v", err)
	}

	clock.Advance(10 * time.Second)

	if _, err := store.Get(ctx, "short"); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("Get(short) err = %v, want ErrNotFound", err)
	}
	if store.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 before sweep", store.Len())
	}

	if removed := store.Sweep(ctx); removed != 1 {
		t.Fatalf("Sweep() removed = %d, want 1", removed)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	if _, err := store.Get(ctx, "forever"); err != nil {
		t.Fatalf("Get(forever) err = %v", err)
	}
}

func TestInMemoryStore_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore()

	if err := store.Delete(ctx, "missing"); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("Delete() err = %v, want ErrNotFound", err)
	}

	if err := store.Save(ctx, entity.Dataset{ID: "ds-3"}); err != nil {
		t.Fatalf("Save() err = %v", err)
	}
	if err := store.Delete(ctx, "ds-3"); err != nil {
		t.Fatalf("Delete() err = %v", err)
	}
	if _, err := store.Get(ctx, "ds-3"); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("Get() after delete err = %v, want ErrNotFound", err)
	}
}

func TestInMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('A' + i))
			_ = store.Save(ctx, entity.Dataset{ID: id})
			_, _ = store.Get(ctx, id)
			store.Sweep(ctx)
		}(i)
	}
	wg.Wait()

	if store.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", store.Len())
	}
}
