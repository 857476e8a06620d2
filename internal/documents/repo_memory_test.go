package documents

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoRoundTrip(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	doc := Document{
		ID:        "doc-1",
		UserID:    "u1",
		FileName:  "notes.txt",
		Text:      "The sky is blue.",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, doc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "u1", "doc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FileName != doc.FileName || got.Text != doc.Text {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestMemoryRepoGetForeignUser(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, Document{ID: "doc-1", UserID: "u1", FileName: "a.txt", Text: "x", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.GetByID(ctx, "u2", "doc-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		doc := Document{
			ID:        id,
			UserID:    "u1",
			FileName:  id + ".txt",
			Text:      "x",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, doc); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	docs, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for i, want := range []string{"new", "mid", "old"} {
		if docs[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, docs[i].ID)
		}
	}
}

func TestMemoryRepoDeleteIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, Document{ID: "doc-1", UserID: "u1", FileName: "a.txt", Text: "x", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, "u1", "doc-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "u1", "doc-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "u1", "doc-1"); err != nil {
		t.Fatalf("second Delete must be a no-op, got %v", err)
	}
}
