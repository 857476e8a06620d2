package documents_test

import (
	"context"
	"errors"
	"testing"

	"docchat-backend/internal/chat"
	"docchat-backend/internal/documents"
	"docchat-backend/internal/extract"
)

func newTestService() (*documents.Service, *chat.MemoryRepo) {
	turns := chat.NewMemoryRepo()
	return &documents.Service{Repo: documents.NewMemoryRepo(), Turns: turns}, turns
}

func TestServiceUploadTxt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "u1", "notes.txt", []byte("The sky is blue."))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("expected generated document ID")
	}

	got, err := svc.Get(ctx, "u1", doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Text != "The sky is blue." {
		t.Fatalf("expected stored text, got %q", got.Text)
	}
}

func TestServiceUploadUnsupportedTypeWritesNothing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upload(ctx, "u1", "report.docx", []byte("content"))
	if !errors.Is(err, extract.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	docs, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents after failed upload, got %d", len(docs))
	}
}

func TestServiceUploadEmptyDocumentWritesNothing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upload(ctx, "u1", "empty.txt", nil)
	if !errors.Is(err, documents.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}

	docs, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents after empty upload, got %d", len(docs))
	}
}

func TestServiceDeleteCascadesTurns(t *testing.T) {
	svc, turns := newTestService()
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "u1", "notes.txt", []byte("The sky is blue."))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if err := turns.Append(ctx, "u1", doc.ID, chat.RoleUser, "Q"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := turns.Append(ctx, "u1", doc.ID, chat.RoleModel, "A"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := svc.Delete(ctx, "u1", doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.Get(ctx, "u1", doc.ID); !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	history, err := turns.ListByDocument(ctx, "u1", doc.ID)
	if err != nil {
		t.Fatalf("ListByDocument: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history after cascade, got %d turns", len(history))
	}
}
