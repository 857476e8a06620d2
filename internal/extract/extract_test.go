package extract

import (
	"context"
	"errors"
	"testing"
)

func TestTextTxtRoundTrip(t *testing.T) {
	payload := []byte("The sky is blue.\nGrass is green.")

	text, err := Text(context.Background(), payload, "notes.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if text != string(payload) {
		t.Fatalf("expected text to equal UTF-8 decoding of payload, got %q", text)
	}
}

func TestTextTxtEmptyFile(t *testing.T) {
	text, err := Text(context.Background(), nil, "empty.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestTextTxtInvalidUTF8(t *testing.T) {
	_, err := Text(context.Background(), []byte{0xff, 0xfe, 0xfd}, "broken.txt")
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestTextUnsupportedSuffix(t *testing.T) {
	for _, name := range []string{"report.docx", "archive.zip", "noext", "notes.TXT", "slides.PDF"} {
		_, err := Text(context.Background(), []byte("content"), name)
		if !errors.Is(err, ErrUnsupportedType) {
			t.Fatalf("%s: expected ErrUnsupportedType, got %v", name, err)
		}
	}
}

func TestTextPdfGarbageRejected(t *testing.T) {
	_, err := Text(context.Background(), []byte("definitely not a pdf"), "report.pdf")
	if err == nil {
		t.Fatal("expected error for garbage pdf bytes")
	}
	if errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("garbage pdf should fail parsing, not dispatch: %v", err)
	}
}

func TestTextCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Text(ctx, []byte("hello"), "notes.txt")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
