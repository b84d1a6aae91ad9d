package storage

import (
	"strings"
	"testing"

	"github.com/itabaza/hms-api/internal/config"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey(12, "Lab Report.PDF")

	if !strings.HasPrefix(key, "documents/12/") {
		t.Errorf("key = %q, want documents/12/ prefix", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("key = %q, extension should be lowercased and kept", key)
	}

	other := ObjectKey(12, "Lab Report.PDF")
	if key == other {
		t.Error("two uploads of the same file must not collide")
	}
}

func TestObjectKey_NoExtension(t *testing.T) {
	key := ObjectKey(3, "scan")
	if strings.Contains(key, ".") {
		t.Errorf("key = %q, no extension expected", key)
	}
}

func TestURL_DefaultAndPublic(t *testing.T) {
	s := NewS3Storage(config.S3Config{Region: "us-east-1", Bucket: "itabaza-documents"})
	got := s.URL("documents/1/abc.pdf")
	want := "https://itabaza-documents.s3.us-east-1.amazonaws.com/documents/1/abc.pdf"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}

	s = NewS3Storage(config.S3Config{PublicURL: "https://cdn.example.com/"})
	got = s.URL("documents/1/abc.pdf")
	if got != "https://cdn.example.com/documents/1/abc.pdf" {
		t.Errorf("URL = %q", got)
	}
}

func TestIsImageMime(t *testing.T) {
	for _, mime := range []string{"image/jpeg", "image/png", "IMAGE/JPEG"} {
		if !IsImageMime(mime) {
			t.Errorf("IsImageMime(%q) = false", mime)
		}
	}
	for _, mime := range []string{"application/pdf", "image/gif", "text/plain", ""} {
		if IsImageMime(mime) {
			t.Errorf("IsImageMime(%q) = true", mime)
		}
	}
}

func TestEncodeWebP_RejectsGarbage(t *testing.T) {
	if _, err := EncodeWebP([]byte("not an image")); err == nil {
		t.Error("expected a decode error")
	}
}
