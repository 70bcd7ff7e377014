package httputil

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
)

func TestGetSendsBrowserHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	body, err := Get(context.Background(), NewClient(2*time.Second), srv.URL)
	if err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if string(body) != "<html></html>" {
		t.Errorf("body = %q, want the served markup", body)
	}
	if !strings.HasPrefix(gotUA, "Mozilla/5.0") {
		t.Errorf("User-Agent = %q, want a Mozilla/5.0 identity", gotUA)
	}
	if !strings.Contains(gotAccept, "text/html") {
		t.Errorf("Accept = %q, want text/html advertised", gotAccept)
	}
}

func TestGetDecompressesGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte("gzip payload"))
		gz.Close()
	}))
	defer srv.Close()

	body, err := Get(context.Background(), NewClient(2*time.Second), srv.URL)
	if err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if string(body) != "gzip payload" {
		t.Errorf("body = %q, want %q", body, "gzip payload")
	}
}

func TestGetDecompressesBrotli(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		br := brotli.NewWriter(w)
		br.Write([]byte("brotli payload"))
		br.Close()
	}))
	defer srv.Close()

	body, err := Get(context.Background(), NewClient(2*time.Second), srv.URL)
	if err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if string(body) != "brotli payload" {
		t.Errorf("body = %q, want %q", body, "brotli payload")
	}
}

func TestGetRejectsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Get(context.Background(), NewClient(2*time.Second), srv.URL); err == nil {
		t.Fatal("Get() on a 404 expected error, got nil")
	}
}

func TestGetHonoursContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := Get(ctx, NewClient(2*time.Second), srv.URL); err == nil {
		t.Fatal("Get() with expired context expected error, got nil")
	}
}
