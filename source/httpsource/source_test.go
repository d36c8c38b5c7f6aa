package httpsource_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/collection-cache/source/httpsource"
)

type student struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
}

func TestSource_GetAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantResult []student
		wantStatus int
		wantDecode bool
	}{
		{
			name:       "json array",
			status:     http.StatusOK,
			body:       `[{"_id":"s1","firstName":"Ada"},{"_id":"s2","firstName":"Grace","extra":true}]`,
			wantResult: []student{{ID: "s1", FirstName: "Ada"}, {ID: "s2", FirstName: "Grace"}},
		},
		{
			name:       "empty array",
			status:     http.StatusOK,
			body:       `[]`,
			wantResult: []student{},
		},
		{
			name:       "null is an empty collection",
			status:     http.StatusOK,
			body:       `null`,
			wantResult: []student{},
		},
		{
			name:       "non-2xx status",
			status:     http.StatusInternalServerError,
			body:       `{"message":"database unavailable"}`,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "not an array",
			status:     http.StatusOK,
			body:       `{"_id":"s1"}`,
			wantDecode: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("unexpected method: %s", r.Method)
				}
				if got := r.Header.Get("Accept"); got != "application/json" {
					t.Errorf("unexpected Accept header: %q", got)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := httpsource.New[student](srv.URL + "/students").GetAll(t.Context())
			switch {
			case tt.wantStatus != 0:
				var statusErr *httpsource.StatusError
				if !errors.As(err, &statusErr) {
					t.Fatalf("expected *StatusError, got: %v", err)
				}
				if statusErr.StatusCode != tt.wantStatus {
					t.Errorf("unexpected status: %d", statusErr.StatusCode)
				}
				if !strings.Contains(statusErr.Error(), "database unavailable") {
					t.Errorf("error must include the body: %v", statusErr)
				}
			case tt.wantDecode:
				if err == nil || !strings.Contains(err.Error(), "decoding") {
					t.Fatalf("expected decoding error, got: %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if diff := cmp.Diff(tt.wantResult, got); diff != "" {
					t.Errorf("result mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestSource_Headers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		if got := r.Header.Values("X-Team"); !cmp.Equal([]string{"a", "b"}, got) {
			t.Errorf("unexpected X-Team header: %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	src := httpsource.New[student](srv.URL,
		httpsource.WithHeader("Authorization", "Bearer token"),
		httpsource.WithHeader("X-Team", "a"),
		httpsource.WithHeader("X-Team", "b"),
	)
	if _, err := src.GetAll(t.Context()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSource_ClientTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	src := httpsource.New[student](srv.URL, httpsource.WithClient(&http.Client{Timeout: 50 * time.Millisecond}))
	if _, err := src.GetAll(t.Context()); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestSource_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if _, err := httpsource.New[student](srv.URL).GetAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}
