package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"catalog-viewer/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestClientGet_Statuses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantBody string
		wantErr  error
	}{
		{"ok", http.StatusOK, `{"Type":"Service"}`, nil},
		{"not found", http.StatusNotFound, "", errors.ErrResourceNotFound},
		{"bad request", http.StatusBadRequest, "", errors.ErrResourceNotFound},
		{"server error", http.StatusInternalServerError, "", errors.ErrResourceNotFound},
		{"no content", http.StatusNoContent, "", errors.ErrUnexpectedStatus},
		{"redirect not followed", http.StatusNotModified, "", errors.ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"Type":"Service"}`))
			}))
			defer srv.Close()

			body, err := NewClient(Options{Timeout: time.Second}).Get(context.Background(), srv.URL)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), err.Error())
				assert.Nil(t, body)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestClientGet_NoConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(Options{Timeout: time.Second}).Get(context.Background(), url)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoConnection))

	_, err = NewClient(Options{}).Get(context.Background(), "://broken")
	assert.True(t, errors.Is(err, errors.ErrNoConnection))
}

func TestClientGet_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(Options{Timeout: 50 * time.Millisecond}).Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoConnection))
}

func TestClientGet_SendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewClient(Options{UserAgent: "catalog-viewer/test"}).Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "catalog-viewer/test", got)
}

func TestClientGet_DecodesWindows1251(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String(`{"Title":"Москва"}`)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=windows-1251")
		_, _ = w.Write([]byte(encoded))
	}))
	defer srv.Close()

	body, err := NewClient(Options{}).Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, `{"Title":"Москва"}`, string(body))
}

func TestClientGet_RateLimited(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(Options{RateLimit: 0.001, Burst: 1})

	_, err := client.Get(context.Background(), srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Get(ctx, srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoConnection))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestIsWindows1251(t *testing.T) {
	assert.True(t, isWindows1251("text/plain; charset=Windows-1251"))
	assert.True(t, isWindows1251("application/json; charset=cp1251"))
	assert.False(t, isWindows1251("application/json; charset=utf-8"))
	assert.False(t, isWindows1251("application/json"))
	assert.False(t, isWindows1251(""))
	assert.False(t, isWindows1251(";;;"))
}

func TestClientGet_BodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer srv.Close()

	_, err := NewClient(Options{MaxBody: 63}).Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidDataFormat))
	assert.Contains(t, err.Error(), "exceeds 63 bytes")

	body, err := NewClient(Options{MaxBody: 64}).Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, body, 64)
}

func TestClientGet_BodyLimitCountsWireBytes(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String("Москва")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=windows-1251")
		_, _ = w.Write([]byte(encoded))
	}))
	defer srv.Close()

	body, err := NewClient(Options{MaxBody: int64(len(encoded))}).Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Москва", string(body))
}
