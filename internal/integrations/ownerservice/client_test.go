package ownerservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

func TestClient_SendContactRequest(t *testing.T) {
	var got ContactRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, contactPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", time.Second, logger.NewNop())
	delivered, err := client.SendContactRequest(context.Background(), ContactRequest{OwnerID: "owner-1", ItemID: "1", UserID: 7})

	require.NoError(t, err)
	assert.True(t, delivered)
	assert.Equal(t, ContactRequest{OwnerID: "owner-1", ItemID: "1", UserID: 7}, got)
}

func TestClient_SendContactRequest_Statuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "owner unknown", status: http.StatusNotFound, wantErr: ErrOwnerNotFound},
		{name: "server error with message", status: http.StatusInternalServerError, body: `{"code":500,"message":"boom"}`, wantErr: ErrInvalidResponse},
		{name: "bad request plain text", status: http.StatusBadRequest, body: "bad", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			delivered, err := NewClient(srv.URL, time.Second, logger.NewNop()).
				SendContactRequest(context.Background(), ContactRequest{OwnerID: "owner-1"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, delivered)
		})
	}
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient("", time.Second, logger.NewNop())

	delivered, err := client.SendContactRequest(context.Background(), ContactRequest{OwnerID: "owner-1"})

	assert.False(t, client.Enabled())
	assert.NoError(t, err)
	assert.False(t, delivered)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 200*time.Millisecond, logger.NewNop()).
		SendContactRequest(context.Background(), ContactRequest{OwnerID: "owner-1"})

	assert.ErrorIs(t, err, ErrInternal)
}
