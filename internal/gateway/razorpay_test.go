package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

func TestRazorpayClient_CreateOrder(t *testing.T) {
	var gotBody orderRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "test_key", user)
		assert.Equal(t, "test_secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(orderResponse{ID: "order_abc"})
	}))
	defer srv.Close()

	client := NewRazorpayClient("test_key", "test_secret", srv.URL)

	orderID, err := client.CreateOrder(context.Background(), 1500.50, "INR", map[string]string{"event_id": "e1"})

	require.NoError(t, err)
	assert.Equal(t, "order_abc", orderID)
	assert.Equal(t, int64(150050), gotBody.Amount)
	assert.Equal(t, "INR", gotBody.Currency)
	assert.Equal(t, "e1", gotBody.Notes["event_id"])
}

func TestRazorpayClient_CreateOrder_MinimumAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body orderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// anything below one rupee is bumped to the floor
		assert.Equal(t, int64(100), body.Amount)
		json.NewEncoder(w).Encode(orderResponse{ID: "order_min"})
	}))
	defer srv.Close()

	client := NewRazorpayClient("k", "s", srv.URL)

	_, err := client.CreateOrder(context.Background(), 0.25, "INR", nil)
	require.NoError(t, err)
}

func TestRazorpayClient_CreateOrder_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(orderResponse{ID: "order_late"})
	}))
	defer srv.Close()

	client := NewRazorpayClient("k", "s", srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.CreateOrder(ctx, 10, "INR", nil)

	assert.ErrorIs(t, err, domain.ErrGatewayTimeout)
}

func TestRazorpayClient_CreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewRazorpayClient("k", "s", srv.URL)

	_, err := client.CreateOrder(context.Background(), 10, "INR", nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrGatewayTimeout)
}

func TestRazorpayClient_VerifySignature(t *testing.T) {
	client := NewRazorpayClient("test_key", "test_secret", "")

	// hmac-sha256("order_abc|pay_xyz", "test_secret")
	valid := "a734976b4a9aa4403181acd25d87b09ad8cb31f7d73be91e2bb9eb5c517ca319"

	assert.True(t, client.VerifySignature("pay_xyz", "order_abc", valid))
	assert.False(t, client.VerifySignature("pay_xyz", "order_abc", "deadbeef"))
	assert.False(t, client.VerifySignature("pay_other", "order_abc", valid))
}
