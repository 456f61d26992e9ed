// Package gateway implements the Razorpay payment provider client used to
// gate event publication on a settled payment.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

const defaultBaseURL = "https://api.razorpay.com"

type RazorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayClient(keyID, keySecret, baseURL string) *RazorpayClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		client:    &http.Client{},
	}
}

type orderRequest struct {
	Amount   int64             `json:"amount"` // smallest currency unit
	Currency string            `json:"currency"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID string `json:"id"`
}

// CreateOrder registers the amount with Razorpay and returns the order id.
// The caller controls the deadline through ctx; a deadline hit surfaces as
// domain.ErrGatewayTimeout so the payment can stay pending and be retried.
func (c *RazorpayClient) CreateOrder(ctx context.Context, amount float64, currency string, notes map[string]string) (string, error) {
	// Razorpay wants the amount in paise, minimum one rupee
	paise := int64(amount * 100)
	if paise < 100 {
		paise = 100
	}

	body, err := json.Marshal(orderRequest{
		Amount:   paise,
		Currency: currency,
		Notes:    notes,
	})
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: create order", domain.ErrGatewayTimeout)
		}
		return "", fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("create order: gateway returned %d: %s", resp.StatusCode, raw)
	}

	var order orderResponse
	if err = json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("decode order response: %w", err)
	}
	if order.ID == "" {
		return "", fmt.Errorf("create order: empty order id")
	}

	return order.ID, nil
}

// VerifySignature checks the checkout callback signature: an HMAC-SHA256 of
// "<order_ref>|<payment_ref>" under the key secret, hex encoded.
func (c *RazorpayClient) VerifySignature(paymentRef, orderRef, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderRef + "|" + paymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
