package webhook_test

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"washly/config"
	"washly/internal/domains/transaction/webhook"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifier_Verify(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Paystack.SecretKey = "sk_test_secret"

	verifier := webhook.New(cfg)
	payload := []byte(`{"event":"charge.success","data":{"reference":"ref-123"}}`)

	tests := []struct {
		name      string
		payload   []byte
		signature string
		want      bool
	}{
		{
			name:      "valid signature",
			payload:   payload,
			signature: sign("sk_test_secret", payload),
			want:      true,
		},
		{
			name:      "signature from wrong secret",
			payload:   payload,
			signature: sign("sk_test_other", payload),
			want:      false,
		},
		{
			name:      "signature over different payload",
			payload:   payload,
			signature: sign("sk_test_secret", []byte(`{"event":"charge.success","data":{"reference":"ref-456"}}`)),
			want:      false,
		},
		{
			name:      "empty signature",
			payload:   payload,
			signature: "",
			want:      false,
		},
		{
			name:      "garbage signature",
			payload:   payload,
			signature: "not-a-hex-digest",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verifier.Verify(tt.payload, tt.signature))
		})
	}
}

func TestVerifier_EmptySecretRejectsEverything(t *testing.T) {
	verifier := webhook.New(&config.Config{})
	payload := []byte(`{}`)

	assert.False(t, verifier.Verify(payload, sign("", payload)))
}
