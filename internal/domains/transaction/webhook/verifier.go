package webhook

//go:generate go run go.uber.org/mock/mockgen -source=./verifier.go -destination=../mocks/verifier_mock.go -package=mocks

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"washly/config"
)

// Verifier authenticates inbound gateway callbacks. The signature is the
// hex-encoded HMAC-SHA512 of the raw request body keyed with the gateway
// secret.
type Verifier interface {
	Verify(payload []byte, signature string) bool
}

type verifierImpl struct {
	secret string
}

func New(cfg *config.Config) Verifier {
	return &verifierImpl{secret: cfg.External.Paystack.SecretKey}
}

func (v *verifierImpl) Verify(payload []byte, signature string) bool {
	if v.secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(v.secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
