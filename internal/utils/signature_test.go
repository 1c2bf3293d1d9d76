package utils_test

import (
	"testing"

	"github.com/settleline/bizledger/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	payload := []byte(`{"reference":"GW-123","status":"success"}`)

	sig := utils.ComputeSignature(secret, payload)

	assert.True(t, utils.VerifySignature(secret, payload, sig))
	assert.False(t, utils.VerifySignature(secret, payload, sig+"00"), "tampered signature must fail")
	assert.False(t, utils.VerifySignature("other-secret", payload, sig), "wrong secret must fail")
	assert.False(t, utils.VerifySignature(secret, []byte(`{"reference":"GW-123","status":"failed"}`), sig), "tampered payload must fail")
	assert.False(t, utils.VerifySignature(secret, payload, ""), "empty signature must fail")
}
