package controllers

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"crit-server/utils"

	"github.com/golang-jwt/jwt/v5"
)

const testKid = "test"

// newTestKeyStore returns a key store holding a freshly generated RSA key
// under the "test" kid, plus the private half for signing tokens.
func newTestKeyStore(t *testing.T) (*utils.PublicKeyStore, *rsa.PrivateKey) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		t.Fatalf("failed to marshal public key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	store := utils.NewPublicKeyStore()
	if err := store.AddOrUpdateKey(testKid, string(pemBytes)); err != nil {
		t.Fatalf("failed to add public key: %v", err)
	}
	return store, priv
}

func signTestToken(t *testing.T, priv *rsa.PrivateKey, userID string) string {
	t.Helper()

	claims := &utils.CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKid

	signed, err := token.SignedString(priv)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}
