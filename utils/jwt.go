package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	UserID string `json:"sub"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// PublicKeyStore maps key ids (kid) to RSA public keys. Keys are loaded from
// a directory of "<kid>_public.pem" files and can be replaced at runtime via
// the admin key-reload endpoint.
type PublicKeyStore struct {
	keys map[string]*rsa.PublicKey
	mu   sync.RWMutex
}

func NewPublicKeyStore() *PublicKeyStore {
	return &PublicKeyStore{
		keys: make(map[string]*rsa.PublicKey),
	}
}

// LoadKeys reads every "<kid>_public.pem" file in dir into the store and
// returns the number of keys loaded.
func (store *PublicKeyStore) LoadKeys(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, "_public.pem") {
			continue
		}
		kid := strings.TrimSuffix(name, "_public.pem")

		pemData, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return loaded, fmt.Errorf("failed to read public key file %s: %v", name, err)
		}
		if err := store.AddOrUpdateKey(kid, string(pemData)); err != nil {
			return loaded, fmt.Errorf("failed to parse public key from file %s: %v", name, err)
		}
		loaded++
	}
	return loaded, nil
}

func (store *PublicKeyStore) AddOrUpdateKey(kid, pemStr string) error {
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemStr))
	if err != nil {
		return fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.keys[kid] = pubKey
	return nil
}

func (store *PublicKeyStore) RemoveKey(kid string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.keys, kid)
}

func (store *PublicKeyStore) GetKey(kid string) (*rsa.PublicKey, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	key, exists := store.keys[kid]
	if !exists {
		return nil, fmt.Errorf("public key not found for kid: %s", kid)
	}
	return key, nil
}

// ParseJWT verifies tokenString against the store key named by the token's
// kid header and returns its claims.
func ParseJWT(store *PublicKeyStore, tokenString string) (*CustomClaims, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, &CustomClaims{})
	if err != nil {
		return nil, err
	}

	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, errors.New("kid not found in token header")
	}

	pubKey, err := store.GetKey(kid)
	if err != nil {
		return nil, err
	}

	parsedToken, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return pubKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := parsedToken.Claims.(*CustomClaims); ok && parsedToken.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
