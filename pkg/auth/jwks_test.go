package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwksServer(t *testing.T, pub *rsa.PublicKey, kid string, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JSONWebKey{{
			Kid: kid,
			Kty: "RSA",
			Alg: "RS256",
			N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}}})
	}))
}

func TestKeySet_VerifiesRS256(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var hits int32
	srv := jwksServer(t, &priv.PublicKey, "k1", &hits)
	defer srv.Close()

	ks := NewKeySet(srv.URL)
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token.Header["kid"] = "k1"
	signed, err := token.SignedString(priv)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, ks.KeyFunc)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	_, err = jwt.Parse(signed, ks.KeyFunc)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestKeySet_UnknownKid(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var hits int32
	srv := jwksServer(t, &priv.PublicKey, "k1", &hits)
	defer srv.Close()

	_, err = NewKeySet(srv.URL).Key(context.Background(), "other")
	assert.Error(t, err)
}

func TestKeySet_Disabled(t *testing.T) {
	var ks *KeySet = NewKeySet("")
	assert.Nil(t, ks)

	_, err := ks.KeyFunc(&jwt.Token{Method: jwt.SigningMethodRS256, Header: map[string]interface{}{"kid": "k1"}})
	assert.Error(t, err)
}
