// src/security/signature.go
package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// GenerateSignature computes the api-auth-signature header value: an
// HMAC-SHA256 over the raw query string, keyed with the API secret, Base64
// encoded. Only the query string is signed - no headers, no body - so the
// caller must pass the exact string it puts on the request URL. A request
// without a query string (the update PUT) signs the empty string.
func GenerateSignature(queryString, apiKey string) string {
	mac := hmac.New(sha256.New, []byte(apiKey))
	mac.Write([]byte(queryString))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
