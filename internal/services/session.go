package services

import (
	"crypto/sha256"
	"encoding/hex"
)

// SessionHash deriva o identificador anônimo de sessão a partir do IP do
// cliente e do User-Agent. Nenhum dos dois é armazenado em claro.
func SessionHash(clientIP, userAgent string) string {
	hash := sha256.Sum256([]byte(clientIP + ":" + userAgent))
	return hex.EncodeToString(hash[:])[:32]
}
