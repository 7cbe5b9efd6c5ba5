package service

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// unknownAddr 是拿不到來源位址時的替代值，
// 這類請求會共用同一個限流桶
const unknownAddr = "unknown"

// Fingerprint 將來源位址轉成固定長度的單向雜湊，
// 限流表只保存雜湊，不保存原始位址
func Fingerprint(addr string) string {
	if addr == "" {
		addr = unknownAddr
	}
	sum := sha3.Sum256([]byte(addr))
	return hex.EncodeToString(sum[:])
}
