package crypto

import "golang.org/x/crypto/sha3"

// HashSize Keccak-256 摘要长度
const HashSize = 32

// Keccak256 计算输入拼接后的 Keccak-256 摘要
//
// 注意这是以太坊使用的原始 Keccak，而不是 FIPS-202 SHA3-256。
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// Keccak256Hash 与 Keccak256 相同，但返回定长数组
func Keccak256Hash(data ...[]byte) (out [HashSize]byte) {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	h.Sum(out[:0])
	return out
}
