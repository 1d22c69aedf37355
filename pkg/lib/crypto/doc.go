// Package crypto 提供节点记录使用的密码学工具
//
// 本包提供身份方案所需的密钥材料：密钥生成、签名验证、Keccak-256 摘要、
// 敏感数据的作用域清零以及加密的密钥存储。
//
// # 支持的密钥类型
//
//   - Secp256k1（默认 "v4" 身份方案）：签名为 keccak256 摘要上的 64 字节 R || S
//   - Ed25519（可选身份方案）：标准 64 字节签名
//
// # 快速开始
//
// 生成密钥对：
//
//	priv, pub, err := crypto.GenerateKeyPair(crypto.KeyTypeSecp256k1)
//
// 签名和验证：
//
//	sig, err := priv.Sign(data)
//	valid, err := pub.Verify(data, sig)
//
// 敏感数据：
//
//	err := crypto.WithSecret(raw, func(b []byte) error {
//	    key, err = crypto.UnmarshalPrivateKey(crypto.KeyTypeSecp256k1, b)
//	    return err
//	})
//	// raw 已被清零
//
// 密钥存储：
//
//	ks, err := crypto.NewFSKeystore("/path/to/keys", password)
//	err = ks.Put("node", priv)
//	priv, err := ks.Get("node")
//
// # 安全特性
//
//   - 常量时间比较防止时序攻击
//   - AES-GCM + Argon2id 加密存储
//   - 私钥在作用域结束时清零（Secret / Zero）
//
// # 架构层
//
//   - 层级：pkg（公共包）
//   - 依赖：无内部依赖
package crypto
