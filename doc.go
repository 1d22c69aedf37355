// Package enr 实现签名节点记录（Ethereum Node Record, EIP-778）
//
// 节点记录是一条由节点私钥签名的键值集合，携带序列号、身份方案标签、
// 公钥以及任意附加属性（IP、端口等），用于在发现层之间传递节点信息。
//
// # 核心概念
//
//   - Record: 不可变的已签名记录，解码时完成全部校验
//   - Builder: 可变的构建器，暂存属性并用私钥产生新的 Record
//   - IdentityScheme: 可插拔的身份方案（签名、验证、NodeID 派生）
//   - SchemeMap: 显式传入的方案表，无全局可变注册表
//
// # 快速开始
//
//	import "github.com/dep2p/go-enr"
//
//	// 1. 生成密钥并构建记录
//	priv, _ := enr.V4ID{}.GenerateKey(rand.Reader)
//	defer priv.Zero()
//
//	b, _ := enr.NewBuilder(enr.V4ID{}, priv)
//	b.Set(enr.KeyIP, net.IPv4(127, 0, 0, 1).To4())
//	b.SetUint(enr.KeyUDP, 30303)
//	rec, err := b.Build(1)
//
//	// 2. 文本形式
//	s := rec.Text() // "enr:-IS4Q..."
//
//	// 3. 解析并验证
//	rec2, err := enr.Parse(s)
//	fmt.Println(rec2.ID(), rec2.Seq())
//
// # 编码格式
//
//	record  = [signature, seq, k1, v1, k2, v2, ...]   (RLP 列表，键严格升序)
//	content = [seq, k1, v1, k2, v2, ...]              (签名输入)
//	text    = "enr:" + base64url(record)              (无填充)
//
// 记录编码后不得超过 300 字节。
//
// # 文件组织
//
//   - record.go  - Record 与解码校验流程
//   - builder.go - Builder
//   - text.go    - 文本形式编解码
//   - scheme.go  - IdentityScheme 与 SchemeMap
//   - v4.go      - 默认 v4 方案（secp256k1）
//   - ed25519.go - 可选 ed25519 方案
//   - keys.go    - 预定义属性键
//   - errors.go  - 错误定义
//   - version.go - 版本信息
//
// # 相关包
//
//   - pkg/enraddr: 读取地址与端口属性，转换为多地址与 libp2p 节点标识
//   - pkg/enrdns: 在 DNS TXT 记录中承载文本形式
//   - pkg/lib/rlp: 规范编解码
//   - pkg/lib/crypto: 密钥、签名与密钥库
package enr
