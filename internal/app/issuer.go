package app

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/miekg/dns"

	enr "github.com/dep2p/go-enr"
	"github.com/dep2p/go-enr/config"
	"github.com/dep2p/go-enr/pkg/enraddr"
	"github.com/dep2p/go-enr/pkg/enrdns"
	"github.com/dep2p/go-enr/pkg/interfaces"
	"github.com/dep2p/go-enr/pkg/lib/crypto"
	"github.com/dep2p/go-enr/pkg/types"
)

// ============================================================================
//                              签发器
// ============================================================================

// Issuer 使用密钥库中的密钥签发本节点的记录
//
// 每次签发都从密钥库重新读取私钥，签发结束后清零。
// 已签发记录的序列号由 SeqGuard 保证单调递增。
type Issuer struct {
	cfg      *config.Config
	scheme   enr.IdentityScheme
	keystore crypto.Keystore
	log      *slog.Logger

	mu    sync.Mutex
	last  *enr.Record
	guard *interfaces.SeqGuard
}

// NewIssuer 创建签发器
func NewIssuer(cfg *config.Config, ks crypto.Keystore, schemes enr.SchemeMap, log *slog.Logger) (*Issuer, error) {
	scheme, err := schemes.Lookup(cfg.Identity.Scheme)
	if err != nil {
		return nil, err
	}
	return &Issuer{
		cfg:      cfg,
		scheme:   scheme,
		keystore: ks,
		log:      log,
		guard:    interfaces.NewSeqGuard(),
	}, nil
}

// Scheme 返回签发使用的身份方案
func (is *Issuer) Scheme() enr.IdentityScheme {
	return is.scheme
}

// GenerateKey 生成新密钥并存入密钥库
//
// 同名密钥已存在时返回 crypto.ErrKeyExists。
func (is *Issuer) GenerateKey() (types.NodeID, error) {
	priv, err := is.scheme.GenerateKey(rand.Reader)
	if err != nil {
		return types.NodeID{}, err
	}
	defer priv.Zero()

	if err := is.keystore.Put(is.cfg.Identity.KeyName, priv); err != nil {
		return types.NodeID{}, err
	}
	return is.nodeID(priv)
}

// NodeID 返回密钥对应的节点标识
func (is *Issuer) NodeID() (types.NodeID, error) {
	priv, err := is.loadKey()
	if err != nil {
		return types.NodeID{}, err
	}
	defer priv.Zero()
	return is.nodeID(priv)
}

// Last 返回最近一次签发的记录
func (is *Issuer) Last() *enr.Record {
	is.mu.Lock()
	defer is.mu.Unlock()
	return is.last
}

// Issue 按配置签发新记录
//
// 配置中 Seq 非零时直接使用；否则在上一条签发记录的基础上递增，
// 首次签发使用序列号 1。
func (is *Issuer) Issue() (*enr.Record, error) {
	is.mu.Lock()
	defer is.mu.Unlock()

	priv, err := is.loadKey()
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	b, err := enr.NewBuilder(is.scheme, priv)
	if err != nil {
		return nil, err
	}
	if err := applyRecordConfig(b, is.cfg.Record); err != nil {
		b.Close()
		return nil, err
	}

	var rec *enr.Record
	switch {
	case is.cfg.Record.Seq != 0:
		rec, err = b.Build(is.cfg.Record.Seq)
	case is.last != nil:
		rec, err = b.BuildIncrementing(is.last.Seq())
	default:
		rec, err = b.Build(1)
	}
	if err != nil {
		return nil, err
	}
	return is.accept(rec)
}

// Reissue 复制 prev 的全部属性，以递增的序列号重新签名
func (is *Issuer) Reissue(prev *enr.Record) (*enr.Record, error) {
	is.mu.Lock()
	defer is.mu.Unlock()

	priv, err := is.loadKey()
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	b, err := enr.NewBuilderFromRecord(prev, is.scheme, priv)
	if err != nil {
		return nil, err
	}
	rec, err := b.BuildIncrementing(prev.Seq())
	if err != nil {
		return nil, err
	}
	return is.accept(rec)
}

// TXT 返回承载 rec 的 TXT 资源记录，名称与 TTL 取自配置
func (is *Issuer) TXT(rec *enr.Record) (*dns.TXT, error) {
	if is.cfg.DNS.Name == "" {
		return nil, ErrNoDNSName
	}
	return enrdns.TXT(is.cfg.DNS.Name, rec, is.cfg.DNS.TTLSeconds()), nil
}

// accept 检查序列号并记录最近签发的记录
func (is *Issuer) accept(rec *enr.Record) (*enr.Record, error) {
	if err := is.guard.Accept(rec); err != nil {
		return nil, err
	}
	is.last = rec
	is.log.Info("record issued",
		"id", rec.ID().ShortString(),
		"seq", rec.Seq(),
		"scheme", is.scheme.Name(),
		"size", rec.Size())
	return rec, nil
}

// loadKey 从密钥库读取私钥，不存在且允许时自动生成
func (is *Issuer) loadKey() (crypto.PrivateKey, error) {
	name := is.cfg.Identity.KeyName
	priv, err := is.keystore.Get(name)
	if errors.Is(err, crypto.ErrKeyNotFound) && is.cfg.Identity.AutoGenerate {
		if _, err := is.GenerateKey(); err != nil {
			return nil, fmt.Errorf("generate key %q: %w", name, err)
		}
		is.log.Info("generated identity key", "name", name, "scheme", is.scheme.Name())
		priv, err = is.keystore.Get(name)
	}
	if err != nil {
		return nil, fmt.Errorf("load key %q: %w", name, err)
	}
	if want := is.keyType(); priv.Type() != want {
		priv.Zero()
		return nil, fmt.Errorf("%w: key %q is %s, scheme %s needs %s",
			ErrKeyMismatch, name, priv.Type(), is.scheme.Name(), want)
	}
	return priv, nil
}

// keyType 返回方案使用的密钥类型
func (is *Issuer) keyType() crypto.KeyType {
	if is.scheme.KeyName() == enr.KeyEd25519 {
		return crypto.KeyTypeEd25519
	}
	return crypto.KeyTypeSecp256k1
}

func (is *Issuer) nodeID(priv crypto.PrivateKey) (types.NodeID, error) {
	pub, err := is.scheme.EncodePublicKey(priv.GetPublic())
	if err != nil {
		return types.NodeID{}, err
	}
	return is.scheme.NodeID(pub)
}

// ============================================================================
//                              配置写入
// ============================================================================

// applyRecordConfig 把地址、端口与自定义属性写入 b
func applyRecordConfig(b *enr.Builder, rc config.RecordConfig) error {
	if rc.IP != "" {
		ip := net.ParseIP(rc.IP)
		if err := enraddr.SetIP(b, ip); err != nil {
			return err
		}
		if err := setPorts(b, ip, rc.TCP, rc.UDP); err != nil {
			return err
		}
	}
	if rc.IP6 != "" {
		ip := net.ParseIP(rc.IP6)
		if err := enraddr.SetIP(b, ip); err != nil {
			return err
		}
		if err := setPorts(b, ip, rc.TCP6, rc.UDP6); err != nil {
			return err
		}
	}
	for _, k := range rc.AttrKeys() {
		v, err := rc.AttrValue(k)
		if err != nil {
			return err
		}
		if err := b.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

func setPorts(b *enr.Builder, ip net.IP, tcp, udp uint16) error {
	if tcp != 0 {
		if err := enraddr.SetTCP(b, ip, tcp); err != nil {
			return err
		}
	}
	if udp != 0 {
		if err := enraddr.SetUDP(b, ip, udp); err != nil {
			return err
		}
	}
	return nil
}
