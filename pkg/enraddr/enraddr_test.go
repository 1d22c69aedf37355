package enraddr_test

import (
	"crypto/rand"
	"net"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enr "github.com/dep2p/go-enr"
	"github.com/dep2p/go-enr/pkg/enraddr"
)

const vectorText = "enr:-IS4QHCYrYZbAKWCBRlAy5zzaDZXJBGkcnh4MHcBFZntXNFrdvJjX04jRzjzCBOonrkTfj499SZuOh8R33Ls8RRcy5wBgmlkgnY0gmlwhH8AAAGJc2VjcDI1NmsxoQPKY0yuDUmstAHYpMa2_oxVtw0RW_QAdpzBQA8yWM0xOIN1ZHCCdl8"

// build 用回调设置属性并构建记录
func build(t *testing.T, scheme enr.IdentityScheme, set func(b *enr.Builder)) *enr.Record {
	t.Helper()
	priv, err := scheme.GenerateKey(rand.Reader)
	require.NoError(t, err)
	defer priv.Zero()

	b, err := enr.NewBuilder(scheme, priv)
	require.NoError(t, err)
	set(b)
	rec, err := b.Build(1)
	require.NoError(t, err)
	return rec
}

func TestVector(t *testing.T) {
	rec, err := enr.Parse(vectorText)
	require.NoError(t, err)

	ip, err := enraddr.IP4(rec)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip.String())

	port, err := enraddr.UDP(rec)
	require.NoError(t, err)
	assert.Equal(t, uint16(30303), port)

	_, err = enraddr.TCP(rec)
	assert.ErrorIs(t, err, enr.ErrNotFound)

	_, err = enraddr.IP6(rec)
	assert.ErrorIs(t, err, enr.ErrNotFound)

	udp, err := enraddr.UDPAddr(rec)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:30303", udp.String())

	_, err = enraddr.TCPAddr(rec)
	assert.ErrorIs(t, err, enraddr.ErrNoEndpoint)

	id, err := enraddr.PeerID(rec)
	require.NoError(t, err)
	assert.Equal(t, "16Uiu2HAmSH2XVgZqYHWucap5kuPzLnt2TsNQkoppVxB5eJGvaXwm", id)

	c, err := enraddr.PeerCID(rec)
	require.NoError(t, err)
	assert.Equal(t, uint64(cid.Libp2pKey), c.Prefix().Codec)
	assert.Equal(t, "bafzaajiiaijcca6kmngk4dkjvs2adwfey23p5dcvw4grcw7uab3jzqkab4zfrtjrha", c.String())

	addrs, err := enraddr.Multiaddrs(rec)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "/ip4/127.0.0.1/udp/30303/p2p/"+id, addrs[0].String())
}

func TestSetters_DualStack(t *testing.T) {
	v4 := net.ParseIP("192.0.2.1")
	v6 := net.ParseIP("2001:db8::1")

	rec := build(t, enr.V4ID{}, func(b *enr.Builder) {
		require.NoError(t, enraddr.SetIP(b, v4))
		require.NoError(t, enraddr.SetTCP(b, v4, 30303))
		require.NoError(t, enraddr.SetUDP(b, v4, 30304))
		require.NoError(t, enraddr.SetIP(b, v6))
		require.NoError(t, enraddr.SetUDP(b, v6, 9000))
	})

	assert.Equal(t, []string{"id", "ip", "ip6", "secp256k1", "tcp", "udp", "udp6"}, rec.Keys())

	ip4, err := enraddr.IP4(rec)
	require.NoError(t, err)
	assert.True(t, ip4.Equal(v4))
	ip6, err := enraddr.IP6(rec)
	require.NoError(t, err)
	assert.True(t, ip6.Equal(v6))

	// tcp6 缺省时回退到 tcp
	p, err := enraddr.TCP6(rec)
	require.NoError(t, err)
	assert.Equal(t, uint16(30303), p)
	p, err = enraddr.UDP6(rec)
	require.NoError(t, err)
	assert.Equal(t, uint16(9000), p)

	addrs, err := enraddr.Multiaddrs(rec)
	require.NoError(t, err)
	id, err := enraddr.PeerID(rec)
	require.NoError(t, err)

	var got []string
	for _, a := range addrs {
		got = append(got, a.String())
	}
	assert.Equal(t, []string{
		"/ip4/192.0.2.1/tcp/30303/p2p/" + id,
		"/ip4/192.0.2.1/udp/30304/p2p/" + id,
		"/ip6/2001:db8::1/tcp/30303/p2p/" + id,
		"/ip6/2001:db8::1/udp/9000/p2p/" + id,
	}, got)
}

func TestUDPAddr_IPv6Only(t *testing.T) {
	v6 := net.ParseIP("2001:db8::2")
	rec := build(t, enr.V4ID{}, func(b *enr.Builder) {
		require.NoError(t, enraddr.SetIP(b, v6))
		require.NoError(t, enraddr.SetUDP(b, v6, 4000))
	})

	addr, err := enraddr.UDPAddr(rec)
	require.NoError(t, err)
	assert.Equal(t, "[2001:db8::2]:4000", addr.String())
}

func TestBadAttributes(t *testing.T) {
	rec := build(t, enr.V4ID{}, func(b *enr.Builder) {
		require.NoError(t, b.Set(enr.KeyIP, []byte{1, 2, 3}))
		require.NoError(t, b.SetUint(enr.KeyUDP, 70000))
		require.NoError(t, b.Set(enr.KeyIP6, make([]byte, 4)))
	})

	_, err := enraddr.IP4(rec)
	assert.ErrorIs(t, err, enraddr.ErrBadLength)
	_, err = enraddr.IP6(rec)
	assert.ErrorIs(t, err, enraddr.ErrBadLength)
	_, err = enraddr.UDP(rec)
	assert.ErrorIs(t, err, enraddr.ErrPortRange)

	addrs, err := enraddr.Multiaddrs(rec)
	require.NoError(t, err)
	assert.Empty(t, addrs)

	assert.ErrorIs(t, enraddr.SetIP(nopSetter{}, net.IP{1, 2}), enraddr.ErrBadLength)
	assert.ErrorIs(t, enraddr.SetTCP(nopSetter{}, nil, 1), enraddr.ErrBadLength)
}

func TestPeerID_Ed25519(t *testing.T) {
	rec := build(t, enr.Ed25519ID{}, func(b *enr.Builder) {})

	id, err := enraddr.PeerID(rec)
	require.NoError(t, err)
	assert.Regexp(t, "^12D3KooW", id)
}

func TestPeerID_UnsupportedScheme(t *testing.T) {
	rec := build(t, customScheme{}, func(b *enr.Builder) {
		ip := net.ParseIP("10.0.0.1")
		require.NoError(t, enraddr.SetIP(b, ip))
		require.NoError(t, enraddr.SetUDP(b, ip, 1234))
	})

	_, err := enraddr.PeerID(rec)
	assert.ErrorIs(t, err, enraddr.ErrUnsupportedScheme)

	// 无法得到节点标识时多地址不带 /p2p 后缀
	addrs, err := enraddr.Multiaddrs(rec)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "/ip4/10.0.0.1/udp/1234", addrs[0].String())
}

// nopSetter 不记录任何内容的 Setter
type nopSetter struct{}

func (nopSetter) Set(string, []byte) error     { return nil }
func (nopSetter) SetUint(string, uint64) error { return nil }

// customScheme 复用 v4 密码学但使用不同标签与公钥键
type customScheme struct{ enr.V4ID }

func (customScheme) Name() string    { return "custom" }
func (customScheme) KeyName() string { return "custompub" }

var _ enr.IdentityScheme = customScheme{}

func TestMultiaddrs_MappedIPv6(t *testing.T) {
	mapped := net.ParseIP("::ffff:10.0.0.7").To16()

	// 只有 IPv4 映射的 ip6 时仍然输出
	rec := build(t, enr.V4ID{}, func(b *enr.Builder) {
		require.NoError(t, b.Set(enr.KeyIP6, mapped))
		require.NoError(t, b.SetUint(enr.KeyUDP6, 9000))
	})
	id, err := enraddr.PeerID(rec)
	require.NoError(t, err)

	addrs, err := enraddr.Multiaddrs(rec)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "/ip6/::ffff:10.0.0.7/udp/9000/p2p/"+id, addrs[0].String())

	// 与 ip 相同时只输出 ip4 形式
	rec = build(t, enr.V4ID{}, func(b *enr.Builder) {
		require.NoError(t, b.Set(enr.KeyIP, net.IP{10, 0, 0, 7}))
		require.NoError(t, b.Set(enr.KeyIP6, mapped))
		require.NoError(t, b.SetUint(enr.KeyUDP, 9000))
	})
	id, err = enraddr.PeerID(rec)
	require.NoError(t, err)

	addrs, err = enraddr.Multiaddrs(rec)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "/ip4/10.0.0.7/udp/9000/p2p/"+id, addrs[0].String())
}
