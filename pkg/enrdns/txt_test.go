package enrdns

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enr "github.com/dep2p/go-enr"
)

const vectorText = "enr:-IS4QHCYrYZbAKWCBRlAy5zzaDZXJBGkcnh4MHcBFZntXNFrdvJjX04jRzjzCBOonrkTfj499SZuOh8R33Ls8RRcy5wBgmlkgnY0gmlwhH8AAAGJc2VjcDI1NmsxoQPKY0yuDUmstAHYpMa2_oxVtw0RW_QAdpzBQA8yWM0xOIN1ZHCCdl8"

// largeRecord 构建文本形式超过单个 TXT 字符串长度的记录
func largeRecord(t *testing.T) *enr.Record {
	t.Helper()
	priv, err := enr.V4ID{}.GenerateKey(rand.Reader)
	require.NoError(t, err)
	defer priv.Zero()

	b, err := enr.NewBuilder(enr.V4ID{}, priv)
	require.NoError(t, err)
	require.NoError(t, b.Set("blob", make([]byte, 150)))
	rec, err := b.Build(9)
	require.NoError(t, err)
	require.Greater(t, len(rec.Text()), MaxStringLength)
	return rec
}

func TestTXT_Vector(t *testing.T) {
	rec, err := enr.Parse(vectorText)
	require.NoError(t, err)

	rr := TXT("nodes.example.org", rec, 300)
	assert.Equal(t, "nodes.example.org.", rr.Hdr.Name)
	assert.Equal(t, dns.TypeTXT, rr.Hdr.Rrtype)
	assert.Equal(t, uint32(300), rr.Hdr.Ttl)
	assert.Equal(t, []string{vectorText}, rr.Txt)

	got, err := FromTXT(rr, nil)
	require.NoError(t, err)
	assert.True(t, rec.Equal(got))
}

func TestTXT_Split(t *testing.T) {
	rec := largeRecord(t)

	rr := TXT("big.example.org.", rec, DefaultTTL)
	require.Len(t, rr.Txt, 2)
	for _, s := range rr.Txt {
		assert.LessOrEqual(t, len(s), MaxStringLength)
	}
	assert.Equal(t, rec.Text(), strings.Join(rr.Txt, ""))

	got, err := FromTXT(rr, enr.DefaultSchemes())
	require.NoError(t, err)
	assert.True(t, rec.Equal(got))
}

func TestZoneLine_RoundTrip(t *testing.T) {
	for _, rec := range []*enr.Record{largeRecord(t), mustParse(t, vectorText)} {
		line := ZoneLine("node.example.org", rec, DefaultTTL)
		assert.True(t, strings.HasPrefix(line, "node.example.org."))

		got, err := ParseZoneLine(line, nil)
		require.NoError(t, err)
		assert.True(t, rec.Equal(got))
		assert.Equal(t, rec.ID(), got.ID())
	}
}

func TestParseZoneLine_Errors(t *testing.T) {
	_, err := ParseZoneLine("node.example.org. 300 IN A 127.0.0.1", nil)
	assert.ErrorIs(t, err, ErrNotTXT)

	_, err = ParseZoneLine("", nil)
	assert.ErrorIs(t, err, ErrEmptyRecord)

	_, err = ParseZoneLine(`node.example.org. 300 IN TXT "enr:!!!!"`, nil)
	assert.ErrorIs(t, err, enr.ErrInvalidText)

	_, err = ParseZoneLine(`node.example.org. 300 IN TXT "v=spf1 -all"`, nil)
	assert.ErrorIs(t, err, enr.ErrMissingPrefix)
}

func TestFromTXT_UnknownScheme(t *testing.T) {
	priv, err := enr.Ed25519ID{}.GenerateKey(rand.Reader)
	require.NoError(t, err)
	defer priv.Zero()
	b, err := enr.NewBuilder(enr.Ed25519ID{}, priv)
	require.NoError(t, err)
	rec, err := b.Build(1)
	require.NoError(t, err)

	rr := TXT("ed.example.org", rec, DefaultTTL)
	_, err = FromTXT(rr, nil)
	assert.ErrorIs(t, err, enr.ErrUnknownScheme)

	got, err := FromTXT(rr, enr.AllSchemes())
	require.NoError(t, err)
	assert.True(t, rec.Equal(got))
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{""}, split("", 3))
	assert.Equal(t, []string{"abc"}, split("abc", 3))
	assert.Equal(t, []string{"abc", "d"}, split("abcd", 3))
}

func mustParse(t *testing.T, s string) *enr.Record {
	t.Helper()
	rec, err := enr.Parse(s)
	require.NoError(t, err)
	return rec
}
