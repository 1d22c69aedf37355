package enrdns

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	enr "github.com/dep2p/go-enr"
)

// MaxStringLength 单个 TXT 字符串的最大长度
const MaxStringLength = 255

// DefaultTTL 默认生存时间（秒）
const DefaultTTL = 3600

// TXT 构造承载 rec 文本形式的 TXT 资源记录
//
// name 会被补全为 FQDN。
func TXT(name string, rec *enr.Record, ttl uint32) *dns.TXT {
	return &dns.TXT{
		Hdr: dns.RR_Header{
			Name:   dns.Fqdn(name),
			Rrtype: dns.TypeTXT,
			Class:  dns.ClassINET,
			Ttl:    ttl,
		},
		Txt: split(rec.Text(), MaxStringLength),
	}
}

// ZoneLine 返回区域文件格式的一行 TXT 记录
func ZoneLine(name string, rec *enr.Record, ttl uint32) string {
	return TXT(name, rec, ttl).String()
}

// FromTXT 拼接 TXT 字符串并解析为记录
//
// schemes 为空时使用 enr.DefaultSchemes()。
func FromTXT(rr dns.RR, schemes enr.SchemeMap) (*enr.Record, error) {
	txt, ok := rr.(*dns.TXT)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotTXT, rr)
	}
	if schemes == nil {
		schemes = enr.DefaultSchemes()
	}
	return enr.ParseWithSchemes(strings.Join(txt.Txt, ""), schemes)
}

// ParseZoneLine 解析区域文件中的一行 TXT 记录
func ParseZoneLine(line string, schemes enr.SchemeMap) (*enr.Record, error) {
	rr, err := dns.NewRR(line)
	if err != nil {
		return nil, err
	}
	if rr == nil {
		return nil, ErrEmptyRecord
	}
	return FromTXT(rr, schemes)
}

// split 按 size 切分 s，最后一段可能较短
func split(s string, size int) []string {
	if s == "" {
		return []string{""}
	}
	out := make([]string, 0, (len(s)+size-1)/size)
	for len(s) > size {
		out = append(out, s[:size])
		s = s[size:]
	}
	return append(out, s)
}
