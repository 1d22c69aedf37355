package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	enr "github.com/dep2p/go-enr"
	"github.com/dep2p/go-enr/config"
	"github.com/dep2p/go-enr/internal/app"
	"github.com/dep2p/go-enr/pkg/enraddr"
	"github.com/dep2p/go-enr/pkg/enrdns"
)

// parseFlags 解析参数，-h 视为成功
func parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	err := fs.Parse(args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: %w", errUsage, err)
	}
	return true, nil
}

// ============================================================================
//                              genkey
// ============================================================================

func runGenkey(args []string, stdout io.Writer) error {
	var id identityFlags
	fs := newFlagSet("genkey", "[-scheme v4|ed25519] [-name node] [-keystore dir]", stdout)
	id.register(fs)
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	cfg, err := id.load()
	if err != nil {
		return err
	}
	return app.Run(cfg, func(is *app.Issuer) error {
		nodeID, err := is.GenerateKey()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "scheme:  %s\n", is.Scheme().Name())
		fmt.Fprintf(stdout, "key:     %s\n", cfg.Identity.KeyName)
		fmt.Fprintf(stdout, "node id: %s\n", nodeID)
		return nil
	})
}

// ============================================================================
//                              sign
// ============================================================================

func runSign(args []string, stdout io.Writer) error {
	var (
		id    identityFlags
		attrs = attrFlag{}
	)
	fs := newFlagSet("sign", "[-config file] [-seq n] [-ip addr] [-udp port] [-tcp port] [-set key=hex]...", stdout)
	id.register(fs)
	seq := fs.Uint64("seq", 0, "序列号（0 = 使用配置或从 1 开始）")
	ip := fs.String("ip", "", "IPv4 或 IPv6 地址")
	udp := fs.Uint("udp", 0, "UDP 端口")
	tcp := fs.Uint("tcp", 0, "TCP 端口")
	dnsName := fs.String("dns-name", "", "同时输出该域名下的 TXT 记录行")
	fs.Var(attrs, "set", "自定义属性 key=hex，可重复")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if *udp > 0xffff || *tcp > 0xffff {
		return fmt.Errorf("%w: port out of range", errUsage)
	}

	cfg, err := id.load()
	if err != nil {
		return err
	}
	if *seq != 0 {
		cfg.Record.Seq = *seq
	}
	if *ip != "" {
		applyAddr(&cfg.Record, *ip, uint16(*tcp), uint16(*udp))
	}
	if len(attrs) > 0 && cfg.Record.Attrs == nil {
		cfg.Record.Attrs = make(map[string]string, len(attrs))
	}
	for k, v := range attrs {
		cfg.Record.Attrs[k] = v
	}
	if *dnsName != "" {
		cfg.DNS.Name = *dnsName
	}

	return app.Run(cfg, func(is *app.Issuer) error {
		rec, err := is.Issue()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, rec.Text())
		if cfg.DNS.Name == "" {
			return nil
		}
		rr, err := is.TXT(rec)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, rr.String())
		return nil
	})
}

// applyAddr 按地址族写入命令行给出的地址与端口
func applyAddr(rc *config.RecordConfig, ip string, tcp, udp uint16) {
	if strings.Contains(ip, ":") {
		rc.IP6 = ip
		if tcp != 0 {
			rc.TCP6 = tcp
		}
		if udp != 0 {
			rc.UDP6 = udp
		}
		return
	}
	rc.IP = ip
	if tcp != 0 {
		rc.TCP = tcp
	}
	if udp != 0 {
		rc.UDP = udp
	}
}

// ============================================================================
//                              decode
// ============================================================================

func runDecode(args []string, stdout io.Writer) error {
	fs := newFlagSet("decode", "<enr:...|hex>", stdout)
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	rec, err := parseInput(fs.Arg(0))
	if err != nil {
		return err
	}
	printRecord(stdout, rec)
	return nil
}

// parseInput 解析 enr: 文本或十六进制编码
func parseInput(s string) (*enr.Record, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, enr.TextPrefix) {
		return enr.ParseWithSchemes(s, enr.AllSchemes())
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("input is neither %q text nor hex: %w", enr.TextPrefix, err)
	}
	return enr.DecodeWithSchemes(b, enr.AllSchemes())
}

// printRecord 输出记录的可读形式
func printRecord(w io.Writer, rec *enr.Record) {
	fmt.Fprintf(w, "node id:   %s\n", rec.ID())
	fmt.Fprintf(w, "seq:       %d\n", rec.Seq())
	fmt.Fprintf(w, "scheme:    %s\n", rec.IdentityScheme().Name())
	fmt.Fprintf(w, "size:      %d bytes\n", rec.Size())
	fmt.Fprintf(w, "signature: %x\n", rec.Signature())
	if peerID, err := enraddr.PeerID(rec); err == nil {
		fmt.Fprintf(w, "peer id:   %s\n", peerID)
	}

	fmt.Fprintln(w, "attributes:")
	for _, k := range rec.Keys() {
		fmt.Fprintf(w, "  %-10s %s\n", k, formatValue(rec, k))
	}

	addrs, err := enraddr.Multiaddrs(rec)
	if err != nil || len(addrs) == 0 {
		return
	}
	fmt.Fprintln(w, "multiaddrs:")
	for _, a := range addrs {
		fmt.Fprintf(w, "  %s\n", a)
	}
}

// formatValue 按已知键的含义格式化属性值
func formatValue(rec *enr.Record, key string) string {
	switch key {
	case enr.KeyIP:
		if ip, err := enraddr.IP4(rec); err == nil {
			return ip.String()
		}
	case enr.KeyIP6:
		if ip, err := enraddr.IP6(rec); err == nil {
			return ip.String()
		}
	case enr.KeyTCP, enr.KeyUDP, enr.KeyTCP6, enr.KeyUDP6:
		if v, err := rec.GetUint(key); err == nil {
			return fmt.Sprint(v)
		}
	case enr.KeyID:
		return rec.IdentityScheme().Name()
	}
	if v, ok := rec.Get(key); ok {
		return fmt.Sprintf("0x%x", v)
	}
	raw, _ := rec.GetRaw(key)
	return fmt.Sprintf("(list) 0x%x", raw)
}

// ============================================================================
//                              txt
// ============================================================================

func runTXT(args []string, stdout io.Writer) error {
	fs := newFlagSet("txt", "-name <fqdn> [-ttl 1h] <enr:...>", stdout)
	name := fs.String("name", "", "记录所在域名")
	ttl := fs.Duration("ttl", time.Hour, "生存时间")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if *name == "" || fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	dnsCfg := config.DNSConfig{Name: *name, TTL: config.Duration(*ttl)}
	if err := dnsCfg.Validate(); err != nil {
		return err
	}
	rec, err := parseInput(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, enrdns.ZoneLine(dnsCfg.Name, rec, dnsCfg.TTLSeconds()))
	return nil
}
