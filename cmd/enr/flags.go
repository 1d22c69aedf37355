package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dep2p/go-enr/config"
)

// defaultKeystoreDir 命令行未指定密钥库时使用的目录
const defaultKeystoreDir = "keys"

// identityFlags 各命令共用的身份参数
type identityFlags struct {
	configFile string
	scheme     string
	name       string
	keystore   string
}

func (f *identityFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configFile, "config", "", "配置文件路径（JSON）")
	fs.StringVar(&f.scheme, "scheme", "", "身份方案 (v4/ed25519)")
	fs.StringVar(&f.name, "name", "", "密钥名称")
	fs.StringVar(&f.keystore, "keystore", "", "密钥库目录（默认: ./keys）")
}

// load 加载配置并按 环境变量 → 命令行 的顺序覆盖
func (f *identityFlags) load() (*config.Config, error) {
	cfg := config.NewConfig()
	if f.configFile != "" {
		var err error
		if cfg, err = config.LoadFile(f.configFile); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()

	if f.scheme != "" {
		cfg.Identity.Scheme = f.scheme
	}
	if f.name != "" {
		cfg.Identity.KeyName = f.name
	}
	if f.keystore != "" {
		cfg.Identity.KeystoreDir = f.keystore
	}
	// 命令行工具不使用内存密钥库
	if cfg.Identity.KeystoreDir == "" {
		cfg.Identity.KeystoreDir = defaultKeystoreDir
	}
	return cfg, nil
}

// attrFlag 可重复的 -set key=hex 参数
type attrFlag map[string]string

func (a attrFlag) String() string {
	parts := make([]string, 0, len(a))
	for k, v := range a {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (a attrFlag) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=hex, got %q", s)
	}
	a[k] = strings.TrimPrefix(v, "0x")
	return nil
}

// newFlagSet 创建子命令参数集，错误与用法输出到 w
func newFlagSet(name, usage string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintf(w, "用法:\n  enr %s %s\n\n选项:\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}
