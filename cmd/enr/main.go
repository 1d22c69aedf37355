// Package main 提供 enr 命令行入口
//
// 子命令：
//
//	enr genkey  生成身份密钥并写入密钥库
//	enr sign    按配置与参数签发记录
//	enr decode  解码并验证记录
//	enr txt     输出 DNS 区域文件中的 TXT 记录行
//	enr version 显示版本信息
//
// 密钥库密码从环境变量 ENR_KEYSTORE_PASSWORD 读取。
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	enr "github.com/dep2p/go-enr"
	"github.com/dep2p/go-enr/internal/util/logger"
)

var log = logger.Logger("cmd")

// errUsage 参数错误，已打印用法
var errUsage = errors.New("usage error")

// command 子命令
type command struct {
	name    string
	summary string
	run     func(args []string, stdout io.Writer) error
}

var commands = []command{
	{"genkey", "生成身份密钥并写入密钥库", runGenkey},
	{"sign", "按配置与参数签发记录", runSign},
	{"decode", "解码并验证记录（enr: 文本或十六进制）", runDecode},
	{"txt", "输出承载记录的 TXT 记录行", runTXT},
	{"version", "显示版本信息", runVersion},
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		}
		os.Exit(1)
	}
}

// run 分发子命令
func run(args []string, stdout io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		printHelp(stdout)
		if len(args) == 0 {
			return errUsage
		}
		return nil
	}

	for _, c := range commands {
		if c.name == args[0] {
			log.Debug("running command", "name", c.name, "args", len(args)-1)
			return c.run(args[1:], stdout)
		}
	}
	printHelp(stdout)
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

// printHelp 打印帮助信息
func printHelp(w io.Writer) {
	fmt.Fprintln(w, "enr - 以太坊节点记录（EIP-778）工具")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "用法:")
	fmt.Fprintln(w, "  enr <命令> [选项]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "命令:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "使用 \"enr <命令> -h\" 查看命令选项。")
}

func runVersion(_ []string, stdout io.Writer) error {
	fmt.Fprintln(stdout, enr.VersionInfo())
	return nil
}
