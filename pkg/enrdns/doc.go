// Package enrdns 在 DNS TXT 资源记录中承载节点记录的文本形式
//
// 单个 TXT 字符串最长 255 字节，较长的 "enr:" 文本会被拆分为多个字符串，
// 读取时按顺序拼接后再解析。
package enrdns
