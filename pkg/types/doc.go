// Package types 定义 go-enr 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在记录核心与上层消费者之间传递数据。
//
// # 文件组织
//
//   - ids.go    - NodeID 节点标识
//   - errors.go - 公共错误定义
//
// # 设计原则
//
//  1. 不可变性：NodeID 为定长数组，按值传递
//  2. 可比较性：可直接用作 map key
//  3. 可序列化：实现 TextMarshaler/Unmarshaler，支持 JSON
//
// # 使用示例
//
//	id, err := types.ParseNodeID("a448f24c6d18e575453db13171562b71999873db5b286df957af199ec94617f7")
//	fmt.Println(id.ShortString(), id.Base58())
package types
