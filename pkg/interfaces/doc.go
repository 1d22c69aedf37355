// Package interfaces 定义 go-enr 面向上层的公共接口
//
// 记录核心本身不依赖本包；本包描述上层消费者（发现、路由等）
// 如何看待一条已解码的节点记录：
//   - record.go - NodeRecord 只读视图与 SeqGuard 序列号守卫
//
// 上层只能读取记录，新的记录必须通过 Builder 重新签名产生。
package interfaces
