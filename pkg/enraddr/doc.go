// Package enraddr 将节点记录中的地址属性投影为网络地址
//
// 本包只读取记录，从不修改记录：
//   - IP4 / IP6 / TCP / UDP / TCP6 / UDP6 读取单个属性
//   - UDPAddr / TCPAddr 组合出可拨号的端点
//   - Multiaddrs 生成 /ip4/.../udp/.../p2p/<peer-id> 形式的多地址
//   - PeerID / PeerCID 把记录公钥转换为 libp2p 节点标识
//
// SetIP / SetTCP / SetUDP 是 Builder 的辅助函数，按地址族选择正确的属性键。
package enraddr
