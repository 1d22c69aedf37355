// Package app 提供节点记录工具的应用编排层
//
// app 包负责：
//   - fx 模块组装（配置、日志、密钥库、身份方案、签发器）
//   - 签发器 Issuer：加载或生成密钥，按配置构建并签名记录
//   - 短生命周期运行：Run 启动应用、执行命令、随后停止
package app
