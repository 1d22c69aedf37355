package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	enr "github.com/dep2p/go-enr"
	"github.com/dep2p/go-enr/config"
	"github.com/dep2p/go-enr/internal/util/logger"
	"github.com/dep2p/go-enr/pkg/lib/crypto"
)

// ============================================================================
//                              模块输入依赖
// ============================================================================

// ModuleInput 定义签发器的输入依赖
type ModuleInput struct {
	fx.In

	Config   *config.Config
	Keystore crypto.Keystore
	Schemes  enr.SchemeMap
	Logger   *slog.Logger `name:"app_logger"`
}

// ModuleOutput 定义模块输出服务
type ModuleOutput struct {
	fx.Out

	Issuer *Issuer
}

// ============================================================================
//                              服务提供
// ============================================================================

// ProvideIssuer 提供签发器
func ProvideIssuer(input ModuleInput) (ModuleOutput, error) {
	is, err := NewIssuer(input.Config, input.Keystore, input.Schemes, input.Logger)
	if err != nil {
		return ModuleOutput{}, err
	}
	return ModuleOutput{Issuer: is}, nil
}

// loggerOutput 应用日志配置后导出的 Logger
type loggerOutput struct {
	fx.Out

	Logger *slog.Logger `name:"app_logger"`
}

// provideLogger 应用日志配置并返回 app 子系统的 Logger
//
// 必须早于其他组件写日志，签发器依赖其输出。
func provideLogger(cfg *config.Config) (loggerOutput, error) {
	lc, err := cfg.Log.LoggerConfig()
	if err != nil {
		return loggerOutput{}, err
	}
	logger.Apply(lc)
	return loggerOutput{Logger: logger.Logger("app")}, nil
}

// provideKeystore 按配置创建文件或内存密钥库
func provideKeystore(cfg *config.Config) (crypto.Keystore, error) {
	if cfg.Identity.KeystoreDir == "" {
		return crypto.NewMemKeystore(), nil
	}
	return crypto.NewFSKeystore(cfg.Identity.KeystoreDir, []byte(cfg.Identity.Password))
}

// provideSchemes 返回签发与解码使用的方案表
func provideSchemes() enr.SchemeMap {
	return enr.AllSchemes()
}

// ============================================================================
//                              模块定义
// ============================================================================

// Module 返回 fx 模块配置
//
// 调用方需要通过 fx.Supply 提供 *config.Config。
func Module() fx.Option {
	return fx.Module("enr",
		fx.Provide(
			provideLogger,
			provideKeystore,
			provideSchemes,
			ProvideIssuer,
		),
		fx.Invoke(registerLifecycle),
	)
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC     fx.Lifecycle
	Issuer *Issuer
	Logger *slog.Logger `name:"app_logger"`
}

// registerLifecycle 注册生命周期钩子
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			input.Logger.Debug("issuer ready", "scheme", input.Issuer.Scheme().Name())
			return nil
		},
		OnStop: func(_ context.Context) error {
			if rec := input.Issuer.Last(); rec != nil {
				input.Logger.Debug("issuer stopped", "last_seq", rec.Seq())
			}
			return nil
		},
	})
}
