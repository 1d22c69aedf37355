package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/dep2p/go-enr/config"
)

// 启动与停止的超时时间
const lifecycleTimeout = 30 * time.Second

// Run 组装应用、执行 fn 后停止
//
// fn 是一个 fx.Invoke 函数，参数由容器注入，例如：
//
//	err := app.Run(cfg, func(is *app.Issuer) error {
//	    rec, err := is.Issue()
//	    ...
//	})
//
// fn 返回的错误会被包装后返回，可用 errors.Is 判断。
func Run(cfg *config.Config, fn any) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	fxApp := fx.New(
		fx.Supply(cfg),
		Module(),
		fx.NopLogger,
		fx.Invoke(fn),
	)
	if err := fxApp.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return fmt.Errorf("start app: %w", err)
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancelStop()
	return fxApp.Stop(stopCtx)
}
