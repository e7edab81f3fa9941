package demo

import (
	"context"

	"go.uber.org/fx"

	"github.com/benz9527/xbst/xlog"
)

type banner struct{}

func (banner) JSON() string {
	return `{"app":"bstdemo"}`
}

func (banner) PlainText() string {
	return `
 _         _      _
| |__  ___| |_ __| | ___ _ __ ___   ___
| '_ \/ __| __/ _' |/ _ \ '_ ' _ \ / _ \
| |_) \__ \ || (_| |  __/ | | | | | (_) |
|_.__/|___/\__\__,_|\___|_| |_| |_|\___/
`
}

type runnerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Runner    *Runner
	Logger    xlog.XLogger
}

// registerRunner runs all the rounds in the start hook, so a failed
// round fails the app start.
func registerRunner(p runnerParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Banner(banner{})
			_, err := p.Runner.Run(ctx)
			return err
		},
		OnStop: func(ctx context.Context) error {
			p.Runner.Close()
			return nil
		},
	})
}

// Module requires a xlog.XLogger provided by the app.
func Module(opts ...Option) fx.Option {
	return fx.Module("bstdemo",
		fx.Provide(
			func() (*Config, error) {
				return NewConfig(opts...)
			},
			NewRunner,
		),
		fx.Invoke(registerRunner),
	)
}
