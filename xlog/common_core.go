package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xbst/lib/infra"
)

var _ XLogCore = (*commonCore)(nil)

type commonCore struct {
	lvlEnabler zapcore.LevelEnabler
	lvlEnc     zapcore.LevelEncoder
	tsEnc      zapcore.TimeEncoder
	ws         zapcore.WriteSyncer
	enc        func(cfg zapcore.EncoderConfig) zapcore.Encoder
	core       zapcore.Core
}

func (cc *commonCore) timeEncoder() zapcore.TimeEncoder                            { return cc.tsEnc }
func (cc *commonCore) levelEncoder() zapcore.LevelEncoder                          { return cc.lvlEnc }
func (cc *commonCore) writeSyncer() zapcore.WriteSyncer                            { return cc.ws }
func (cc *commonCore) outEncoder() func(cfg zapcore.EncoderConfig) zapcore.Encoder { return cc.enc }
func (cc *commonCore) Enabled(lvl zapcore.Level) bool {
	return cc.lvlEnabler.Enabled(lvl)
}

// With keeps the XLogCore type, otherwise the child logger cores
// can't be rewrapped anymore.
func (cc *commonCore) With(fields []zap.Field) zapcore.Core {
	clone := *cc
	clone.core = cc.core.With(fields)
	return &clone
}

func (cc *commonCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return cc.core.Check(ent, ce)
}

func (cc *commonCore) Write(ent zapcore.Entry, fields []zap.Field) error {
	return cc.core.Write(ent, fields)
}

func (cc *commonCore) Sync() error {
	return cc.core.Sync()
}

// WrapCore rebuilds the core with a new encoder config but the same
// writer, encoders and level enabler.
func WrapCore(core XLogCore, cfg zapcore.EncoderConfig) (XLogCore, error) {
	if core == nil {
		return nil, infra.NewErrorStack("[XLogger] logger core is nil")
	}
	return WrapCoreNewLevelEnabler(core, zap.LevelEnablerFunc(core.Enabled), cfg)
}

func WrapCoreNewLevelEnabler(core XLogCore, lvlEnabler zapcore.LevelEnabler, cfg zapcore.EncoderConfig) (XLogCore, error) {
	if core == nil {
		return nil, infra.NewErrorStack("[XLogger] logger core is nil")
	}
	if lvlEnabler == nil {
		return nil, infra.NewErrorStack("[XLogger] logger core level enabler is nil")
	}
	cfg.EncodeLevel = core.levelEncoder()
	cfg.EncodeTime = core.timeEncoder()

	cc := &commonCore{
		ws:         core.writeSyncer(),
		enc:        core.outEncoder(),
		lvlEnabler: lvlEnabler,
		lvlEnc:     core.levelEncoder(),
		tsEnc:      core.timeEncoder(),
	}
	cc.core = zapcore.NewCore(cc.enc(cfg), cc.ws, cc.lvlEnabler)
	return cc, nil
}

func componentCoreEncoderCfg() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		TimeKey:       "ts",
		CallerKey:     coreKeyIgnored,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   coreKeyIgnored,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
}

// newComponentXLogger clones the logger for a third party component,
// named and without caller info.
func newComponentXLogger(logger XLogger, name string) *xLogger {
	parent, ok := logger.(*xLogger)
	l := &xLogger{}
	if ok {
		l.ctxFields = parent.ctxFields
		l.dynamicLevelEnabler = parent.dynamicLevelEnabler
		l.writer = parent.writer
		l.encoder = parent.encoder
	} else {
		l.dynamicLevelEnabler = zap.NewAtomicLevel()
	}
	l.logger.Store(logger.
		zap().
		Named(name).
		WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			if core == nil {
				panic( /* debug assertion */ "[XLogger] core is nil")
			}
			var (
				cc  XLogCore
				err error
			)
			switch c := core.(type) {
			case xLogMultiCore:
				cc, err = WrapCores(c, componentCoreEncoderCfg())
			case XLogCore:
				cc, err = WrapCore(c, componentCoreEncoderCfg())
			default:
				panic( /* debug assertion */ "[XLogger] core is not XLogCore")
			}
			if err != nil {
				panic(err)
			}
			return cc
		})),
	)
	return l
}
