// Package logx is the logging facade shared by the core and both front-ends.
package logx

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	Sync() error
}

// Logx satisfies Logger through the embedded sugared logger. It drops
// everything until InitLogger is called.
type Logx struct {
	*zap.SugaredLogger
	level   zap.AtomicLevel
	dev     bool
	console bool
}

var _ Logger = (*Logx)(nil)

func NewLogx(lvl zapcore.Level, dev bool, console bool) *Logx {
	return &Logx{
		SugaredLogger: zap.NewNop().Sugar(),
		level:         zap.NewAtomicLevelAt(lvl),
		dev:           dev,
		console:       console,
	}
}

func NewNopLogx() *Logx {
	return NewLogx(zapcore.FatalLevel, false, false)
}

var loggerLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}

// GetLoggerLevelByString falls back to info for unknown names.
func GetLoggerLevelByString(lvl string) zapcore.Level {
	if level, ok := loggerLevelMap[lvl]; ok {
		return level
	}
	return zapcore.InfoLevel
}

func encoderConfig(dev bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	if dev {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	cfg.LevelKey = "LEVEL"
	cfg.CallerKey = "CALLER"
	cfg.TimeKey = "TIME"
	cfg.NameKey = "NAME"
	cfg.MessageKey = "MESSAGE"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// InitLogger sends entries to w as JSON, or to stdout in console format
// when the logger was built for the console or w is nil.
func (l *Logx) InitLogger(w io.Writer) {
	ecfg := encoderConfig(l.dev)
	encoder := zapcore.NewJSONEncoder(ecfg)
	sink := zapcore.AddSync(w)
	if l.console || w == nil {
		encoder = zapcore.NewConsoleEncoder(ecfg)
		sink = zapcore.Lock(os.Stdout)
	}
	core := zapcore.NewCore(encoder, sink, l.level)
	l.SugaredLogger = zap.New(core, zap.AddCaller()).Named("jigsaw").Sugar()
}

// SetLevel changes the level of l and of every logger derived from it.
func (l *Logx) SetLevel(lvl zapcore.Level) {
	l.level.SetLevel(lvl)
}

func (l *Logx) Level() zapcore.Level {
	return l.level.Level()
}

// Named returns a child logger tagged with the component name.
func (l *Logx) Named(name string) *Logx {
	child := *l
	child.SugaredLogger = l.SugaredLogger.Named(name)
	return &child
}
