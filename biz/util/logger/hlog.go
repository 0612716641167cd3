package logger

import (
	"context"
	"io"

	"user_center/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init routes hlog through a logrus backend writing to the rotating file
// from newOutput. Must run after config.Init.
func Init() {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
		FullTimestamp:   true,
	})
	l.SetOutput(newOutput())

	logger := &Logger{l: l}
	logger.SetLevel(newLevel())
	hlog.SetLogger(logger)
}

// Logger adapts logrus to hlog.FullLogger and stamps the request log id
// from the context onto every Ctx* line.
type Logger struct {
	l *logrus.Logger
}

var _ hlog.FullLogger = (*Logger)(nil)

func (lg *Logger) ctxEntry(ctx context.Context) *logrus.Entry {
	if logId := trace_info.GetLogId(ctx); logId != "" {
		return lg.l.WithField("log_id", logId)
	}
	return logrus.NewEntry(lg.l)
}

func (lg *Logger) Trace(v ...interface{})  { lg.l.Trace(v...) }
func (lg *Logger) Debug(v ...interface{})  { lg.l.Debug(v...) }
func (lg *Logger) Info(v ...interface{})   { lg.l.Info(v...) }
func (lg *Logger) Notice(v ...interface{}) { lg.l.Info(v...) }
func (lg *Logger) Warn(v ...interface{})   { lg.l.Warn(v...) }
func (lg *Logger) Error(v ...interface{})  { lg.l.Error(v...) }
func (lg *Logger) Fatal(v ...interface{})  { lg.l.Fatal(v...) }

func (lg *Logger) Tracef(format string, v ...interface{})  { lg.l.Tracef(format, v...) }
func (lg *Logger) Debugf(format string, v ...interface{})  { lg.l.Debugf(format, v...) }
func (lg *Logger) Infof(format string, v ...interface{})   { lg.l.Infof(format, v...) }
func (lg *Logger) Noticef(format string, v ...interface{}) { lg.l.Infof(format, v...) }
func (lg *Logger) Warnf(format string, v ...interface{})   { lg.l.Warnf(format, v...) }
func (lg *Logger) Errorf(format string, v ...interface{})  { lg.l.Errorf(format, v...) }
func (lg *Logger) Fatalf(format string, v ...interface{})  { lg.l.Fatalf(format, v...) }

func (lg *Logger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	lg.ctxEntry(ctx).Tracef(format, v...)
}

func (lg *Logger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	lg.ctxEntry(ctx).Debugf(format, v...)
}

func (lg *Logger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	lg.ctxEntry(ctx).Infof(format, v...)
}

func (lg *Logger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	lg.ctxEntry(ctx).Infof(format, v...)
}

func (lg *Logger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	lg.ctxEntry(ctx).Warnf(format, v...)
}

func (lg *Logger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	lg.ctxEntry(ctx).Errorf(format, v...)
}

func (lg *Logger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	lg.ctxEntry(ctx).Fatalf(format, v...)
}

func (lg *Logger) SetLevel(level hlog.Level) {
	switch level {
	case hlog.LevelTrace:
		lg.l.SetLevel(logrus.TraceLevel)
	case hlog.LevelDebug:
		lg.l.SetLevel(logrus.DebugLevel)
	case hlog.LevelInfo, hlog.LevelNotice:
		lg.l.SetLevel(logrus.InfoLevel)
	case hlog.LevelWarn:
		lg.l.SetLevel(logrus.WarnLevel)
	case hlog.LevelError:
		lg.l.SetLevel(logrus.ErrorLevel)
	case hlog.LevelFatal:
		lg.l.SetLevel(logrus.FatalLevel)
	default:
		lg.l.SetLevel(logrus.TraceLevel)
	}
}

func (lg *Logger) SetOutput(w io.Writer) {
	lg.l.SetOutput(w)
}
