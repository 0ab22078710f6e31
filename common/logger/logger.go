package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/common/config"
	"github.com/happybirthday/ai-server/common/helper"
	"github.com/sirupsen/logrus"
)

const RequestIdKey = "X-Request-Id"

const (
	loggerDEBUG = "debug"
	loggerINFO  = "info"
	loggerWarn  = "warn"
	loggerError = "error"
)

var LogDir string

var setupLogLock sync.Mutex
var generalLogFile *os.File
var errorLogFile *os.File

// ts/msg keys match the access log written by middleware.SetUpLogger
var formatter = &logrus.JSONFormatter{
	TimestampFormat: time.RFC3339Nano,
	FieldMap: logrus.FieldMap{
		logrus.FieldKeyTime: "ts",
		logrus.FieldKeyMsg:  "msg",
	},
}

var stdLogger = newLogger(func() io.Writer { return gin.DefaultWriter })
var errLogger = newLogger(func() io.Writer { return gin.DefaultErrorWriter })

// lazyWriter resolves the gin writer on every entry so SetupLogger can swap files underneath.
type lazyWriter func() io.Writer

func (w lazyWriter) Write(p []byte) (int, error) {
	return w().Write(p)
}

func newLogger(writer lazyWriter) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(writer)
	l.SetFormatter(formatter)
	l.SetLevel(logrus.DebugLevel)
	return l
}

// SetupLogger tees the gin writers into dated files under LogDir.
func SetupLogger() {
	if LogDir == "" {
		return
	}
	if !setupLogLock.TryLock() {
		log.Println("setup log is already working")
		return
	}
	defer setupLogLock.Unlock()

	if err := os.MkdirAll(LogDir, 0755); err != nil {
		log.Fatal("failed to create log directory")
	}
	dateStr := time.Now().Format("20060102")

	// INFO/WARN/DEBUG
	fd, err := os.OpenFile(filepath.Join(LogDir, fmt.Sprintf("%s-%s.log", config.ServiceName, dateStr)), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal("failed to open general log file")
	}
	// ERROR only
	errFd, err := os.OpenFile(filepath.Join(LogDir, fmt.Sprintf("%s-error-%s.log", config.ServiceName, dateStr)), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal("failed to open error log file")
	}

	if generalLogFile != nil {
		generalLogFile.Close()
	}
	if errorLogFile != nil {
		errorLogFile.Close()
	}
	generalLogFile = fd
	errorLogFile = errFd

	gin.DefaultWriter = io.MultiWriter(os.Stdout, generalLogFile)
	gin.DefaultErrorWriter = io.MultiWriter(os.Stderr, errorLogFile)
}

func entry(l *logrus.Logger, requestId string) *logrus.Entry {
	fields := logrus.Fields{
		"service":  config.ServiceName,
		"instance": config.InstanceId,
	}
	if requestId != "" {
		fields["request_id"] = requestId
	}
	return l.WithFields(fields)
}

func SysLog(s string) {
	entry(stdLogger, "").Info(s)
}

func SysWarn(s string) {
	entry(stdLogger, "").Warn(s)
}

func SysError(s string) {
	entry(errLogger, "").Error(s)
}

func Debug(ctx context.Context, msg string) {
	if config.DebugEnabled {
		logHelper(ctx, loggerDEBUG, msg)
	}
}

func Info(ctx context.Context, msg string) {
	logHelper(ctx, loggerINFO, msg)
}

func Warn(ctx context.Context, msg string) {
	logHelper(ctx, loggerWarn, msg)
}

func Error(ctx context.Context, msg string) {
	logHelper(ctx, loggerError, msg)
}

func Debugf(ctx context.Context, format string, a ...any) {
	Debug(ctx, fmt.Sprintf(format, a...))
}

func Infof(ctx context.Context, format string, a ...any) {
	Info(ctx, fmt.Sprintf(format, a...))
}

func Warnf(ctx context.Context, format string, a ...any) {
	Warn(ctx, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...any) {
	Error(ctx, fmt.Sprintf(format, a...))
}

func logHelper(ctx context.Context, level string, msg string) {
	id := ""
	if ctx != nil {
		if v := ctx.Value(RequestIdKey); v != nil {
			id = fmt.Sprintf("%v", v)
		}
	}
	if id == "" {
		id = helper.GenRequestID()
	}

	switch level {
	case loggerError:
		entry(errLogger, id).Error(msg)
	case loggerWarn:
		entry(stdLogger, id).Warn(msg)
	case loggerDEBUG:
		entry(stdLogger, id).Debug(msg)
	default:
		entry(stdLogger, id).Info(msg)
	}
}

func FatalLog(v ...any) {
	entry(errLogger, "").Error(fmt.Sprint(v...))
	os.Exit(1)
}
