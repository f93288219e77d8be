package logs

import (
	"github.com/charmbracelet/log"
	"os"
	"tlg/config"
)

// 日志走stderr stdout只留给命令输出
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
})

// InitLog 初始化日志 前缀用应用名 级别取配置
func InitLog(appName string) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
	}
	if config.Conf != nil {
		if level, err := log.ParseLevel(config.Conf.Log.Level); err == nil {
			opts.Level = level
		}
	}
	logger = log.NewWithOptions(os.Stderr, opts)
}

func Debug(format string, values ...any) {
	logger.Debugf(format, values...)
}

func Info(format string, values ...any) {
	logger.Infof(format, values...)
}

func Warn(format string, values ...any) {
	logger.Warnf(format, values...)
}

func Error(format string, values ...any) {
	logger.Errorf(format, values...)
}

func Fatal(format string, values ...any) {
	logger.Fatalf(format, values...)
}
