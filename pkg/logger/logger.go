// Package logger настраивает logrus для сервиса SOS-трекинга:
// JSON-формат в stdout, уровень из конфигурации.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер с заданным уровнем. Некорректный уровень не фатален:
// сервис стартует с info.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
