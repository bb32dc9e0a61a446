package config

import (
	"github.com/sirupsen/logrus"
)

func InitLogger(service string) *logrus.Entry {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return logrus.WithField("service", service)
}
