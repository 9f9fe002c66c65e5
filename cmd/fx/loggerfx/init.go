package loggerfx

import (
	"os"

	"go.uber.org/fx"
	"urbanary/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger() logger.Logger {
	return logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}
