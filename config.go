package contextprocessor

import "github.com/goliatone/go-contextprocessor/internal/runtimeconfig"

var (
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrBasePriorityOutOfRange  = runtimeconfig.ErrBasePriorityOutOfRange
)

type (
	Config           = runtimeconfig.Config
	LoggingConfig    = runtimeconfig.LoggingConfig
	ProcessorsConfig = runtimeconfig.ProcessorsConfig
	Features         = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
