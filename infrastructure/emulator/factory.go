package emulator

import (
	"runtime"
	"time"

	"jerry/application/emulation"
	"jerry/infrastructure/PAL/exec_commander"

	"github.com/rs/zerolog"
)

const commandTimeout = 500 * time.Millisecond

// New returns the platform emulator when emulate is set and one is available,
// otherwise a NoopEmulator. The no-op emulator still reports the real display
// size when xdotool is present.
func New(emulate bool, logger zerolog.Logger) emulation.Emulator {
	commander := exec_commander.NewExecCommander(commandTimeout)
	var platform *XdotoolEmulator
	if runtime.GOOS == "linux" && commander.Available(xdotool) {
		platform = NewXdotoolEmulator(commander)
	}

	if !emulate {
		logger.Info().Msg("event emulation disabled")
		if platform != nil {
			return NewNoopEmulator(platform)
		}
		return NewNoopEmulator(nil)
	}
	if platform == nil {
		logger.Warn().Str("os", runtime.GOOS).Msg("no input emulator available for this platform, events will not be emulated")
		return NewNoopEmulator(nil)
	}
	return platform
}
