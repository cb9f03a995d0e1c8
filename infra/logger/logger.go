package logger

import (
	"io"
	"strings"

	"github.com/labstack/gommon/log"
)

// ParseLevel maps a level name to a gommon level. Unknown names fall back to INFO.
func ParseLevel(level string) (log.Lvl, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG, true
	case "info":
		return log.INFO, true
	case "warn":
		return log.WARN, true
	case "error":
		return log.ERROR, true
	case "off":
		return log.OFF, true
	default:
		return log.INFO, false
	}
}

// Init configures the global logger. Call it once at startup.
func Init(level string, out io.Writer) {
	lvl, ok := ParseLevel(level)
	log.SetOutput(out)
	log.SetLevel(lvl)
	if !ok {
		log.Warnf("Invalid LOG_LEVEL %q, defaulting to INFO", level)
	}
}
