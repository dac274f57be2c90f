package misc

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

type Severity int

func (s Severity) String() string {
	return []string{
		"Fatal", "Error", "Warning", "Info", "Debug",
	}[s]
}

// CheckError logs err at the given severity, prefixed with what was being
// attempted. It reports whether there was an error to log.
func CheckError(err error, logger bslogger.Logger, severity Severity, doing string) bool {
	if err == nil {
		return false
	}

	message := err.Error()
	if doing != "" {
		message = fmt.Sprintf("%s - %s", doing, err)
	}

	switch severity {
	case Fatal:
		logger.Fatal(message)
	case Error:
		logger.Error(message)
	case Warning:
		logger.Warning(message)
	case Info:
		logger.Info(message)
	case Debug:
		logger.Debug(message)
	default:
		logger.Fatal(message)
	}
	return true
}
