package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the launcher's file logger. Console output stays lipgloss-styled;
// the log file keeps a trail of launch attempts for a tool that usually
// runs without any console at all.
var Log = logrus.New()

func init() {
	// Until SetupLogging runs, nothing is written anywhere.
	Log.SetOutput(io.Discard)
}

// SetupLogging points the launcher log at the given file. Logging is best
// effort: a launcher must never refuse to launch because its own log file
// cannot be opened.
func SetupLogging(path string) {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.SetLevel(logrus.InfoLevel)
	f, err := os.OpenFile(ExpandUserPath(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Log.SetOutput(io.Discard)
		return
	}
	Log.SetOutput(f)
}
