package logger

import "go.uber.org/zap"

// Log is the process-wide logger. It defaults to a no-op logger so that
// packages are usable in tests without calling Init.
var Log = zap.NewNop()

// Init replaces Log with a production logger writing to stderr, keeping
// stdout free for the interactive transcript.
func Init() {
	Log = zap.Must(zap.NewProduction())
}

func Sugar() *zap.SugaredLogger {
	return Log.Sugar()
}
