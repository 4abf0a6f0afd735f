package docsearch

import "go.uber.org/zap"

// logger is the package-level structured logger, replacing the teacher's
// bare log.Printf debug line in executor.go. It defaults to a no-op logger
// so importing this package never produces unsolicited output; a host
// process calls SetLogger to wire its own zap instance.
var logger = zap.NewNop().Sugar()

// SetLogger installs l as the package's structured logger. Passing nil
// restores the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l
}
