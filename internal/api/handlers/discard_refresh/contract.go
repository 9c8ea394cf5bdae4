package discard_refresh

type RefreshCoordinator interface {
	Reset(scope string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
