package eff

// logArgs carries a pre-formatted log line; callers format with fmt
// themselves so this package doesn't need to import it beyond what case.go
// already does.
type logArgs struct{ Line string }

// Log emits a diagnostic line through the innermost installed log handler.
// With no handler installed, Log is silently dropped — logging is always
// optional, never load-bearing.
func Log(line string) {
	invoke(logArgs{Line: line}, func(logArgs) struct{} { return struct{}{} })
}

// BindLog installs a handler for Log.
func BindLog(fn func(line string)) Binding {
	return bind[logArgs](func(a logArgs) struct{} { fn(a.Line); return struct{}{} })
}
