package logging

import (
	"context"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack and re-panics. Defer it where
// the logger writes to a file: the terminal may still be in raw mode when
// the panic surfaces.
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	FromContext(ctx).WithLevel(zerolog.PanicLevel).
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("stack", string(debug.Stack())).
		Msg("panic")
	panic(r)
}
