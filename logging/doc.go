/*
Package logging offers a client for emitting log entries from waSCC actors to
the host's logging capability (wascc:logging).

New returns a Client bound to one binding. For code that just wants to log
without carrying a handle around, Automatic returns a process-wide
AutoLogger; its binding can be switched with UseBinding, and the switch is
seen by every later call in the process.

Existing logging stacks can be pointed at the host as well:

	zl := zap.New(logging.NewZapCore(logging.Automatic(), zapcore.InfoLevel))
	rl := zerolog.New(logging.LevelWriter{Client: logging.Automatic()})
*/
package logging
