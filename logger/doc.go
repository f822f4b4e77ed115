/*
Package logger provides logging functionality to a birdpass server by defining the required behavior in [Logger]
and providing an implementation of it backed by [log/slog] with [New].

# Overview

The Logger interface outputs messages at certain levels of importance.
Each message may carry a [*LogContext],
which holds the data inessential to the message proper
but that paints a fuller picture of the state of the server at the time of logging:
an error, the request being handled and arbitrary data.

# SkipLogger

Wrapping a [Logger] in another moves the call site reported in a log
one frame further away from the code that actually logged.
[SkipLogger] provides additional configuration by setting the number of frames to skip
back in order to reach the desired caller.

# Request-scoped loggers

HTTP middleware builds a [*log/slog.Logger] carrying the attributes of the request being handled
and stashes it with [NewContext]. Handlers retrieve it with [FromContext].
*/
package logger
