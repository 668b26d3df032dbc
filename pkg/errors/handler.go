package errors

import (
	stderrors "errors"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives everything the fluent CLI and host code report.
	// Until SetHandler is called it is a quiet LogHandler on stderr.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler routes reports to h, for example a host application's own
// logger or a verbose LogHandler. A nil h puts the quiet LogHandler back.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report hands err to the current handler. Picker and shell errors arrive as
// *FluentError already; anything else (flag parsing, I/O) is wrapped under op
// as KindUnknown. When the handler is a verbose LogHandler and err carries no
// stack, the stack of the Report caller is attached.
func Report(op string, err error) {
	if err == nil {
		return
	}
	var fe *FluentError
	if !stderrors.As(err, &fe) {
		fe = &FluentError{Op: op, Kind: KindUnknown, Err: err}
	}
	if fe.Timestamp.IsZero() {
		fe.Timestamp = time.Now()
	}
	h := getHandler()
	if h == nil {
		return
	}
	if lh, ok := h.(*LogHandler); ok && lh.Verbose && fe.StackTrace == "" {
		fe.StackTrace = CaptureStack()
	}
	h.HandleError(fe)
}

// ReportPanic hands a recovered panic to the current handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// ReportRecovered reports r, a value returned by recover, as a panic in op.
// It is for deferred functions that need to act after recovering, such as
// setting an exit status.
func ReportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// Recover reports a panic in op and swallows it. It must be deferred
// directly:
//
//	defer errors.Recover("cmd.Execute")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportRecovered(op, r)
	}
}

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame, at most 32 frames deep.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
