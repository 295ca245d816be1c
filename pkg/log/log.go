// Package log provides the leveled loggers used across sidenav. Prefixes are
// coloured with aurora unless Colors is false.
package log

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/logrusorgru/aurora"
)

var (
	Output io.Writer = os.Stderr
	Flags            = log.Ltime | log.Lmicroseconds

	PrefixError  = "Error: "
	PrefixInfo   = "Info:  "
	PrefixDebug  = "Debug: "
	DebugGreyLvl = uint8(11)

	// Colors toggles ANSI colouring of prefixes.
	Colors = true

	EnableDebug = false
)

var (
	mu       sync.RWMutex
	logError *log.Logger
	logInfo  *log.Logger
	logDebug *log.Logger
)

func init() {
	ResetLoggers()
}

func newLogger(plain string, coloured aurora.Value) *log.Logger {
	if !Colors {
		return log.New(Output, plain, Flags)
	}
	return log.New(Output, coloured.Bold().String(), Flags)
}

// ResetLoggers rebuilds the loggers after Output, Flags, Colors or a prefix
// changed.
func ResetLoggers() {
	mu.Lock()
	defer mu.Unlock()
	logError = newLogger(PrefixError, aurora.Red(PrefixError))
	logInfo = newLogger(PrefixInfo, aurora.Blue(PrefixInfo))
	logDebug = newLogger(PrefixDebug, aurora.Gray(DebugGreyLvl, PrefixDebug))
}

// SetOutput redirects all loggers to w.
func SetOutput(w io.Writer) {
	Output = w
	ResetLoggers()
}

func loggers() (errL, infoL, debugL *log.Logger) {
	mu.RLock()
	defer mu.RUnlock()
	return logError, logInfo, logDebug
}

func Infof(f string, v ...interface{}) {
	_, l, _ := loggers()
	l.Printf(f, v...)
}
func Infoln(v ...interface{}) {
	_, l, _ := loggers()
	l.Println(v...)
}

func Debugf(f string, v ...interface{}) {
	if !EnableDebug {
		return
	}
	_, _, l := loggers()
	l.Printf(f, v...)
}
func Debugln(v ...interface{}) {
	if !EnableDebug {
		return
	}
	_, _, l := loggers()
	l.Println(v...)
}

func Errorf(f string, v ...interface{}) {
	l, _, _ := loggers()
	l.Printf(f, v...)
}
func Errorln(v ...interface{}) {
	l, _, _ := loggers()
	l.Println(v...)
}
