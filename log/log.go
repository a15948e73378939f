package log

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
)

var (
	Output io.Writer = os.Stderr
	Flags            = log.Ltime | log.Lmicroseconds

	PrefixPanic  = "PANIC! "
	PrefixError  = "Error: "
	PrefixInfo   = "Info:  "
	PrefixDebug  = "Debug: "
	DebugGreyLvl = uint8(11)

	// EnableDebug turns on layout and animation tracing. Set it before the
	// first frame; it is read from the main loop without locking.
	EnableDebug = false
)

var (
	logPanic *log.Logger
	logError *log.Logger
	logInfo  *log.Logger
	logDebug *log.Logger
)

func init() {
	ResetLoggers()
}

func newLogger(prefix aurora.Value) *log.Logger {
	return log.New(Output, prefix.Bold().String(), Flags)
}

// SetOutput redirects every logger to w.
func SetOutput(w io.Writer) {
	Output = w
	ResetLoggers()
}

func ResetLoggers() {
	logPanic = newLogger(aurora.BgRed(aurora.White(PrefixPanic)))
	logError = newLogger(aurora.Red(PrefixError))
	logInfo = newLogger(aurora.Blue(PrefixInfo))
	logDebug = newLogger(aurora.Gray(DebugGreyLvl, PrefixDebug))
}

func Infof(f string, v ...interface{}) {
	logInfo.Printf(f, v...)
}
func Infoln(v ...interface{}) {
	logInfo.Println(v...)
}
func Printf(f string, v ...interface{}) {
	logInfo.Printf(f, v...)
}
func Println(v ...interface{}) {
	logInfo.Println(v...)
}

func Debugf(f string, v ...interface{}) {
	if !EnableDebug {
		return
	}
	logDebug.Printf(f, v...)
}
func Debugln(v ...interface{}) {
	if !EnableDebug {
		return
	}
	logDebug.Println(v...)
}

func Errorf(f string, v ...interface{}) {
	logError.Printf(f, v...)
}
func Errorln(v ...interface{}) {
	logError.Println(v...)
}

func Panicf(f string, v ...interface{}) {
	logPanic.Panicf(f, v...)
}
func Panicln(v ...interface{}) {
	logPanic.Panicln(v...)
}
func Fatalf(f string, v ...interface{}) {
	logPanic.Fatalf(f, v...)
}
func Fatalln(v ...interface{}) {
	logPanic.Fatalln(v...)
}

var noop = func() {}

// Benchmark returns a function that logs how long thing took when called.
// It does nothing unless debugging is enabled.
func Benchmark(thing string) func() {
	if !EnableDebug {
		return noop
	}

	now := time.Now()

	return func() {
		Debugln(thing, "took", time.Since(now))
	}
}
