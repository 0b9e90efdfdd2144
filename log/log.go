package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Verbose output is for user-facing progress detail. It is less noisy than
// tracing, which is intended for debugging only.
var VerboseEnabled = false

func Fverbosef(w io.Writer, format string, v ...interface{}) {
	if VerboseEnabled {
		fmt.Fprintf(w, format, v...)
	}
}

func Verbosef(format string, v ...interface{}) {
	Fverbosef(os.Stderr, format, v...)
}

var traceOnce sync.Once

// Tags enabled. Value ignored. Written only under traceOnce; Tracef may be
// called from concurrent request goroutines.
var TraceSetting = map[string]bool{}

// Supply the TRACE environment variable with a comma-separated list of
// trace tags to enable. Loads at most once.
func LoadTraceSetting() {
	traceOnce.Do(func() {
		traceVar := os.Getenv("TRACE")
		if traceVar != "" {
			for _, tag := range strings.Split(traceVar, ",") {
				TraceSetting[tag] = true
			}
		}
	})
}

func Tracef(tag string, format string, v ...interface{}) {
	LoadTraceSetting()
	if _, ok := TraceSetting[tag]; ok {
		fmt.Fprintf(os.Stderr, "TR "+tag+" "+format+"\n", v...)
	}
}

type ErrorPrinter interface {
	Ln(v ...interface{})
	F(format string, v ...interface{})
}

// The default ErrorPrinter
type StderrErrorPrinter struct{}

func (p *StderrErrorPrinter) Ln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}

func (p *StderrErrorPrinter) F(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}
