package util

import (
	"fmt"
	"log"
)

type Severity int

const (
	WARNING Severity = iota
	ERROR
)

func (s Severity) String() string {
	switch s {
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERR"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a non-fatal report produced while building or compiling a
// language. Subject names the word or morpheme it concerns, if any.
type Diagnostic struct {
	Severity Severity
	Subject  string
	Msg      string
}

func (d Diagnostic) String() string {
	if d.Subject == "" {
		return fmt.Sprintf("%v: %s", d.Severity, d.Msg)
	}
	return fmt.Sprintf("%v: %s (%q)", d.Severity, d.Msg, d.Subject)
}

type Diagnostics []Diagnostic

func Warnf(subject, format string, args ...interface{}) Diagnostic {
	return Diagnostic{WARNING, subject, fmt.Sprintf(format, args...)}
}

func Errorf(subject, format string, args ...interface{}) Diagnostic {
	return Diagnostic{ERROR, subject, fmt.Sprintf(format, args...)}
}

func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == ERROR {
			return true
		}
	}
	return false
}

// Log writes every diagnostic to the standard logger.
func (ds Diagnostics) Log() {
	for _, d := range ds {
		log.Println(d.String())
	}
}
