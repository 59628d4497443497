package lambda

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	Reset()
	HadError() bool
	HadSystemError() bool
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer    io.Writer
	hadErr    bool
	hadSysErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false, false}
}

// Report writes the error on its own line. Errors raised while building a
// node are told apart from syntax errors.
func (reporter *SimpleReporter) Report(err error) {
	if isSystemError(err) {
		reporter.hadSysErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadSysErr = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadSystemError() bool {
	return reporter.hadSysErr
}

func isSystemError(err error) bool {
	var sysErr *SystemError
	return errors.As(err, &sysErr)
}
