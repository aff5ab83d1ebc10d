// Package testutil holds helpers shared by ficedit's tests.
package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaksMain runs the package tests and fails if goroutines leak.
//
// Example usage:
//
//	func TestMain(m *testing.M) {
//	    testutil.VerifyNoLeaksMain(m)
//	}
func VerifyNoLeaksMain(m *testing.M) {
	goleak.VerifyTestMain(m, defaultOptions()...)
}

// defaultOptions returns common ignore patterns for testing framework goroutines
func defaultOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("testing.tRunner.func1"),
		goleak.IgnoreTopFunction("testing.runTests"),
		goleak.IgnoreTopFunction("testing.(*M).Run"),
		goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
		goleak.IgnoreTopFunction("time.Sleep"),
	}
}
