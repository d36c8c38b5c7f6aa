// Package panicutil runs untrusted callbacks so that neither a panic nor runtime.Goexit
// can leave the caller's bookkeeping half done.
package panicutil

import (
	"github.com/sourcegraph/conc/panics"
)

// Guard runs f inside a double defer sandwich.
//
// If f returns normally, Guard returns the error returned by f.
// If f panics, the panic is recovered and returned as *panics.ErrRecovered.
// If f calls runtime.Goexit, onGoexit is called while the goroutine unwinds; Goexit cannot be stopped,
// so code after Guard never runs in that case.
func Guard(f func() error, onGoexit func()) (err error) {
	var (
		returned  bool
		recovered panics.Recovered
	)
	defer func() {
		if returned || recovered.Value != nil {
			return
		}
		if onGoexit != nil {
			onGoexit()
		}
	}()

	func() {
		defer func() {
			if !returned {
				recovered = panics.NewRecovered(2, recover())
			}
		}()
		err = f()
		returned = true
	}()

	if !returned {
		err = recovered.AsError()
		// mark the sandwich as handled, so the outer defer does not treat it as Goexit
		returned = true
	}
	return
}

// Recover runs f and returns a panic in f as an error.
func Recover(f func() error) error {
	return Guard(f, nil)
}
