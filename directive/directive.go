// Package directive parses the stdin REPL's control lines (lines
// starting with "@>") and dispatches them against a hot-swappable
// wheel database.
package directive

import (
	"fmt"
	"regexp"

	"github.com/golang/glog"

	"github.com/tarasstruk/gabriele/daisy"
)

var directiveRe = regexp.MustCompile(`@>(?P<dir>\w+)\s+(?P<arg>\S+)`)

// Kind discriminates the Directive sum type. DaisyHotSwap is the only
// directive the REPL currently understands.
type Kind uint8

const (
	DaisyHotSwap Kind = iota
)

// Directive is a parsed "@>" control line.
type Directive struct {
	Kind Kind
	Arg  string
}

// ErrUnknownDirective is returned by Parse when input does not match a
// recognized directive.
var ErrUnknownDirective = fmt.Errorf("directive: not recognized")

// Parse extracts a Directive from input, which must match
// "@>name arg". The only recognized name is "daisy".
func Parse(input string) (Directive, error) {
	match := directiveRe.FindStringSubmatch(input)
	if match == nil {
		return Directive{}, ErrUnknownDirective
	}
	name, arg := match[1], match[2]
	if name == "daisy" {
		return Directive{Kind: DaisyHotSwap, Arg: arg}, nil
	}
	return Directive{}, ErrUnknownDirective
}

// Process parses input and, for a recognized DaisyHotSwap directive,
// hot-swaps db from the named wheel file. Parse failures and load
// failures are logged and swallowed — per the REPL's error design, a
// bad directive never aborts the session.
func Process(input string, db *daisy.HotSwappable) {
	d, err := Parse(input)
	if err != nil {
		glog.Errorf("directive: %v", err)
		return
	}
	switch d.Kind {
	case DaisyHotSwap:
		if err := db.Swap(d.Arg); err != nil {
			glog.Errorf("directive: loading daisy wheel data from %s failed: %v", d.Arg, err)
			return
		}
		glog.Infof("directive: daisy wheel data loaded successfully from %s", d.Arg)
	}
}
