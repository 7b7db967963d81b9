// Perflint checks Go source for allocation-heavy idioms with cheap
// replacements: fmt.Sprintf on a single operand and string concatenation in
// loops.
//
// Usage:
//
//	perflint ./...
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/hxann/go-toolbox/analysis/loopconcat"
	"github.com/hxann/go-toolbox/analysis/sprintfconv"
)

func main() {
	multichecker.Main(
		loopconcat.Analyzer,
		sprintfconv.Analyzer,
	)
}
