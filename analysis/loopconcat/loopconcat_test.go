package loopconcat_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/hxann/go-toolbox/analysis/loopconcat"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), loopconcat.Analyzer, "a")
}
