// Package sprintfconv defines an Analyzer that reports fmt.Sprintf calls
// formatting a single int, int64, bool or string operand, where a strconv
// function (or the operand itself) does the same work without the formatting
// machinery. Each diagnostic carries a suggested fix with the replacement.
package sprintfconv

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

var Analyzer = &analysis.Analyzer{
	Name:     "sprintfconv",
	Doc:      "report fmt.Sprintf calls that strconv can replace",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.FullName() != "fmt.Sprintf" || len(call.Args) != 2 {
			return
		}

		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return
		}
		verb, err := strconv.Unquote(lit.Value)
		if err != nil {
			return
		}

		arg := call.Args[1]
		// Named types would need an explicit conversion first, so only plain
		// basic types qualify.
		basic, ok := pass.TypesInfo.TypeOf(arg).(*types.Basic)
		if !ok {
			return
		}

		operand, ok := render(pass.Fset, arg)
		if !ok {
			return
		}

		var message, replacement string
		switch basic.Kind() {
		case types.Int, types.UntypedInt:
			if verb != "%d" && verb != "%v" {
				return
			}
			message = "fmt.Sprintf can be replaced by strconv.Itoa"
			replacement = fmt.Sprintf("strconv.Itoa(%s)", operand)
		case types.Int64:
			if verb != "%d" && verb != "%v" {
				return
			}
			message = "fmt.Sprintf can be replaced by strconv.FormatInt"
			replacement = fmt.Sprintf("strconv.FormatInt(%s, 10)", operand)
		case types.Bool, types.UntypedBool:
			if verb != "%t" && verb != "%v" {
				return
			}
			message = "fmt.Sprintf can be replaced by strconv.FormatBool"
			replacement = fmt.Sprintf("strconv.FormatBool(%s)", operand)
		case types.String, types.UntypedString:
			if verb != "%s" && verb != "%v" {
				return
			}
			message = "fmt.Sprintf on a single string operand is redundant"
			replacement = operand
		default:
			return
		}

		pass.Report(analysis.Diagnostic{
			Pos:     call.Pos(),
			End:     call.End(),
			Message: message,
			SuggestedFixes: []analysis.SuggestedFix{{
				Message: fmt.Sprintf("Replace with %s", replacement),
				TextEdits: []analysis.TextEdit{{
					Pos:     call.Pos(),
					End:     call.End(),
					NewText: []byte(replacement),
				}},
			}},
		})
	})

	return nil, nil
}

// render prints an expression back to source form for use in a fix.
func render(fset *token.FileSet, expr ast.Expr) (string, bool) {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, expr); err != nil {
		return "", false
	}
	return buf.String(), true
}
