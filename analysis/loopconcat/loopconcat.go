// Package loopconcat defines an Analyzer that reports string concatenation
// with += inside for and range loops. Each iteration reallocates and copies
// the accumulated string, so growth is quadratic; strings.Builder does the
// same job with amortized appends.
package loopconcat

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "loopconcat",
	Doc:      "report string concatenation inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.ForStmt)(nil), (*ast.RangeStmt)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		owned := make(map[types.Object]bool)

		switch loop := n.(type) {
		case *ast.ForStmt:
			body = loop.Body
		case *ast.RangeStmt:
			body = loop.Body
			// Key and value variables die with the iteration; growing one of
			// them never accumulates.
			for _, e := range []ast.Expr{loop.Key, loop.Value} {
				if id, ok := e.(*ast.Ident); ok {
					if obj := pass.TypesInfo.ObjectOf(id); obj != nil {
						owned[obj] = true
					}
				}
			}
		}

		ast.Inspect(body, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.ForStmt, *ast.RangeStmt:
				// Inner loops are visited on their own; reporting here too
				// would double up.
				return false
			case *ast.AssignStmt:
				checkAssign(pass, body, owned, n)
			}
			return true
		})
	})

	return nil, nil
}

func checkAssign(pass *analysis.Pass, body *ast.BlockStmt, owned map[types.Object]bool, assign *ast.AssignStmt) {
	if assign.Tok != token.ADD_ASSIGN || len(assign.Lhs) != 1 {
		return
	}
	ident, ok := assign.Lhs[0].(*ast.Ident)
	if !ok {
		return
	}

	t := pass.TypesInfo.TypeOf(ident)
	if t == nil {
		return
	}
	basic, ok := t.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsString == 0 {
		return
	}

	obj := pass.TypesInfo.ObjectOf(ident)
	if obj == nil || owned[obj] {
		return
	}
	// A variable declared inside the body is rebuilt every iteration and
	// cannot grow across them.
	if obj.Pos() >= body.Pos() && obj.Pos() < body.End() {
		return
	}

	pass.Reportf(assign.Pos(), "string concatenation in a loop; use strings.Builder")
}
