// Package queuedrawcheck reports work that must not run inside tview
// update callbacks.
//
// Callbacks passed to QueueUpdate or QueueUpdateDraw run on the UI
// goroutine. Queueing another update from there blocks on the channel the
// UI goroutine is supposed to drain, and fetching the catalog from there
// freezes the screen until the request settles.
package queuedrawcheck

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer is the queuedrawcheck pass.
var Analyzer = &analysis.Analyzer{
	Name:     "queuedrawcheck",
	Doc:      "reports nested QueueUpdate/QueueUpdateDraw calls and catalog fetches inside update callbacks",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var queueMethods = map[string]bool{
	"QueueUpdate":     true,
	"QueueUpdateDraw": true,
}

// blockingMethods run network I/O and belong in a goroutine.
var blockingMethods = map[string]bool{
	"FetchCatalog": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		outer := n.(*ast.CallExpr)

		name := methodName(outer)
		if !queueMethods[name] || len(outer.Args) == 0 {
			return
		}

		callback, ok := outer.Args[0].(*ast.FuncLit)
		if !ok {
			return
		}

		checkCallback(pass, name, callback.Body)
	})

	return nil, nil
}

func checkCallback(pass *analysis.Pass, outerName string, body *ast.BlockStmt) {
	ast.Inspect(body, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.GoStmt:
			// A goroutine started from the callback does not run on the UI goroutine.
			return false
		case *ast.FuncLit:
			// Nested literals are checked where they are invoked.
			return false
		case *ast.CallExpr:
			inner := methodName(node)
			switch {
			case queueMethods[inner]:
				pass.Reportf(node.Pos(), "%s inside %s callback can deadlock tview", inner, outerName)
				return false
			case blockingMethods[inner]:
				pass.Reportf(node.Pos(), "%s blocks the UI goroutine inside %s callback", inner, outerName)
				return false
			}
		}

		return true
	})
}

func methodName(call *ast.CallExpr) string {
	selector, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || selector.Sel == nil {
		return ""
	}

	return selector.Sel.Name
}
