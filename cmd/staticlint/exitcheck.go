package main

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// exitCheckAnalyzer запрещает прямой вызов os.Exit в функции main пакета main.
var exitCheckAnalyzer = &analysis.Analyzer{
	Name: "exitcheck",
	Doc:  "check for direct os.Exit calls in main func of main package",
	Run:  runExitCheck,
}

func runExitCheck(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil //nolint:nilnil
	}
	for _, file := range pass.Files {
		ast.Inspect(file, func(node ast.Node) bool {
			fn, ok := node.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "main" {
				return true
			}
			ast.Inspect(fn.Body, func(n ast.Node) bool {
				call, okCall := n.(*ast.CallExpr)
				if !okCall {
					return true
				}
				sel, okSel := call.Fun.(*ast.SelectorExpr)
				if !okSel {
					return true
				}
				pkgIdent, okIdent := sel.X.(*ast.Ident)
				if okIdent && pkgIdent.Name == "os" && sel.Sel.Name == "Exit" {
					pass.Reportf(call.Pos(), "direct os.Exit call in main func is forbidden")
				}
				return true
			})
			return false
		})
	}
	return nil, nil //nolint:nilnil
}
