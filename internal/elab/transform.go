package elab

import (
	"github.com/hazel-lang/hazel/internal/ast"
	"github.com/hazel-lang/hazel/internal/diagnostics"
)

// Transform walks prog depth-first and invokes the pass's hooks at each
// node. Dispatch is exhaustive over the closed declaration set; unknown
// statement contents are opaque and never visited.
func Transform(prog *ast.Program, cfg *Config, errs *[]*diagnostics.DiagnosticError, pass Pass) {
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.ClassDeclaration:
			transformClass(d, cfg, errs, pass)
		case *ast.TypedefDeclaration:
			transformTypedef(d, cfg, errs, pass)
		case *ast.FunctionDeclaration:
			transformFunction(d, cfg, errs, pass)
		case *ast.MethodDeclaration:
			// Methods only occur inside classes; a stray one at the top
			// level is walked the same way rather than dropped.
			transformMethod(d, cfg, errs, pass)
		}
	}
}

func transformClass(cls *ast.ClassDeclaration, cfg *Config, errs *[]*diagnostics.DiagnosticError, pass Pass) {
	if pass.OnClassTopDown(cls, cfg, errs) == Stop {
		return
	}
	transformTypeParams(cls.TypeParams, cfg, errs, pass)
	transformHints(cls.Extends, cfg, errs, pass)
	transformHints(cls.Implements, cfg, errs, pass)
	transformHints(cls.Uses, cfg, errs, pass)
	for _, wc := range cls.WhereConstraints {
		transformWhereConstraint(wc, cfg, errs, pass)
	}
	for _, v := range cls.Vars {
		transformHint(v.Type, cfg, errs, pass)
	}
	for _, m := range cls.Methods {
		transformMethod(m, cfg, errs, pass)
	}
	pass.OnClassBottomUp(cls, cfg, errs)
}

func transformTypedef(td *ast.TypedefDeclaration, cfg *Config, errs *[]*diagnostics.DiagnosticError, pass Pass) {
	if pass.OnTypedefTopDown(td, cfg, errs) == Stop {
		return
	}
	transformTypeParams(td.TypeParams, cfg, errs, pass)
	transformHint(td.Aliased, cfg, errs, pass)
}

func transformFunction(fn *ast.FunctionDeclaration, cfg *Config, errs *[]*diagnostics.DiagnosticError, pass Pass) {
	if pass.OnFunctionTopDown(fn, cfg, errs) == Stop {
		return
	}
	transformTypeParams(fn.TypeParams, cfg, errs, pass)
	for _, wc := range fn.WhereConstraints {
		transformWhereConstraint(wc, cfg, errs, pass)
	}
	for _, p := range fn.Params {
		transformHint(p.Type, cfg, errs, pass)
	}
	transformHint(fn.ReturnType, cfg, errs, pass)
}

func transformMethod(m *ast.MethodDeclaration, cfg *Config, errs *[]*diagnostics.DiagnosticError, pass Pass) {
	if pass.OnMethodTopDown(m, cfg, errs) == Stop {
		return
	}
	transformTypeParams(m.TypeParams, cfg, errs, pass)
	for _, wc := range m.WhereConstraints {
		transformWhereConstraint(wc, cfg, errs, pass)
	}
	for _, p := range m.Params {
		transformHint(p.Type, cfg, errs, pass)
	}
	transformHint(m.ReturnType, cfg, errs, pass)
}

// transformTypeParams visits the hints attached to a parameter list.
// Scope bookkeeping for nested parameter lists is the passes' own
// business; the engine only guarantees it reaches every hint.
func transformTypeParams(tps []*ast.TypeParameter, cfg *Config, errs *[]*diagnostics.DiagnosticError, pass Pass) {
	for _, tp := range tps {
		for _, c := range tp.Constraints {
			transformHint(c.Type, cfg, errs, pass)
		}
		transformTypeParams(tp.Parameters, cfg, errs, pass)
	}
}

func transformWhereConstraint(wc *ast.WhereConstraint, cfg *Config, errs *[]*diagnostics.DiagnosticError, pass Pass) {
	if pass.OnWhereConstraintTopDown(wc, cfg, errs) == Stop {
		return
	}
	transformHint(wc.Left, cfg, errs, pass)
	transformHint(wc.Right, cfg, errs, pass)
}

func transformHints(hints []ast.Hint, cfg *Config, errs *[]*diagnostics.DiagnosticError, pass Pass) {
	for _, h := range hints {
		transformHint(h, cfg, errs, pass)
	}
}

func transformHint(h ast.Hint, cfg *Config, errs *[]*diagnostics.DiagnosticError, pass Pass) {
	if h == nil {
		return
	}
	if pass.OnHintTopDown(h, cfg, errs) == Stop {
		return
	}
	switch hint := h.(type) {
	case *ast.AppliedRef:
		transformHints(hint.Args, cfg, errs, pass)
	case *ast.AbstractRef:
		transformHints(hint.Args, cfg, errs, pass)
	}
}
