// Package elab runs validation passes over elaborated syntax trees.
//
// The engine drives a fixed set of typed hooks over the closed AST node
// set, top-down (pre-order) and bottom-up (post-order), left to right.
// Passes are stateful participants: one instance per traversal, never
// shared. Findings are appended to a caller-owned diagnostics slice;
// passes never abort the walk.
package elab

import (
	"github.com/hazel-lang/hazel/internal/ast"
	"github.com/hazel-lang/hazel/internal/diagnostics"
)

// Control is the signal a hook returns to the engine.
type Control int

const (
	// Continue descends into the node's children as usual.
	Continue Control = iota
	// Stop skips the node's children and its bottom-up hook.
	Stop
)

// Config carries cross-pass settings shared by a whole run. Every hook
// receives it; the passes shipped in this package do not consult it.
type Config struct {
	// SourceRoot, when set, is stripped from file paths in rendered
	// diagnostics.
	SourceRoot string
}

// Pass is the hook set a validation pass exposes to the engine.
// Hooks append findings to errs and return a Control signal. The engine
// guarantees deterministic declaration order: siblings left to right,
// children between a node's top-down and bottom-up hooks.
type Pass interface {
	OnClassTopDown(cls *ast.ClassDeclaration, cfg *Config, errs *[]*diagnostics.DiagnosticError) Control
	OnClassBottomUp(cls *ast.ClassDeclaration, cfg *Config, errs *[]*diagnostics.DiagnosticError) Control
	OnTypedefTopDown(td *ast.TypedefDeclaration, cfg *Config, errs *[]*diagnostics.DiagnosticError) Control
	OnFunctionTopDown(fn *ast.FunctionDeclaration, cfg *Config, errs *[]*diagnostics.DiagnosticError) Control
	OnMethodTopDown(m *ast.MethodDeclaration, cfg *Config, errs *[]*diagnostics.DiagnosticError) Control
	OnWhereConstraintTopDown(wc *ast.WhereConstraint, cfg *Config, errs *[]*diagnostics.DiagnosticError) Control
	OnHintTopDown(h ast.Hint, cfg *Config, errs *[]*diagnostics.DiagnosticError) Control
}

// BasePass implements Pass with no-op hooks that always continue.
// Concrete passes embed it and override the hooks they care about.
type BasePass struct{}

func (BasePass) OnClassTopDown(*ast.ClassDeclaration, *Config, *[]*diagnostics.DiagnosticError) Control {
	return Continue
}

func (BasePass) OnClassBottomUp(*ast.ClassDeclaration, *Config, *[]*diagnostics.DiagnosticError) Control {
	return Continue
}

func (BasePass) OnTypedefTopDown(*ast.TypedefDeclaration, *Config, *[]*diagnostics.DiagnosticError) Control {
	return Continue
}

func (BasePass) OnFunctionTopDown(*ast.FunctionDeclaration, *Config, *[]*diagnostics.DiagnosticError) Control {
	return Continue
}

func (BasePass) OnMethodTopDown(*ast.MethodDeclaration, *Config, *[]*diagnostics.DiagnosticError) Control {
	return Continue
}

func (BasePass) OnWhereConstraintTopDown(*ast.WhereConstraint, *Config, *[]*diagnostics.DiagnosticError) Control {
	return Continue
}

func (BasePass) OnHintTopDown(ast.Hint, *Config, *[]*diagnostics.DiagnosticError) Control {
	return Continue
}

// Run transforms the program with each pass in turn and returns all
// collected diagnostics. Later passes still run when earlier ones report
// findings, so a single run surfaces every problem it can see.
func Run(prog *ast.Program, cfg *Config, passes ...Pass) []*diagnostics.DiagnosticError {
	var errs []*diagnostics.DiagnosticError
	for _, pass := range passes {
		Transform(prog, cfg, &errs, pass)
	}
	for _, e := range errs {
		if e.File == "" {
			e.File = prog.File
		}
	}
	return errs
}
