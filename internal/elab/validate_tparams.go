package elab

import (
	"fmt"
	"strings"

	"github.com/hazel-lang/hazel/internal/ast"
	"github.com/hazel-lang/hazel/internal/config"
	"github.com/hazel-lang/hazel/internal/diagnostics"
	"github.com/hazel-lang/hazel/internal/token"
)

type tparamKind int

const (
	tparamConcrete tparamKind = iota
	tparamHigher
)

// tparamRecord is a scope-table entry for one bound parameter name.
// inScope=false means the name was bound by a higher-kinded parameter's
// own list and has since left scope; the record is kept so a later reuse
// of the name can be told apart from a fresh declaration.
type tparamRecord struct {
	tok     token.Token
	inScope bool
	kind    tparamKind
}

// Feature tags for restrictions that do not combine with higher-kinded
// type parameters.
type hkFeature string

const (
	featureConstraints      hkFeature = "constraints"
	featureReification      hkFeature = "reification"
	featureUserAttributes   hkFeature = "user attributes"
	featureVariance         hkFeature = "variance annotations"
	featureWhereConstraints hkFeature = "where constraints"
)

// TparamScopePass validates type-parameter declarations: naming rules,
// shadowing and reuse across nested declaration sites, and the feature
// set permitted in combination with higher-kinded parameters.
//
// The scope table and context flags live for one whole traversal. The
// table is cleared only on entering a top-level declaration (class,
// typedef, free function); method scopes nest inside their class's scope
// and inherit it.
type TparamScopePass struct {
	BasePass
	tparams map[string]tparamRecord

	// Context for the where-constraint hint check. Once set, neither flag
	// is ever reset during the traversal; see the package tests for the
	// observable consequences.
	inFunctionOrMethod bool
	inWhereConstraint  bool
}

// NewTparamScopePass returns a fresh pass with an empty scope table.
// Use one instance per traversal.
func NewTparamScopePass() *TparamScopePass {
	return &TparamScopePass{tparams: make(map[string]tparamRecord)}
}

func (p *TparamScopePass) clearTparams() {
	clear(p.tparams)
}

func (p *TparamScopePass) OnClassTopDown(cls *ast.ClassDeclaration, _ *Config, errs *[]*diagnostics.DiagnosticError) Control {
	// Classes are top level, so nothing should be in scope; clear anyway.
	p.clearTparams()
	p.checkTparams(cls.TypeParams, false, errs)
	return Continue
}

func (p *TparamScopePass) OnTypedefTopDown(td *ast.TypedefDeclaration, _ *Config, errs *[]*diagnostics.DiagnosticError) Control {
	p.clearTparams()
	p.checkTparams(td.TypeParams, false, errs)
	return Continue
}

func (p *TparamScopePass) OnFunctionTopDown(fn *ast.FunctionDeclaration, _ *Config, errs *[]*diagnostics.DiagnosticError) Control {
	p.clearTparams()
	p.checkTparams(fn.TypeParams, false, errs)
	// Hints inside where constraints are checked for functions and
	// methods only, not class-level constraints.
	p.inFunctionOrMethod = true
	return Continue
}

func (p *TparamScopePass) OnMethodTopDown(m *ast.MethodDeclaration, _ *Config, errs *[]*diagnostics.DiagnosticError) Control {
	// Method parameters are validated with the class-level parameters
	// still in scope.
	p.checkTparams(m.TypeParams, false, errs)
	p.inFunctionOrMethod = true
	return Continue
}

func (p *TparamScopePass) OnWhereConstraintTopDown(*ast.WhereConstraint, *Config, *[]*diagnostics.DiagnosticError) Control {
	p.inWhereConstraint = true
	return Continue
}

func (p *TparamScopePass) OnHintTopDown(h ast.Hint, _ *Config, errs *[]*diagnostics.DiagnosticError) Control {
	// Relies on the reference-elaboration pass having rewritten applied
	// references to bound parameters into AbstractRef beforehand.
	if p.inFunctionOrMethod && p.inWhereConstraint {
		if ref, ok := h.(*ast.AbstractRef); ok {
			if rec, bound := p.tparams[ref.Name]; bound && rec.inScope && rec.kind == tparamHigher {
				*errs = append(*errs, p.unsupportedFeature(ref.GetToken(), ref.Name, featureWhereConstraints, false))
			}
		}
	}
	return Continue
}

// checkTparams binds and validates one parameter list. nested is true when
// the list belongs to a higher-kinded parameter rather than a declaration.
func (p *TparamScopePass) checkTparams(tps []*ast.TypeParameter, nested bool, errs *[]*diagnostics.DiagnosticError) {
	// Bind pass: put each named parameter in scope and record its kind,
	// reporting shadowing of in-scope names and reuse of names previously
	// bound by a higher-kinded parameter's own list.
	for _, tp := range tps {
		name := tp.Name.Name()
		if name == config.WildcardName {
			continue
		}
		if rec, seen := p.tparams[name]; seen {
			if rec.inScope {
				*errs = append(*errs, diagnostics.NewNamingError(diagnostics.ErrN001, tp.GetToken(),
					fmt.Sprintf("type parameter %s shadows an earlier declaration of the same name", name),
				).WithRelated(rec.tok, "previous declaration is here"))
			} else {
				*errs = append(*errs, diagnostics.NewNamingError(diagnostics.ErrN002, tp.GetToken(),
					fmt.Sprintf("type parameter name %s was already used for a parameter of a higher-kinded type parameter; pick a different name", name)))
			}
		}
		kind := tparamConcrete
		if tp.IsHigherKinded() {
			kind = tparamHigher
		}
		p.tparams[name] = tparamRecord{tok: tp.GetToken(), inScope: true, kind: kind}
	}

	// Validate pass: check every parameter, wildcards included, and
	// recurse into higher-kinded parameters' own lists.
	for _, tp := range tps {
		p.checkTparam(tp, nested, errs)
	}

	// A higher-kinded parameter's own parameters are invisible outside its
	// declaration: unbind them but keep the records for reuse detection.
	if nested {
		for _, tp := range tps {
			name := tp.Name.Name()
			if name == config.WildcardName {
				continue
			}
			if rec, seen := p.tparams[name]; seen {
				rec.inScope = false
				p.tparams[name] = rec
			}
		}
	}
}

// checkTparam validates a single parameter's name and feature set, then
// binds and validates its own parameter list, if any.
func (p *TparamScopePass) checkTparam(tp *ast.TypeParameter, nested bool, errs *[]*diagnostics.DiagnosticError) {
	isHK := tp.IsHigherKinded()
	name := tp.Name.Name()
	tok := tp.GetToken()

	switch {
	case strings.ToLower(name) == config.ThisName:
		*errs = append(*errs, diagnostics.NewNamingError(diagnostics.ErrN003, tok,
			"'this' is reserved and cannot be used as a type parameter name"))
	case name == config.WildcardName && (!nested || isHK):
		*errs = append(*errs, diagnostics.NewNamingError(diagnostics.ErrN004, tok,
			"a wildcard is only allowed as a concrete parameter of a higher-kinded type parameter"))
	case name == "" || !strings.HasPrefix(name, config.TparamPrefix):
		*errs = append(*errs, diagnostics.NewNamingError(diagnostics.ErrN005, tok,
			fmt.Sprintf("type parameter name %q must start with %s", name, config.TparamPrefix)))
	}

	if len(tp.Constraints) > 0 {
		p.restrictFeature(tok, name, featureConstraints, nested, isHK, errs)
	}
	if !tp.Reify.IsErased() {
		p.restrictFeature(tok, name, featureReification, nested, isHK, errs)
	}
	if len(tp.UserAttributes) > 0 {
		p.restrictFeature(tok, name, featureUserAttributes, nested, isHK, errs)
	}
	if !tp.Variance.IsInvariant() {
		p.restrictFeature(tok, name, featureVariance, nested, isHK, errs)
	}

	p.checkTparams(tp.Parameters, true, errs)
}

// restrictFeature reports a feature that does not combine with
// higher-kinded parameters. Both diagnostics may fire for one parameter:
// one because it is nested inside a higher-kinded parameter's list, one
// because it is itself higher-kinded.
func (p *TparamScopePass) restrictFeature(tok token.Token, name string, feature hkFeature, nested, isHK bool, errs *[]*diagnostics.DiagnosticError) {
	if nested {
		*errs = append(*errs, p.unsupportedFeature(tok, name, feature, true))
	}
	if isHK {
		*errs = append(*errs, p.unsupportedFeature(tok, name, feature, false))
	}
}

func (p *TparamScopePass) unsupportedFeature(tok token.Token, name string, feature hkFeature, becauseNested bool) *diagnostics.DiagnosticError {
	var msg string
	if becauseNested {
		msg = fmt.Sprintf("%s are not supported on %s because it is a parameter of a higher-kinded type parameter", feature, name)
	} else if feature == featureWhereConstraints {
		msg = fmt.Sprintf("the higher-kinded type parameter %s may not appear in a where constraint", name)
	} else {
		msg = fmt.Sprintf("%s are not supported on the higher-kinded type parameter %s", feature, name)
	}
	return diagnostics.NewNamingError(diagnostics.ErrN006, tok, msg)
}
