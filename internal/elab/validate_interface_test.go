package elab

import (
	"testing"

	"github.com/hazel-lang/hazel/internal/ast"
	"github.com/hazel-lang/hazel/internal/diagnostics"
)

func appliedRef(name string) *ast.AppliedRef {
	tok := nameTok(name)
	return &ast.AppliedRef{Token: tok, Name: &ast.Identifier{Token: tok, Value: name}}
}

func memberVar(name string, static bool) *ast.MemberVariable {
	tok := nameTok(name)
	return &ast.MemberVariable{Token: tok, Name: &ast.Identifier{Token: tok, Value: name}, Static: static}
}

func methodWithBody(name string, stmts ...string) *ast.MethodDeclaration {
	m := mkMethod(name, nil, nil)
	if len(stmts) > 0 {
		m.Body = &ast.Block{Token: nameTok("{")}
		for _, s := range stmts {
			m.Body.Statements = append(m.Body.Statements, &ast.OpaqueStatement{Token: nameTok(s), Text: s})
		}
	}
	return m
}

func runInterfacePass(decls ...ast.Declaration) []*diagnostics.DiagnosticError {
	prog := &ast.Program{File: "test.hz", Declarations: decls}
	return Run(prog, &Config{}, NewInterfacePass())
}

func TestInterfaceViolationsAllReported(t *testing.T) {
	iface := mkClass("I", nil, []*ast.MethodDeclaration{methodWithBody("m", "return 1;")})
	iface.Kind = ast.ClassKindInterface
	iface.Uses = []ast.Hint{appliedRef("SomeTrait")}
	iface.Vars = []*ast.MemberVariable{memberVar("x", false), memberVar("y", true)}

	errs := runInterfacePass(iface)
	expectCodes(t, errs, map[diagnostics.ErrorCode]int{
		diagnostics.ErrS001: 1,
		diagnostics.ErrS002: 1,
		diagnostics.ErrS003: 1,
		diagnostics.ErrS004: 1,
	})
}

func TestNonInterfaceClassIsNotChecked(t *testing.T) {
	for _, kind := range []ast.ClassKind{ast.ClassKindClass, ast.ClassKindTrait, ast.ClassKindEnum} {
		cls := mkClass("C", nil, []*ast.MethodDeclaration{methodWithBody("m", "return 1;")})
		cls.Kind = kind
		cls.Uses = []ast.Hint{appliedRef("SomeTrait")}
		cls.Vars = []*ast.MemberVariable{memberVar("x", false), memberVar("y", true)}

		errs := runInterfacePass(cls)
		expectCodes(t, errs, map[diagnostics.ErrorCode]int{})
	}
}

func TestInterfaceTraitUseReportedPerClause(t *testing.T) {
	iface := mkClass("I", nil, nil)
	iface.Kind = ast.ClassKindInterface
	iface.Uses = []ast.Hint{appliedRef("TraitA"), appliedRef("TraitB"), appliedRef("TraitC")}

	errs := runInterfacePass(iface)
	expectCodes(t, errs, map[diagnostics.ErrorCode]int{diagnostics.ErrS001: 3})
}

func TestInterfaceMemberVariablesReportedOnceEach(t *testing.T) {
	// Only the first instance variable and the first static variable are
	// reported, however many are declared.
	iface := mkClass("I", nil, nil)
	iface.Kind = ast.ClassKindInterface
	first := memberVar("a", false)
	firstStatic := memberVar("s1", true)
	iface.Vars = []*ast.MemberVariable{
		first,
		memberVar("b", false),
		firstStatic,
		memberVar("s2", true),
		memberVar("c", false),
	}

	errs := runInterfacePass(iface)
	expectCodes(t, errs, map[diagnostics.ErrorCode]int{
		diagnostics.ErrS002: 1,
		diagnostics.ErrS003: 1,
	})
	for _, e := range errs {
		switch e.Code {
		case diagnostics.ErrS002:
			if e.Token != first.Token {
				t.Errorf("instance variable diagnostic at %v, want first declaration %v", e.Token, first.Token)
			}
		case diagnostics.ErrS003:
			if e.Token != firstStatic.Token {
				t.Errorf("static variable diagnostic at %v, want first declaration %v", e.Token, firstStatic.Token)
			}
		}
	}
}

func TestInterfaceStaticOnlyVariables(t *testing.T) {
	iface := mkClass("I", nil, nil)
	iface.Kind = ast.ClassKindInterface
	iface.Vars = []*ast.MemberVariable{memberVar("s1", true), memberVar("s2", true)}

	errs := runInterfacePass(iface)
	expectCodes(t, errs, map[diagnostics.ErrorCode]int{diagnostics.ErrS003: 1})
}

func TestInterfaceMethodBodiesReportedPerMethod(t *testing.T) {
	iface := mkClass("I", nil, []*ast.MethodDeclaration{
		methodWithBody("ok"), // abstract: no body
		methodWithBody("bad1", "return 1;"),
		methodWithBody("bad2", "noop();", "return 2;"),
	})
	iface.Kind = ast.ClassKindInterface

	errs := runInterfacePass(iface)
	expectCodes(t, errs, map[diagnostics.ErrorCode]int{diagnostics.ErrS004: 2})
}

func TestEmptyBlockCountsAsAbstract(t *testing.T) {
	iface := mkClass("I", nil, nil)
	iface.Kind = ast.ClassKindInterface
	m := mkMethod("m", nil, nil)
	m.Body = &ast.Block{Token: nameTok("{")} // present but empty
	iface.Methods = []*ast.MethodDeclaration{m}

	errs := runInterfacePass(iface)
	expectCodes(t, errs, map[diagnostics.ErrorCode]int{})
}

func TestBothPassesComposeInOneRun(t *testing.T) {
	// Scenario: an interface with both naming and structural problems,
	// validated in a single engine run over both passes.
	iface := mkClass("I",
		[]*ast.TypeParameter{tparam("T"), tparam("T")},
		[]*ast.MethodDeclaration{methodWithBody("bad", "return 1;")})
	iface.Kind = ast.ClassKindInterface
	iface.Uses = []ast.Hint{appliedRef("SomeTrait")}

	prog := &ast.Program{File: "test.hz", Declarations: []ast.Declaration{iface}}
	errs := Run(prog, &Config{}, NewTparamScopePass(), NewInterfacePass())
	expectCodes(t, errs, map[diagnostics.ErrorCode]int{
		diagnostics.ErrN001: 1,
		diagnostics.ErrS001: 1,
		diagnostics.ErrS004: 1,
	})
	for _, e := range errs {
		if e.File != "test.hz" {
			t.Errorf("diagnostic file = %q, want test.hz", e.File)
		}
	}
}
