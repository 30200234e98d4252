package elab

import (
	"fmt"

	"github.com/hazel-lang/hazel/internal/ast"
	"github.com/hazel-lang/hazel/internal/diagnostics"
	"github.com/hazel-lang/hazel/internal/token"
)

// InterfacePass checks structural well-formedness of interface
// declarations: no trait uses, no member variables, no method bodies.
// It is stateless and runs bottom-up, once per class-like declaration.
type InterfacePass struct {
	BasePass
}

// NewInterfacePass returns the interface structure pass.
func NewInterfacePass() *InterfacePass {
	return &InterfacePass{}
}

func (p *InterfacePass) OnClassBottomUp(cls *ast.ClassDeclaration, _ *Config, errs *[]*diagnostics.DiagnosticError) Control {
	if !cls.Kind.IsInterface() {
		return Continue
	}

	for _, use := range cls.Uses {
		*errs = append(*errs, diagnostics.NewStructureError(diagnostics.ErrS001, use.GetToken(),
			fmt.Sprintf("interface %s cannot use a trait", cls.Name.Name())))
	}

	// Report only the first instance variable and the first static
	// variable; the scan stops once both are found.
	var instanceTok, staticTok *token.Token
	for _, v := range cls.Vars {
		if instanceTok != nil && staticTok != nil {
			break
		}
		if v.Static {
			if staticTok == nil {
				tok := v.GetToken()
				staticTok = &tok
			}
		} else if instanceTok == nil {
			tok := v.GetToken()
			instanceTok = &tok
		}
	}
	if instanceTok != nil {
		*errs = append(*errs, diagnostics.NewStructureError(diagnostics.ErrS002, *instanceTok,
			fmt.Sprintf("interface %s cannot declare a member variable", cls.Name.Name())))
	}
	if staticTok != nil {
		*errs = append(*errs, diagnostics.NewStructureError(diagnostics.ErrS003, *staticTok,
			fmt.Sprintf("interface %s cannot declare a static member variable", cls.Name.Name())))
	}

	for _, m := range cls.Methods {
		if !m.Body.IsEmpty() {
			*errs = append(*errs, diagnostics.NewStructureError(diagnostics.ErrS004, m.GetToken(),
				fmt.Sprintf("method %s of interface %s must be abstract", m.Name.Name(), cls.Name.Name())))
		}
	}

	return Continue
}
