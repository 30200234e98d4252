// Package astdump decodes serialized front-end trees.
//
// The parser and reference-elaboration stages run outside this repository
// and emit their result as a YAML dump (*.nast.yaml). This package turns a
// dump back into the internal/ast node set so the validation passes can run
// on it standalone.
package astdump

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hazel-lang/hazel/internal/ast"
	"github.com/hazel-lang/hazel/internal/token"
)

// Dump is the top-level document of a tree dump file.
type Dump struct {
	// File is the original source file path the tree was parsed from.
	File string `yaml:"file,omitempty"`

	Declarations []DeclDump `yaml:"declarations"`
}

// DeclDump is a single top-level declaration. Exactly one field is set.
type DeclDump struct {
	Class    *ClassDump    `yaml:"class,omitempty"`
	Typedef  *TypedefDump  `yaml:"typedef,omitempty"`
	Function *FunctionDump `yaml:"function,omitempty"`
}

// PosDump is a 1-based source position. Absent positions decode to zero
// and are tolerated; synthesized nodes have no position.
type PosDump struct {
	Line int `yaml:"line,omitempty"`
	Col  int `yaml:"col,omitempty"`
}

// ClassDump is a class-like declaration: class, interface, trait, or enum.
type ClassDump struct {
	Name       string       `yaml:"name"`
	Kind       string       `yaml:"kind,omitempty"` // defaults to "class"
	Pos        PosDump      `yaml:"pos,omitempty"`
	Tparams    []TparamDump `yaml:"tparams,omitempty"`
	Extends    []HintDump   `yaml:"extends,omitempty"`
	Implements []HintDump   `yaml:"implements,omitempty"`
	Uses       []HintDump   `yaml:"uses,omitempty"`
	Where      []WhereDump  `yaml:"where,omitempty"`
	Vars       []VarDump    `yaml:"vars,omitempty"`
	Methods    []MethodDump `yaml:"methods,omitempty"`
}

// TparamDump is one type parameter. A non-empty Tparams list makes it
// higher-kinded.
type TparamDump struct {
	Name        string           `yaml:"name"`
	Pos         PosDump          `yaml:"pos,omitempty"`
	Variance    string           `yaml:"variance,omitempty"` // "", "covariant", "contravariant"
	Reify       string           `yaml:"reify,omitempty"`    // "", "soft_reified", "reified"
	Tparams     []TparamDump     `yaml:"tparams,omitempty"`
	Constraints []ConstraintDump `yaml:"constraints,omitempty"`

	// Attributes carries user-attribute names; arguments are not dumped.
	Attributes []string `yaml:"attributes,omitempty"`
}

// ConstraintDump is one constraint clause on a type parameter.
type ConstraintDump struct {
	Kind string   `yaml:"kind"` // "as", "super", "eq"
	Pos  PosDump  `yaml:"pos,omitempty"`
	Type HintDump `yaml:"type"`
}

// HintDump is a type hint. Exactly one of Applied, Abstract, Prim, or
// Wildcard is set.
type HintDump struct {
	Pos      PosDump       `yaml:"pos,omitempty"`
	Applied  *AppliedDump  `yaml:"applied,omitempty"`
	Abstract *AbstractDump `yaml:"abstract,omitempty"`
	Prim     string        `yaml:"prim,omitempty"`
	Wildcard bool          `yaml:"wildcard,omitempty"`
}

// AppliedDump references a named type, optionally with arguments.
type AppliedDump struct {
	Name string     `yaml:"name"`
	Args []HintDump `yaml:"args,omitempty"`
}

// AbstractDump is the canonical reference to an in-scope type parameter,
// as produced by the reference-elaboration stage.
type AbstractDump struct {
	Name string     `yaml:"name"`
	Args []HintDump `yaml:"args,omitempty"`
}

// WhereDump is one where-constraint clause on a function or method.
type WhereDump struct {
	Kind  string   `yaml:"kind"`
	Pos   PosDump  `yaml:"pos,omitempty"`
	Left  HintDump `yaml:"left"`
	Right HintDump `yaml:"right"`
}

// VarDump is a member variable of a class-like declaration.
type VarDump struct {
	Name   string    `yaml:"name"`
	Pos    PosDump   `yaml:"pos,omitempty"`
	Static bool      `yaml:"static,omitempty"`
	Type   *HintDump `yaml:"type,omitempty"`
}

// ParamDump is a value parameter of a function or method.
type ParamDump struct {
	Name string    `yaml:"name"`
	Pos  PosDump   `yaml:"pos,omitempty"`
	Type *HintDump `yaml:"type,omitempty"`
}

// MethodDump is a method of a class-like declaration. Body statements are
// dumped as their raw source text; the validation stage only looks at
// whether a body is empty.
type MethodDump struct {
	Name     string       `yaml:"name"`
	Pos      PosDump      `yaml:"pos,omitempty"`
	Static   bool         `yaml:"static,omitempty"`
	Abstract bool         `yaml:"abstract,omitempty"`
	Tparams  []TparamDump `yaml:"tparams,omitempty"`
	Where    []WhereDump  `yaml:"where,omitempty"`
	Params   []ParamDump  `yaml:"params,omitempty"`
	Return   *HintDump    `yaml:"return,omitempty"`
	Body     []string     `yaml:"body,omitempty"`
}

// FunctionDump is a free function.
type FunctionDump struct {
	Name    string       `yaml:"name"`
	Pos     PosDump      `yaml:"pos,omitempty"`
	Tparams []TparamDump `yaml:"tparams,omitempty"`
	Where   []WhereDump  `yaml:"where,omitempty"`
	Params  []ParamDump  `yaml:"params,omitempty"`
	Return  *HintDump    `yaml:"return,omitempty"`
	Body    []string     `yaml:"body,omitempty"`
}

// TypedefDump is a top-level type alias.
type TypedefDump struct {
	Name    string       `yaml:"name"`
	Pos     PosDump      `yaml:"pos,omitempty"`
	Tparams []TparamDump `yaml:"tparams,omitempty"`
	Aliased *HintDump    `yaml:"aliased,omitempty"`
}

// DecodeFile reads and decodes a dump file into a program.
func DecodeFile(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dump %s: %w", path, err)
	}
	return Decode(data, path)
}

// Decode decodes dump content from bytes. The file argument overrides the
// dump's own file field when non-empty and is used in error messages.
func Decode(data []byte, file string) (*ast.Program, error) {
	var dump Dump
	if err := yaml.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("parsing dump %s: %w", file, err)
	}
	if file == "" {
		file = dump.File
	}
	prog := &ast.Program{File: file}
	for i, d := range dump.Declarations {
		decl, err := d.convert()
		if err != nil {
			return nil, fmt.Errorf("dump %s: declaration %d: %w", file, i, err)
		}
		prog.Declarations = append(prog.Declarations, decl)
	}
	return prog, nil
}

func (d DeclDump) convert() (ast.Declaration, error) {
	switch {
	case d.Class != nil:
		return d.Class.convert()
	case d.Typedef != nil:
		return d.Typedef.convert()
	case d.Function != nil:
		return d.Function.convert()
	default:
		return nil, fmt.Errorf("empty declaration entry")
	}
}

func identTok(pos PosDump, name string) token.Token {
	return token.Token{Type: token.IDENT, Lexeme: name, Literal: name, Line: pos.Line, Column: pos.Col}
}

func ident(pos PosDump, name string) *ast.Identifier {
	return &ast.Identifier{Token: identTok(pos, name), Value: name}
}

func classKind(s string) (ast.ClassKind, error) {
	switch s {
	case "", string(ast.ClassKindClass):
		return ast.ClassKindClass, nil
	case string(ast.ClassKindInterface):
		return ast.ClassKindInterface, nil
	case string(ast.ClassKindTrait):
		return ast.ClassKindTrait, nil
	case string(ast.ClassKindEnum):
		return ast.ClassKindEnum, nil
	default:
		return "", fmt.Errorf("unknown class kind %q", s)
	}
}

func variance(s string) (ast.Variance, error) {
	switch s {
	case "":
		return ast.Invariant, nil
	case string(ast.Covariant), "+":
		return ast.Covariant, nil
	case string(ast.Contravariant), "-":
		return ast.Contravariant, nil
	default:
		return "", fmt.Errorf("unknown variance %q", s)
	}
}

func reifyKind(s string) (ast.ReifyKind, error) {
	switch s {
	case "":
		return ast.Erased, nil
	case string(ast.SoftReified):
		return ast.SoftReified, nil
	case string(ast.Reified):
		return ast.Reified, nil
	default:
		return "", fmt.Errorf("unknown reify kind %q", s)
	}
}

func constraintKind(s string) (ast.ConstraintKind, error) {
	switch s {
	case string(ast.ConstraintAs):
		return ast.ConstraintAs, nil
	case string(ast.ConstraintSuper):
		return ast.ConstraintSuper, nil
	case string(ast.ConstraintEqual):
		return ast.ConstraintEqual, nil
	default:
		return "", fmt.Errorf("unknown constraint kind %q", s)
	}
}

func (c *ClassDump) convert() (*ast.ClassDeclaration, error) {
	kind, err := classKind(c.Kind)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", c.Name, err)
	}
	cls := &ast.ClassDeclaration{
		Token: identTok(c.Pos, c.Name),
		Kind:  kind,
		Name:  ident(c.Pos, c.Name),
	}
	if cls.TypeParams, err = convertTparams(c.Tparams); err != nil {
		return nil, fmt.Errorf("class %s: %w", c.Name, err)
	}
	if cls.Extends, err = convertHints(c.Extends); err != nil {
		return nil, fmt.Errorf("class %s: extends: %w", c.Name, err)
	}
	if cls.Implements, err = convertHints(c.Implements); err != nil {
		return nil, fmt.Errorf("class %s: implements: %w", c.Name, err)
	}
	if cls.Uses, err = convertHints(c.Uses); err != nil {
		return nil, fmt.Errorf("class %s: uses: %w", c.Name, err)
	}
	if cls.WhereConstraints, err = convertWhere(c.Where); err != nil {
		return nil, fmt.Errorf("class %s: %w", c.Name, err)
	}
	for _, v := range c.Vars {
		mv := &ast.MemberVariable{
			Token:  identTok(v.Pos, v.Name),
			Name:   ident(v.Pos, v.Name),
			Static: v.Static,
		}
		if mv.Type, err = convertHintPtr(v.Type); err != nil {
			return nil, fmt.Errorf("class %s: var %s: %w", c.Name, v.Name, err)
		}
		cls.Vars = append(cls.Vars, mv)
	}
	for _, m := range c.Methods {
		md, err := m.convert()
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}
		cls.Methods = append(cls.Methods, md)
	}
	return cls, nil
}

func (m *MethodDump) convert() (*ast.MethodDeclaration, error) {
	md := &ast.MethodDeclaration{
		Token:    identTok(m.Pos, m.Name),
		Name:     ident(m.Pos, m.Name),
		Static:   m.Static,
		Abstract: m.Abstract,
	}
	var err error
	if md.TypeParams, err = convertTparams(m.Tparams); err != nil {
		return nil, fmt.Errorf("method %s: %w", m.Name, err)
	}
	if md.WhereConstraints, err = convertWhere(m.Where); err != nil {
		return nil, fmt.Errorf("method %s: %w", m.Name, err)
	}
	if md.Params, err = convertParams(m.Params); err != nil {
		return nil, fmt.Errorf("method %s: %w", m.Name, err)
	}
	if md.ReturnType, err = convertHintPtr(m.Return); err != nil {
		return nil, fmt.Errorf("method %s: return: %w", m.Name, err)
	}
	md.Body = convertBody(m.Pos, m.Body)
	return md, nil
}

func (f *FunctionDump) convert() (*ast.FunctionDeclaration, error) {
	fd := &ast.FunctionDeclaration{
		Token: identTok(f.Pos, f.Name),
		Name:  ident(f.Pos, f.Name),
	}
	var err error
	if fd.TypeParams, err = convertTparams(f.Tparams); err != nil {
		return nil, fmt.Errorf("function %s: %w", f.Name, err)
	}
	if fd.WhereConstraints, err = convertWhere(f.Where); err != nil {
		return nil, fmt.Errorf("function %s: %w", f.Name, err)
	}
	if fd.Params, err = convertParams(f.Params); err != nil {
		return nil, fmt.Errorf("function %s: %w", f.Name, err)
	}
	if fd.ReturnType, err = convertHintPtr(f.Return); err != nil {
		return nil, fmt.Errorf("function %s: return: %w", f.Name, err)
	}
	fd.Body = convertBody(f.Pos, f.Body)
	return fd, nil
}

func (t *TypedefDump) convert() (*ast.TypedefDeclaration, error) {
	td := &ast.TypedefDeclaration{
		Token: identTok(t.Pos, t.Name),
		Name:  ident(t.Pos, t.Name),
	}
	var err error
	if td.TypeParams, err = convertTparams(t.Tparams); err != nil {
		return nil, fmt.Errorf("typedef %s: %w", t.Name, err)
	}
	if td.Aliased, err = convertHintPtr(t.Aliased); err != nil {
		return nil, fmt.Errorf("typedef %s: %w", t.Name, err)
	}
	return td, nil
}

func convertTparams(dumps []TparamDump) ([]*ast.TypeParameter, error) {
	var out []*ast.TypeParameter
	for _, d := range dumps {
		tp := &ast.TypeParameter{
			Token: identTok(d.Pos, d.Name),
			Name:  ident(d.Pos, d.Name),
		}
		var err error
		if tp.Variance, err = variance(d.Variance); err != nil {
			return nil, fmt.Errorf("tparam %s: %w", d.Name, err)
		}
		if tp.Reify, err = reifyKind(d.Reify); err != nil {
			return nil, fmt.Errorf("tparam %s: %w", d.Name, err)
		}
		if tp.Parameters, err = convertTparams(d.Tparams); err != nil {
			return nil, fmt.Errorf("tparam %s: %w", d.Name, err)
		}
		for _, c := range d.Constraints {
			kind, err := constraintKind(c.Kind)
			if err != nil {
				return nil, fmt.Errorf("tparam %s: %w", d.Name, err)
			}
			hint, err := c.Type.convert()
			if err != nil {
				return nil, fmt.Errorf("tparam %s: constraint: %w", d.Name, err)
			}
			tp.Constraints = append(tp.Constraints, &ast.TypeConstraint{
				Token: identTok(c.Pos, c.Kind),
				Kind:  kind,
				Type:  hint,
			})
		}
		for _, a := range d.Attributes {
			tp.UserAttributes = append(tp.UserAttributes, &ast.UserAttribute{
				Token: identTok(d.Pos, a),
				Name:  ident(d.Pos, a),
			})
		}
		out = append(out, tp)
	}
	return out, nil
}

func convertWhere(dumps []WhereDump) ([]*ast.WhereConstraint, error) {
	var out []*ast.WhereConstraint
	for _, d := range dumps {
		kind, err := constraintKind(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("where constraint: %w", err)
		}
		left, err := d.Left.convert()
		if err != nil {
			return nil, fmt.Errorf("where constraint: %w", err)
		}
		right, err := d.Right.convert()
		if err != nil {
			return nil, fmt.Errorf("where constraint: %w", err)
		}
		out = append(out, &ast.WhereConstraint{
			Token: identTok(d.Pos, d.Kind),
			Kind:  kind,
			Left:  left,
			Right: right,
		})
	}
	return out, nil
}

func convertParams(dumps []ParamDump) ([]*ast.Parameter, error) {
	var out []*ast.Parameter
	for _, d := range dumps {
		p := &ast.Parameter{
			Token: identTok(d.Pos, d.Name),
			Name:  ident(d.Pos, d.Name),
		}
		var err error
		if p.Type, err = convertHintPtr(d.Type); err != nil {
			return nil, fmt.Errorf("param %s: %w", d.Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func convertBody(pos PosDump, stmts []string) *ast.Block {
	if len(stmts) == 0 {
		return nil
	}
	block := &ast.Block{Token: identTok(pos, "{")}
	for _, s := range stmts {
		block.Statements = append(block.Statements, &ast.OpaqueStatement{
			Token: identTok(pos, s),
			Text:  s,
		})
	}
	return block
}

func convertHints(dumps []HintDump) ([]ast.Hint, error) {
	var out []ast.Hint
	for _, d := range dumps {
		h, err := d.convert()
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func convertHintPtr(d *HintDump) (ast.Hint, error) {
	if d == nil {
		return nil, nil
	}
	return d.convert()
}

func (d HintDump) convert() (ast.Hint, error) {
	switch {
	case d.Applied != nil:
		args, err := convertHints(d.Applied.Args)
		if err != nil {
			return nil, err
		}
		return &ast.AppliedRef{
			Token: identTok(d.Pos, d.Applied.Name),
			Name:  ident(d.Pos, d.Applied.Name),
			Args:  args,
		}, nil
	case d.Abstract != nil:
		args, err := convertHints(d.Abstract.Args)
		if err != nil {
			return nil, err
		}
		return &ast.AbstractRef{
			Token: identTok(d.Pos, d.Abstract.Name),
			Name:  d.Abstract.Name,
			Args:  args,
		}, nil
	case d.Prim != "":
		return &ast.PrimRef{Token: identTok(d.Pos, d.Prim), Name: d.Prim}, nil
	case d.Wildcard:
		return &ast.WildcardHint{Token: identTok(d.Pos, "_")}, nil
	default:
		return nil, fmt.Errorf("empty hint")
	}
}
