/*
File    : enact/typename/typename.go
*/

// Package typename holds the surface-syntax type model: the tree the
// typename parser builds directly from tokens, before semantic analysis
// resolves it into a types.Type. A Typename only describes shape — it
// never answers "what type is this", only "what did the user write".
package typename

import "github.com/enact-lang/enact/lexer"

// Kind identifies which Typename variant a value holds.
type Kind int

const (
	Basic Kind = iota
	Parametric
	Tuple
	Function
	Reference
	Optional
	Variable
)

func (k Kind) String() string {
	switch k {
	case Basic:
		return "Basic"
	case Parametric:
		return "Parametric"
	case Tuple:
		return "Tuple"
	case Function:
		return "Function"
	case Reference:
		return "Reference"
	case Optional:
		return "Optional"
	case Variable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// Typename is the common interface implemented by every surface-syntax
// type node. Clone returns a deep copy, so a Typename parsed once can be
// safely reused (e.g. a tuple's elements spread into a function's
// parameter list) without two owners aliasing the same nodes.
type Typename interface {
	Kind() Kind
	Name() string
	Where() lexer.Token
	Clone() Typename
}

// BasicTypename is a bare name reference, e.g. `Int`, `String`, `Widget`.
type BasicTypename struct {
	NameStr string
	WhereTok lexer.Token
}

func NewBasic(name string, where lexer.Token) *BasicTypename {
	return &BasicTypename{NameStr: name, WhereTok: where}
}

func (b *BasicTypename) Kind() Kind           { return Basic }
func (b *BasicTypename) Name() string         { return b.NameStr }
func (b *BasicTypename) Where() lexer.Token   { return b.WhereTok }
func (b *BasicTypename) Clone() Typename {
	return &BasicTypename{NameStr: b.NameStr, WhereTok: b.WhereTok}
}

// VariableTypename is a type-variable introduced with `$Name`, used in
// generic declarations.
type VariableTypename struct {
	NameStr  string
	WhereTok lexer.Token
}

func NewVariable(name string, where lexer.Token) *VariableTypename {
	return &VariableTypename{NameStr: name, WhereTok: where}
}

func (v *VariableTypename) Kind() Kind         { return Variable }
func (v *VariableTypename) Name() string       { return "$" + v.NameStr }
func (v *VariableTypename) Where() lexer.Token { return v.WhereTok }
func (v *VariableTypename) Clone() Typename {
	return &VariableTypename{NameStr: v.NameStr, WhereTok: v.WhereTok}
}

// ParametricTypename is a constructor typename applied to parameters,
// e.g. `Array[Int]`, `Map[String, Int]`.
type ParametricTypename struct {
	Constructor Typename
	Parameters  []Typename
	WhereTok    lexer.Token
	NameStr     string
}

func NewParametric(constructor Typename, parameters []Typename, where lexer.Token) *ParametricTypename {
	p := &ParametricTypename{Constructor: constructor, Parameters: parameters, WhereTok: where}
	p.NameStr = buildParametricName(constructor, parameters)
	return p
}

func buildParametricName(constructor Typename, parameters []Typename) string {
	name := constructor.Name() + "["
	for i, param := range parameters {
		if i > 0 {
			name += ", "
		}
		name += param.Name()
	}
	return name + "]"
}

func (p *ParametricTypename) Kind() Kind         { return Parametric }
func (p *ParametricTypename) Name() string       { return p.NameStr }
func (p *ParametricTypename) Where() lexer.Token { return p.WhereTok }
func (p *ParametricTypename) Clone() Typename {
	params := make([]Typename, len(p.Parameters))
	for i, param := range p.Parameters {
		params[i] = param.Clone()
	}
	return NewParametric(p.Constructor.Clone(), params, p.WhereTok)
}

// TupleTypename is an ordered list of element typenames. A single-element
// tuple collapses to its element during parsing, so any TupleTypename that
// survives has either zero elements (the unit type, `()`) or two or more.
type TupleTypename struct {
	Elements []Typename
	WhereTok lexer.Token
	NameStr  string
}

func NewTuple(elements []Typename, where lexer.Token) *TupleTypename {
	t := &TupleTypename{Elements: elements, WhereTok: where}
	t.NameStr = buildTupleName(elements)
	return t
}

func buildTupleName(elements []Typename) string {
	if len(elements) == 0 {
		return "()"
	}
	name := "("
	for i, elem := range elements {
		if i > 0 {
			name += ", "
		}
		name += elem.Name()
	}
	return name + ")"
}

func (t *TupleTypename) Kind() Kind         { return Tuple }
func (t *TupleTypename) Name() string       { return t.NameStr }
func (t *TupleTypename) Where() lexer.Token { return t.WhereTok }
func (t *TupleTypename) Clone() Typename {
	elems := make([]Typename, len(t.Elements))
	for i, e := range t.Elements {
		elems[i] = e.Clone()
	}
	return NewTuple(elems, t.WhereTok)
}

// IsUnit reports whether this tuple is the empty `()` unit typename.
func (t *TupleTypename) IsUnit() bool {
	return len(t.Elements) == 0
}

// FunctionTypename is `(A, B) => R` (or `A => R` for one parameter): an
// ordered parameter list and a return typename.
type FunctionTypename struct {
	ReturnTypename Typename
	Parameters     []Typename
	WhereTok       lexer.Token
	NameStr        string
}

func NewFunction(returnTypename Typename, parameters []Typename, where lexer.Token) *FunctionTypename {
	f := &FunctionTypename{ReturnTypename: returnTypename, Parameters: parameters, WhereTok: where}
	f.NameStr = buildFunctionName(returnTypename, parameters)
	return f
}

func buildFunctionName(returnTypename Typename, parameters []Typename) string {
	name := ""
	if len(parameters) == 1 {
		name = parameters[0].Name()
	} else {
		name = "("
		for i, p := range parameters {
			if i > 0 {
				name += ", "
			}
			name += p.Name()
		}
		name += ")"
	}
	return name + " => " + returnTypename.Name()
}

func (f *FunctionTypename) Kind() Kind         { return Function }
func (f *FunctionTypename) Name() string       { return f.NameStr }
func (f *FunctionTypename) Where() lexer.Token { return f.WhereTok }
func (f *FunctionTypename) Clone() Typename {
	params := make([]Typename, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Clone()
	}
	return NewFunction(f.ReturnTypename.Clone(), params, f.WhereTok)
}

// ReferenceTypename is `&[imm|mut]? [so|rc|gc]? T`. Permission and region
// tokens are optional; a zero-value lexer.Token in either field means the
// surface syntax omitted it.
type ReferenceTypename struct {
	Permission lexer.Token
	Region     lexer.Token
	Referent   Typename
	WhereTok   lexer.Token
	NameStr    string
}

func NewReference(permission, region lexer.Token, referent Typename, where lexer.Token) *ReferenceTypename {
	r := &ReferenceTypename{Permission: permission, Region: region, Referent: referent, WhereTok: where}
	r.NameStr = buildReferenceName(permission, region, referent)
	return r
}

func buildReferenceName(permission, region lexer.Token, referent Typename) string {
	name := "&"
	if permission.Lexeme != "" {
		name += permission.Lexeme + " "
	}
	if region.Lexeme != "" {
		name += region.Lexeme + " "
	}
	return name + referent.Name()
}

func (r *ReferenceTypename) Kind() Kind         { return Reference }
func (r *ReferenceTypename) Name() string       { return r.NameStr }
func (r *ReferenceTypename) Where() lexer.Token { return r.WhereTok }
func (r *ReferenceTypename) Clone() Typename {
	return NewReference(r.Permission, r.Region, r.Referent.Clone(), r.WhereTok)
}

// HasPermission reports whether an explicit imm/mut permission was
// written.
func (r *ReferenceTypename) HasPermission() bool {
	return r.Permission.Lexeme != ""
}

// HasRegion reports whether an explicit so/rc/gc region tag was written.
func (r *ReferenceTypename) HasRegion() bool {
	return r.Region.Lexeme != ""
}

// OptionalTypename is `?T`.
type OptionalTypename struct {
	Wrapped  Typename
	WhereTok lexer.Token
	NameStr  string
}

func NewOptional(wrapped Typename, where lexer.Token) *OptionalTypename {
	return &OptionalTypename{Wrapped: wrapped, WhereTok: where, NameStr: "?" + wrapped.Name()}
}

func (o *OptionalTypename) Kind() Kind         { return Optional }
func (o *OptionalTypename) Name() string       { return o.NameStr }
func (o *OptionalTypename) Where() lexer.Token { return o.WhereTok }
func (o *OptionalTypename) Clone() Typename {
	return NewOptional(o.Wrapped.Clone(), o.WhereTok)
}

// CloneAll deep-copies a slice of typenames, preserving order. Used when a
// tuple typename on the left of `=>` spreads its elements into a function
// typename's parameter list.
func CloneAll(typenames []Typename) []Typename {
	clones := make([]Typename, len(typenames))
	for i, t := range typenames {
		clones[i] = t.Clone()
	}
	return clones
}
