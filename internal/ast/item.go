package ast

import (
	"helios/internal/source"
)

// Item is one top-level or contract-level declaration: a span, leading
// doc comments and a tagged payload.
type Item struct {
	Docs DocComments
	Span source.Span
	Kind ItemKind
}

// ItemKind is the closed set of item payloads.
type ItemKind interface{ itemKind() }

func (*PragmaDirective) itemKind()    {}
func (*ImportDirective) itemKind()    {}
func (*UsingDirective) itemKind()     {}
func (*ItemContract) itemKind()       {}
func (*ItemFunction) itemKind()       {}
func (*VariableDefinition) itemKind() {}
func (*ItemStruct) itemKind()         {}
func (*ItemEnum) itemKind()           {}
func (*ItemUdvt) itemKind()           {}
func (*ItemError) itemKind()          {}
func (*ItemEvent) itemKind()          {}

// PragmaDirective is `pragma <tokens>;`. Tokens stay raw; interpreting
// version constraints is the parser's concern.
type PragmaDirective struct {
	Tokens []PragmaToken
}

type PragmaToken struct {
	Symbol source.Symbol
	Span   source.Span
}

// ImportDirective is `import <path> ...;` in one of three shapes:
// plain (optional alias), an alias list, or a glob.
type ImportDirective struct {
	Path  StrLit
	Items ImportItems
}

// ImportItems is the closed set of import shapes.
type ImportItems interface{ importItems() }

// ImportPlain is `import "path"` or `import "path" as alias`.
type ImportPlain struct {
	Alias *source.Ident
}

// ImportAliases is `import {a, b as c} from "path"`.
type ImportAliases struct {
	Imports []ImportAlias
}

// ImportGlob is `import * as alias from "path"`.
type ImportGlob struct {
	Alias *source.Ident
}

func (*ImportPlain) importItems()   {}
func (*ImportAliases) importItems() {}
func (*ImportGlob) importItems()    {}

type ImportAlias struct {
	Name  source.Ident
	Alias *source.Ident
}

// UsingDirective is `using <list> for <ty>? global?;`.
type UsingDirective struct {
	List UsingList
	// Ty is nil for `using ... for *`.
	Ty     *Ty
	Global bool
}

// UsingList is either a single path or a braced list, optionally with
// user-defined operator bindings.
type UsingList interface{ usingList() }

type UsingSingle struct {
	Path Path
}

type UsingMultiple struct {
	Items []UsingItem
}

func (*UsingSingle) usingList()   {}
func (*UsingMultiple) usingList() {}

// UsingItem is one `path` or `path as <op>` entry. Op is BinOpInvalid
// when no operator binding is present.
type UsingItem struct {
	Path Path
	Op   BinOpKind
}

// ContractKind tags the four contract-like declarations.
type ContractKind uint8

const (
	ContractPlain ContractKind = iota
	ContractAbstract
	ContractInterface
	ContractLibrary
)

func (k ContractKind) String() string {
	switch k {
	case ContractPlain:
		return "contract"
	case ContractAbstract:
		return "abstract contract"
	case ContractInterface:
		return "interface"
	case ContractLibrary:
		return "library"
	}
	return "unknown"
}

// ItemContract is a contract, interface or library with its inheritance
// list and body items.
type ItemContract struct {
	Kind        ContractKind
	Name        source.Ident
	Inheritance []Modifier
	Body        []*Item
}

// FunctionKind tags function-like declarations.
type FunctionKind uint8

const (
	FnConstructor FunctionKind = iota
	FnFallback
	FnFunction
	FnModifier
	FnReceive
)

func (k FunctionKind) String() string {
	switch k {
	case FnConstructor:
		return "constructor"
	case FnFallback:
		return "fallback"
	case FnFunction:
		return "function"
	case FnModifier:
		return "modifier"
	case FnReceive:
		return "receive"
	}
	return "unknown"
}

// ItemFunction is any function-like item. Body is nil for declarations
// without a body (interface members, virtual stubs).
type ItemFunction struct {
	Kind   FunctionKind
	Header FunctionHeader
	Body   *Block
}

// FunctionHeader carries everything before a function body. The same
// shape backs function items, function types and modifiers, so
// parameter handling is written once downstream.
type FunctionHeader struct {
	// Name is nil for constructors, fallback, receive and function
	// types.
	Name       *source.Ident
	Parameters ParameterList
	Visibility Visibility
	Mutability StateMutability
	Modifiers  []Modifier
	Virtual    bool
	Override   *Override
	Returns    ParameterList
}

// Modifier is an invocation-like reference: a base contract in an
// inheritance list or a modifier on a function.
type Modifier struct {
	Name      Path
	Arguments CallArgs
}

// Override is `override` or `override(a, b.c)`.
type Override struct {
	Span  source.Span
	Paths []Path
}

// ParameterList is the shared parameter/return/field-list shape.
type ParameterList []*VariableDefinition

// VariableDefinition declares a variable: state variables, parameters,
// struct fields, try/catch returns.
type VariableDefinition struct {
	Span         source.Span
	Ty           Ty
	Visibility   Visibility
	Mutability   VarMutability
	DataLocation DataLocation
	Override     *Override
	Indexed      bool
	// Name is nil for unnamed parameters and return values.
	Name        *source.Ident
	Initializer *Expr
}

// ItemStruct is `struct Name { fields }`.
type ItemStruct struct {
	Name   source.Ident
	Fields []*VariableDefinition
}

// ItemEnum is `enum Name { variants }`.
type ItemEnum struct {
	Name     source.Ident
	Variants []source.Ident
}

// ItemUdvt is a user-defined value type: `type Name is uint256;`.
type ItemUdvt struct {
	Name source.Ident
	Ty   Ty
}

// ItemError is `error Name(params);`.
type ItemError struct {
	Name       source.Ident
	Parameters ParameterList
}

// ItemEvent is `event Name(params) anonymous?;`.
type ItemEvent struct {
	Name       source.Ident
	Parameters ParameterList
	Anonymous  bool
}

// Visibility of functions and variables. Zero means unspecified.
type Visibility uint8

const (
	VisibilityUnset Visibility = iota
	VisibilityPrivate
	VisibilityInternal
	VisibilityPublic
	VisibilityExternal
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityInternal:
		return "internal"
	case VisibilityPublic:
		return "public"
	case VisibilityExternal:
		return "external"
	}
	return ""
}

// StateMutability of functions. Zero means unspecified (non-payable).
type StateMutability uint8

const (
	MutUnset StateMutability = iota
	MutPure
	MutView
	MutPayable
)

func (m StateMutability) String() string {
	switch m {
	case MutPure:
		return "pure"
	case MutView:
		return "view"
	case MutPayable:
		return "payable"
	}
	return ""
}

// VarMutability of variables.
type VarMutability uint8

const (
	VarMutNone VarMutability = iota
	VarConstant
	VarImmutable
)

func (m VarMutability) String() string {
	switch m {
	case VarConstant:
		return "constant"
	case VarImmutable:
		return "immutable"
	}
	return ""
}

// DataLocation of reference-typed variables.
type DataLocation uint8

const (
	LocUnset DataLocation = iota
	LocStorage
	LocMemory
	LocCalldata
)

func (l DataLocation) String() string {
	switch l {
	case LocStorage:
		return "storage"
	case LocMemory:
		return "memory"
	case LocCalldata:
		return "calldata"
	}
	return ""
}
