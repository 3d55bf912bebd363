package ast

import (
	"fmt"

	"helios/internal/source"
)

// Ty is one type annotation: a span and a tagged payload.
type Ty struct {
	Span source.Span
	Kind TyKind
}

// TyKind is the closed set of type payloads.
type TyKind interface{ tyKind() }

func (*TyAddress) tyKind()    {}
func (*TyBool) tyKind()       {}
func (*TyString) tyKind()     {}
func (*TyBytes) tyKind()      {}
func (*TyFixed) tyKind()      {}
func (*TyUFixed) tyKind()     {}
func (*TyInt) tyKind()        {}
func (*TyUInt) tyKind()       {}
func (*TyFixedBytes) tyKind() {}
func (*TyArray) tyKind()      {}
func (*TyFunction) tyKind()   {}
func (*TyMapping) tyKind()    {}
func (*TyCustom) tyKind()     {}

// TyAddress is `address` or `address payable`.
type TyAddress struct {
	Payable bool
}

type TyBool struct{}

type TyString struct{}

// TyBytes is the dynamic `bytes` type.
type TyBytes struct{}

// TyFixed is `fixedMxN`.
type TyFixed struct {
	M uint16
	N uint8
}

// TyUFixed is `ufixedMxN`.
type TyUFixed struct {
	M uint16
	N uint8
}

// TyInt is `intN`; N is the bit width, a multiple of 8 in 8..=256.
type TyInt struct {
	N uint16
}

// TyUInt is `uintN`.
type TyUInt struct {
	N uint16
}

// TyFixedBytes is `bytesN` with N in 1..=32.
type TyFixedBytes struct {
	N uint8
}

// TyArray is `T[]` or `T[size]`; Size is nil for dynamic arrays.
type TyArray struct {
	Elem *Ty
	Size *Expr
}

// TyFunction is a function type; reuses the function header shape.
type TyFunction struct {
	Header FunctionHeader
}

// TyMapping is `mapping(K maybeName => V maybeName)`.
type TyMapping struct {
	Key       *Ty
	KeyName   *source.Ident
	Value     *Ty
	ValueName *source.Ident
}

// TyCustom references a user-declared type by path.
type TyCustom struct {
	Path Path
}

// IsElementary reports whether the type is one of the built-in value
// types.
func (t *Ty) IsElementary() bool {
	switch t.Kind.(type) {
	case *TyAddress, *TyBool, *TyString, *TyBytes, *TyFixed, *TyUFixed,
		*TyInt, *TyUInt, *TyFixedBytes:
		return true
	}
	return false
}

// Describe returns a short name for diagnostics; custom paths need the
// session interner and render as "custom type".
func (t *Ty) Describe() string {
	switch k := t.Kind.(type) {
	case *TyAddress:
		if k.Payable {
			return "address payable"
		}
		return "address"
	case *TyBool:
		return "bool"
	case *TyString:
		return "string"
	case *TyBytes:
		return "bytes"
	case *TyFixed:
		return fmt.Sprintf("fixed%dx%d", k.M, k.N)
	case *TyUFixed:
		return fmt.Sprintf("ufixed%dx%d", k.M, k.N)
	case *TyInt:
		return fmt.Sprintf("int%d", k.N)
	case *TyUInt:
		return fmt.Sprintf("uint%d", k.N)
	case *TyFixedBytes:
		return fmt.Sprintf("bytes%d", k.N)
	case *TyArray:
		return k.Elem.Describe() + "[]"
	case *TyFunction:
		return "function type"
	case *TyMapping:
		return "mapping"
	case *TyCustom:
		return "custom type"
	}
	return "unknown type"
}
