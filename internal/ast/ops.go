package ast

import (
	"helios/internal/source"
)

// BinOpKind tags binary operators. BinOpInvalid doubles as "no
// operator" in compound-assignment and using-for positions.
type BinOpKind uint8

const (
	BinOpInvalid BinOpKind = iota
	BinOpAdd               // +
	BinOpSub               // -
	BinOpMul               // *
	BinOpDiv               // /
	BinOpMod               // %
	BinOpPow               // **
	BinOpShl               // <<
	BinOpShr               // >>
	BinOpSar               // >>>
	BinOpBitAnd            // &
	BinOpBitOr             // |
	BinOpBitXor            // ^
	BinOpAnd               // &&
	BinOpOr                // ||
	BinOpEq                // ==
	BinOpNe                // !=
	BinOpLt                // <
	BinOpLe                // <=
	BinOpGt                // >
	BinOpGe                // >=
)

var binOpStrings = [...]string{
	BinOpInvalid: "<invalid>",
	BinOpAdd:     "+",
	BinOpSub:     "-",
	BinOpMul:     "*",
	BinOpDiv:     "/",
	BinOpMod:     "%",
	BinOpPow:     "**",
	BinOpShl:     "<<",
	BinOpShr:     ">>",
	BinOpSar:     ">>>",
	BinOpBitAnd:  "&",
	BinOpBitOr:   "|",
	BinOpBitXor:  "^",
	BinOpAnd:     "&&",
	BinOpOr:      "||",
	BinOpEq:      "==",
	BinOpNe:      "!=",
	BinOpLt:      "<",
	BinOpLe:      "<=",
	BinOpGt:      ">",
	BinOpGe:      ">=",
}

func (k BinOpKind) String() string {
	if int(k) < len(binOpStrings) {
		return binOpStrings[k]
	}
	return "<invalid>"
}

// BinOp is a located binary operator.
type BinOp struct {
	Span source.Span
	Kind BinOpKind
}

// UnOpKind tags unary operators, prefix and postfix.
type UnOpKind uint8

const (
	UnOpInvalid UnOpKind = iota
	UnOpNeg              // -x
	UnOpNot              // !x
	UnOpBitNot           // ~x
	UnOpPreInc           // ++x
	UnOpPreDec           // --x
	UnOpPostInc          // x++
	UnOpPostDec          // x--
)

var unOpStrings = [...]string{
	UnOpInvalid: "<invalid>",
	UnOpNeg:     "-",
	UnOpNot:     "!",
	UnOpBitNot:  "~",
	UnOpPreInc:  "++",
	UnOpPreDec:  "--",
	UnOpPostInc: "++",
	UnOpPostDec: "--",
}

func (k UnOpKind) String() string {
	if int(k) < len(unOpStrings) {
		return unOpStrings[k]
	}
	return "<invalid>"
}

// IsPostfix reports whether the operator follows its operand.
func (k UnOpKind) IsPostfix() bool {
	return k == UnOpPostInc || k == UnOpPostDec
}

// UnOp is a located unary operator.
type UnOp struct {
	Span source.Span
	Kind UnOpKind
}
