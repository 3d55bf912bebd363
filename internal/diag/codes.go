package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Input / source map
	IOInfo          Code = 100
	IOUnreadable    Code = 101
	IOBadEncoding   Code = 102
	IODuplicateFile Code = 103
	IOSpaceExhaust  Code = 104

	// Source hygiene
	SrcInfo        Code = 200
	SrcEmptyFile   Code = 201
	SrcHadBOM      Code = 202
	SrcCRLF        Code = 203
	SrcNoPragma    Code = 204
	SrcLongLine    Code = 205
	SrcUTF16Source Code = 206

	// Lexical (reserved for the external lexer)
	LexInfo Code = 1000

	// Syntax (reserved for the external parser)
	SynInfo Code = 2000

	// Semantic (reserved for the external analyzer passes)
	SemaInfo Code = 3000

	// Internal invariant violations surfaced as fatals
	InternalError Code = 9000
)

func (c Code) String() string {
	return fmt.Sprintf("E%04d", uint16(c))
}
