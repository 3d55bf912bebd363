package source

// Symbol is an interned string handle. Equality of symbols is equality
// of the underlying strings within one session; comparisons never touch
// the string data.
type Symbol uint32

// NoSymbol is the handle of the empty string.
const NoSymbol Symbol = 0

// Language keywords occupy a fixed, contiguous block of handles so
// keyword checks are range comparisons, not table lookups. The block is
// pre-interned into every Interner at construction time.
const (
	KwAbstract Symbol = iota + 1
	KwAddress
	KwAnonymous
	KwAs
	KwAssembly
	KwBool
	KwBreak
	KwBytes
	KwCalldata
	KwCase
	KwCatch
	KwConstant
	KwConstructor
	KwContinue
	KwContract
	KwDays
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwEmit
	KwEnum
	KwError
	KwEther
	KwEvent
	KwExternal
	KwFallback
	KwFalse
	KwFixed
	KwFor
	KwFunction
	KwGwei
	KwHours
	KwIf
	KwImmutable
	KwImport
	KwIndexed
	KwInt
	KwInterface
	KwInternal
	KwIs
	KwLet
	KwLibrary
	KwMapping
	KwMemory
	KwMinutes
	KwModifier
	KwNew
	KwOverride
	KwPayable
	KwPragma
	KwPrivate
	KwPublic
	KwPure
	KwReceive
	KwReturn
	KwReturns
	KwRevert
	KwSeconds
	KwStorage
	KwString
	KwStruct
	KwSwitch
	KwThis
	KwTrue
	KwTry
	KwType
	KwUfixed
	KwUint
	KwUnchecked
	KwUnicode
	KwUsing
	KwView
	KwVirtual
	KwWeeks
	KwWei
	KwWhile

	kwFirst = KwAbstract
	kwLast  = KwWhile
)

// Well-known non-keyword names, pre-interned right after the keywords.
const (
	SymUnderscore Symbol = kwLast + 1 + iota
	SymSolidity
	SymAbicoder
	SymExperimental
	SymLeave
	SymEvmasm
	SymMemorySafe

	symLast = SymMemorySafe
)

// preinterned maps every fixed handle to its text; index 0 is the empty
// string for NoSymbol.
var preinterned = [symLast + 1]string{
	KwAbstract:    "abstract",
	KwAddress:     "address",
	KwAnonymous:   "anonymous",
	KwAs:          "as",
	KwAssembly:    "assembly",
	KwBool:        "bool",
	KwBreak:       "break",
	KwBytes:       "bytes",
	KwCalldata:    "calldata",
	KwCase:        "case",
	KwCatch:       "catch",
	KwConstant:    "constant",
	KwConstructor: "constructor",
	KwContinue:    "continue",
	KwContract:    "contract",
	KwDays:        "days",
	KwDefault:     "default",
	KwDelete:      "delete",
	KwDo:          "do",
	KwElse:        "else",
	KwEmit:        "emit",
	KwEnum:        "enum",
	KwError:       "error",
	KwEther:       "ether",
	KwEvent:       "event",
	KwExternal:    "external",
	KwFallback:    "fallback",
	KwFalse:       "false",
	KwFixed:       "fixed",
	KwFor:         "for",
	KwFunction:    "function",
	KwGwei:        "gwei",
	KwHours:       "hours",
	KwIf:          "if",
	KwImmutable:   "immutable",
	KwImport:      "import",
	KwIndexed:     "indexed",
	KwInt:         "int",
	KwInterface:   "interface",
	KwInternal:    "internal",
	KwIs:          "is",
	KwLet:         "let",
	KwLibrary:     "library",
	KwMapping:     "mapping",
	KwMemory:      "memory",
	KwMinutes:     "minutes",
	KwModifier:    "modifier",
	KwNew:         "new",
	KwOverride:    "override",
	KwPayable:     "payable",
	KwPragma:      "pragma",
	KwPrivate:     "private",
	KwPublic:      "public",
	KwPure:        "pure",
	KwReceive:     "receive",
	KwReturn:      "return",
	KwReturns:     "returns",
	KwRevert:      "revert",
	KwSeconds:     "seconds",
	KwStorage:     "storage",
	KwString:      "string",
	KwStruct:      "struct",
	KwSwitch:      "switch",
	KwThis:        "this",
	KwTrue:        "true",
	KwTry:         "try",
	KwType:        "type",
	KwUfixed:      "ufixed",
	KwUint:        "uint",
	KwUnchecked:   "unchecked",
	KwUnicode:     "unicode",
	KwUsing:       "using",
	KwView:        "view",
	KwVirtual:     "virtual",
	KwWeeks:       "weeks",
	KwWei:         "wei",
	KwWhile:       "while",

	SymUnderscore:   "_",
	SymSolidity:     "solidity",
	SymAbicoder:     "abicoder",
	SymExperimental: "experimental",
	SymLeave:        "leave",
	SymEvmasm:       "evmasm",
	SymMemorySafe:   "memory-safe",
}

// IsKeyword reports whether the symbol is a reserved language keyword.
func (s Symbol) IsKeyword() bool {
	return kwFirst <= s && s <= kwLast
}

func (s Symbol) IsValid() bool {
	return s != NoSymbol
}

// Ident is a located identifier. Two idents with the same name are not
// equal unless their spans match too.
type Ident struct {
	Name Symbol
	Span Span
}

// NewIdent builds an ident from pre-interned or freshly interned text.
func NewIdent(name Symbol, span Span) Ident {
	return Ident{Name: name, Span: span}
}

// Resolve returns the ident's text via the owning interner.
func (i Ident) Resolve(in *Interner) string {
	return in.MustResolve(i.Name)
}

// IsKeyword reports whether the ident names a reserved keyword.
func (i Ident) IsKeyword() bool {
	return i.Name.IsKeyword()
}
