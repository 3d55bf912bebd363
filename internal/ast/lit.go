package ast

import (
	"helios/internal/source"
)

// LitKind tags literal payloads. The literal text is kept interned and
// uninterpreted; numeric evaluation happens downstream.
type LitKind uint8

const (
	LitBool LitKind = iota
	LitNumber
	LitRational
	LitStr
	LitUnicodeStr
	LitHexStr
	LitAddress
	// LitErr marks a literal the lexer recovered from; its symbol holds
	// the raw text.
	LitErr
)

func (k LitKind) String() string {
	switch k {
	case LitBool:
		return "bool"
	case LitNumber:
		return "number"
	case LitRational:
		return "rational"
	case LitStr:
		return "string"
	case LitUnicodeStr:
		return "unicode string"
	case LitHexStr:
		return "hex string"
	case LitAddress:
		return "address"
	case LitErr:
		return "<error>"
	}
	return "unknown"
}

// Lit is a literal token: its span, interned source text and kind.
type Lit struct {
	Span   source.Span
	Symbol source.Symbol
	Kind   LitKind
}

// SubDenomination is the optional unit suffix of a numeric literal.
type SubDenomination uint8

const (
	DenomNone SubDenomination = iota
	DenomWei
	DenomGwei
	DenomEther
	DenomSeconds
	DenomMinutes
	DenomHours
	DenomDays
	DenomWeeks
	DenomYears
)

var denomStrings = [...]string{
	DenomNone:    "",
	DenomWei:     "wei",
	DenomGwei:    "gwei",
	DenomEther:   "ether",
	DenomSeconds: "seconds",
	DenomMinutes: "minutes",
	DenomHours:   "hours",
	DenomDays:    "days",
	DenomWeeks:   "weeks",
	DenomYears:   "years",
}

func (d SubDenomination) String() string {
	if int(d) < len(denomStrings) {
		return denomStrings[d]
	}
	return ""
}

// Multiplier returns the wei/seconds factor the suffix applies.
func (d SubDenomination) Multiplier() uint64 {
	switch d {
	case DenomWei:
		return 1
	case DenomGwei:
		return 1e9
	case DenomEther:
		return 1e18
	case DenomSeconds:
		return 1
	case DenomMinutes:
		return 60
	case DenomHours:
		return 3600
	case DenomDays:
		return 86400
	case DenomWeeks:
		return 604800
	case DenomYears:
		return 31536000
	}
	return 1
}
