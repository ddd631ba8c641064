// Package properties implements the typed key/value schema attached to
// brushes and things, and the reconciliation of schema drift between a saved
// document and the running application.
package properties

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Type identifies the payload of a Value. The set is closed; codecs and
// editors switch exhaustively over it.
type Type uint8

// Value type tags. The numeric values are part of the on-disk format and
// must not be reordered.
const (
	TypeBool Type = iota
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeU128
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeI128
	TypeF32
	TypeF64
	TypeString
)

// Valid returns true for a known type tag.
func (t Type) Valid() bool {
	return t <= TypeString
}

// String returns a human-readable type name.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeU8:
		return "u8"
	case TypeU16:
		return "u16"
	case TypeU32:
		return "u32"
	case TypeU64:
		return "u64"
	case TypeU128:
		return "u128"
	case TypeI8:
		return "i8"
	case TypeI16:
		return "i16"
	case TypeI32:
		return "i32"
	case TypeI64:
		return "i64"
	case TypeI128:
		return "i128"
	case TypeF32:
		return "f32"
	case TypeF64:
		return "f64"
	case TypeString:
		return "string"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Value is a tagged union over the property types. Values are comparable;
// two values are equal when their tag and payload match. Integer payloads of
// every width share the 128-bit slot, signed ones in two's complement.
type Value struct {
	typ Type
	b   bool
	u   uint128.Uint128
	f   float64
	s   string
}

// Type returns the value's type tag.
func (v Value) Type() Type {
	return v.typ
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{typ: TypeBool, b: b}
}

// U8 creates an unsigned 8-bit value.
func U8(n uint8) Value {
	return Value{typ: TypeU8, u: uint128.From64(uint64(n))}
}

// U16 creates an unsigned 16-bit value.
func U16(n uint16) Value {
	return Value{typ: TypeU16, u: uint128.From64(uint64(n))}
}

// U32 creates an unsigned 32-bit value.
func U32(n uint32) Value {
	return Value{typ: TypeU32, u: uint128.From64(uint64(n))}
}

// U64 creates an unsigned 64-bit value.
func U64(n uint64) Value {
	return Value{typ: TypeU64, u: uint128.From64(n)}
}

// U128 creates an unsigned 128-bit value.
func U128(n uint128.Uint128) Value {
	return Value{typ: TypeU128, u: n}
}

// I8 creates a signed 8-bit value.
func I8(n int8) Value {
	return Value{typ: TypeI8, u: from64Signed(int64(n))}
}

// I16 creates a signed 16-bit value.
func I16(n int16) Value {
	return Value{typ: TypeI16, u: from64Signed(int64(n))}
}

// I32 creates a signed 32-bit value.
func I32(n int32) Value {
	return Value{typ: TypeI32, u: from64Signed(int64(n))}
}

// I64 creates a signed 64-bit value.
func I64(n int64) Value {
	return Value{typ: TypeI64, u: from64Signed(n)}
}

// I128 creates a signed 128-bit value from its two's-complement halves.
func I128(hi int64, lo uint64) Value {
	return Value{typ: TypeI128, u: uint128.New(lo, uint64(hi))}
}

// F32 creates a 32-bit float value.
func F32(f float32) Value {
	return Value{typ: TypeF32, f: float64(f)}
}

// F64 creates a 64-bit float value.
func F64(f float64) Value {
	return Value{typ: TypeF64, f: f}
}

// Text creates a string value.
func Text(s string) Value {
	return Value{typ: TypeString, s: s}
}

// Zero returns the zero value of the given type.
func Zero(t Type) Value {
	return Value{typ: t}
}

// AsBool returns the boolean payload.
func (v Value) AsBool() bool { return v.b }

// AsU64 returns the low 64 bits of an unsigned payload.
func (v Value) AsU64() uint64 { return v.u.Lo }

// AsU128 returns the full unsigned payload.
func (v Value) AsU128() uint128.Uint128 { return v.u }

// AsI64 returns the signed payload truncated to 64 bits.
func (v Value) AsI64() int64 { return int64(v.u.Lo) }

// AsI128 returns the signed payload as two's-complement halves.
func (v Value) AsI128() (hi int64, lo uint64) {
	return int64(v.u.Hi), v.u.Lo
}

// AsF32 returns the 32-bit float payload.
func (v Value) AsF32() float32 { return float32(v.f) }

// AsF64 returns the 64-bit float payload.
func (v Value) AsF64() float64 { return v.f }

// AsString returns the text payload.
func (v Value) AsString() string { return v.s }

// String formats the value for display.
func (v Value) String() string {
	switch v.typ {
	case TypeBool:
		return fmt.Sprintf("%t", v.b)
	case TypeU8, TypeU16, TypeU32, TypeU64:
		return fmt.Sprintf("%d", v.u.Lo)
	case TypeU128:
		return v.u.String()
	case TypeI8, TypeI16, TypeI32, TypeI64:
		return fmt.Sprintf("%d", int64(v.u.Lo))
	case TypeI128:
		if int64(v.u.Hi) < 0 {
			// Two's-complement negate for display.
			neg := uint128.Max.Sub(v.u).Add64(1)
			return "-" + neg.String()
		}
		return v.u.String()
	case TypeF32:
		return fmt.Sprintf("%g", float32(v.f))
	case TypeF64:
		return fmt.Sprintf("%g", v.f)
	case TypeString:
		return v.s
	default:
		return fmt.Sprintf("<%s>", v.typ)
	}
}

// from64Signed sign-extends n into the 128-bit slot.
func from64Signed(n int64) uint128.Uint128 {
	if n < 0 {
		return uint128.New(uint64(n), ^uint64(0))
	}
	return uint128.From64(uint64(n))
}
