// Package lisp defines LVal, the single value type shared by the reader and
// the evaluator.
package lisp

import (
	"math"

	"github.com/clarete/lispinho/pkg/symbol"
)

type LType uint8

const (
	// LNil is the empty list.  It is also the value returned when there is
	// nothing meaningful to return and it is false in a condition.
	LNil LType = iota
	// LNumber is a float64 value
	// Schema:
	// 	Data: math.Float64bits of the value
	LNumber
	// LBool is an integer representing a boolean value
	// Schema:
	//  Data: 0x0 if false and true otherwise
	LBool
	// LSymbol is a symbolic name.
	// Schema:
	// 	Data: symbol.ID value
	LSymbol
	// LList is a non-empty sequence of values.  It is both data and a call
	// form.
	// Schema:
	// 	Native: []LVal, never modified after construction
	LList
	// LPrimitive is a procedure implemented by the host.
	// Schema:
	// 	Data: symbol.ID naming the procedure
	// 	Native: implementation, opaque to this package
	LPrimitive
	// LLambda is a user-defined procedure.
	// Schema:
	// 	Native: *LambdaData
	LLambda
	numTypes
)

var typeStrings = [numTypes]string{
	LNil:       "nil",
	LNumber:    "number",
	LBool:      "boolean",
	LSymbol:    "symbol",
	LList:      "list",
	LPrimitive: "primitive",
	LLambda:    "lambda",
}

func (t LType) String() string {
	if t >= numTypes {
		return "invalid"
	}
	return typeStrings[t]
}

// LVal is a lisp value.  The zero LVal is a valid LNil value.
type LVal struct {
	typ    LType
	Data   uint64
	Native interface{}
}

// Type returns the variant of v.
func (v LVal) Type() LType {
	return v.typ
}

// LambdaData is the payload of an LLambda.  A lambda holds no reference to the
// environment it was created in.
type LambdaData struct {
	Params []symbol.ID
	Body   LVal
}

// Nil returns an LNil value
func Nil() LVal {
	return LVal{}
}

// IsNil return true if v is LNil
func IsNil(v LVal) bool {
	return v.typ == LNil
}

// Number returns an LNumber value
func Number(x float64) LVal {
	return LVal{
		typ:  LNumber,
		Data: math.Float64bits(x),
	}
}

// GetNumber returns the float64 value from v.
// GetNumber returns false if v is not LNumber.
func GetNumber(v LVal) (float64, bool) {
	if v.typ != LNumber {
		return 0, false
	}
	return math.Float64frombits(v.Data), true
}

// Bool returns an LBool with the truth value of ok.
func Bool(ok bool) LVal {
	if ok {
		return True()
	}
	return False()
}

// True returns a true LBool value.
func True() LVal {
	return LVal{
		typ:  LBool,
		Data: 1,
	}
}

// False returns a false LBool value.
func False() LVal {
	return LVal{
		typ:  LBool,
		Data: 0,
	}
}

// GetBool returns the truth value of v.  GetBool returns false as its second
// value if v is not LBool.
func GetBool(v LVal) (bool, bool) {
	if v.typ != LBool {
		return false, false
	}
	return v.Data != 0, true
}

// IsTrue returns true iff v represents a true value.  Only nil and the false
// boolean are false.
func IsTrue(v LVal) bool {
	return !isFalse(v)
}

func isFalse(v LVal) bool {
	return (v.typ == LBool && v.Data == 0) || IsNil(v)
}

// Symbol returns an LSymbol value
func Symbol(id symbol.ID) LVal {
	return LVal{
		typ:  LSymbol,
		Data: uint64(id),
	}
}

// GetSymbol extracts the symbol.ID from v.  GetSymbol returns false if v is
// not a LSymbol.
func GetSymbol(v LVal) (symbol.ID, bool) {
	if v.typ != LSymbol {
		return 0, false
	}
	return symbol.ID(v.Data), true
}

// List returns a list containing items.  List returns Nil when items is
// empty.  The caller must not modify items afterwards.
func List(items ...LVal) LVal {
	if len(items) == 0 {
		return Nil()
	}
	return LVal{
		typ:    LList,
		Native: items,
	}
}

// GetList returns the elements of v.  Nil is the empty list.  GetList returns
// false if v is neither LList nor LNil.  The returned slice is shared with v
// and must not be modified.
func GetList(v LVal) ([]LVal, bool) {
	switch v.typ {
	case LNil:
		return nil, true
	case LList:
		return v.Native.([]LVal), true
	default:
		return nil, false
	}
}

// Primitive returns an LPrimitive value named name.  The impl value is
// whatever the evaluator uses to run the procedure.
func Primitive(name symbol.ID, impl interface{}) LVal {
	return LVal{
		typ:    LPrimitive,
		Data:   uint64(name),
		Native: impl,
	}
}

// GetPrimitive returns the name and implementation of v.  GetPrimitive
// returns false if v is not LPrimitive.
func GetPrimitive(v LVal) (symbol.ID, interface{}, bool) {
	if v.typ != LPrimitive {
		return 0, nil, false
	}
	return symbol.ID(v.Data), v.Native, true
}

// Lambda returns an LLambda value.
func Lambda(params []symbol.ID, body LVal) LVal {
	return LVal{
		typ:    LLambda,
		Native: &LambdaData{Params: params, Body: body},
	}
}

// GetLambda returns the payload of v.  GetLambda returns false if v is not
// LLambda.
func GetLambda(v LVal) (*LambdaData, bool) {
	if v.typ != LLambda {
		return nil, false
	}
	return v.Native.(*LambdaData), true
}

// IsProcedure returns true if v can be applied.
func IsProcedure(v LVal) bool {
	return v.typ == LPrimitive || v.typ == LLambda
}

// Equal returns true if v1 is identical to v2.  Numbers compare numerically,
// lists element by element and lambdas by identity.
func Equal(v1 LVal, v2 LVal) bool {
	if v1.typ != v2.typ {
		return false
	}
	switch v1.typ {
	case LNil:
		return true
	case LNumber:
		x1, _ := GetNumber(v1)
		x2, _ := GetNumber(v2)
		return x1 == x2
	case LBool, LSymbol, LPrimitive:
		return v1.Data == v2.Data
	case LList:
		c1, _ := GetList(v1)
		c2, _ := GetList(v2)
		if len(c1) != len(c2) {
			return false
		}
		for i := range c1 {
			if !Equal(c1[i], c2[i]) {
				return false
			}
		}
		return true
	case LLambda:
		return v1.Native == v2.Native
	default:
		return false
	}
}
