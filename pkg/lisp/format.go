package lisp

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/clarete/lispinho/pkg/internal/lfmt"
	"github.com/clarete/lispinho/pkg/symbol"
)

// Format writes a source-like representation of v to w, using table to
// translate symbols.  Procedures print as #<primitive name> and
// #<lambda params body>.
func Format(w io.Writer, v LVal, table symbol.Table) (int, error) {
	switch v.Type() {
	case LNil:
		return io.WriteString(w, "()")
	case LNumber:
		x, _ := GetNumber(v)
		return io.WriteString(w, FormatNumber(x))
	case LBool:
		if ok, _ := GetBool(v); ok {
			return io.WriteString(w, "#t")
		}
		return io.WriteString(w, "#f")
	case LSymbol:
		id, _ := GetSymbol(v)
		sym, ok := table.Symbol(id)
		if !ok {
			return 0, fmt.Errorf("uninterned symbol: %v", uint64(id))
		}
		return io.WriteString(w, sym)
	case LList:
		cells, _ := GetList(v)
		return formatList(w, cells, table)
	case LPrimitive:
		id, _, _ := GetPrimitive(v)
		return fmt.Fprintf(w, "#<primitive %s>", symbol.String(id, table))
	case LLambda:
		fn, _ := GetLambda(v)
		cw := lfmt.NewCountingWriter(w)
		_, err := cw.WriteString("#<lambda (")
		if err != nil {
			return cw.N(), err
		}
		for i, id := range fn.Params {
			if i > 0 {
				_, err = cw.WriteString(" ")
				if err != nil {
					return cw.N(), err
				}
			}
			_, err = cw.WriteString(symbol.String(id, table))
			if err != nil {
				return cw.N(), err
			}
		}
		_, err = cw.WriteString(") ")
		if err != nil {
			return cw.N(), err
		}
		_, err = cw.DeferCount(func(w io.Writer) (int, error) { return Format(w, fn.Body, table) })
		if err != nil {
			return cw.N(), err
		}
		_, err = cw.WriteString(">")
		return cw.N(), err
	default:
		return 0, fmt.Errorf("unrecognized type: %v", v.Type())
	}
}

func formatList(w io.Writer, cells []LVal, table symbol.Table) (int, error) {
	cw := lfmt.NewCountingWriter(w)
	_, err := cw.WriteString("(")
	if err != nil {
		return cw.N(), err
	}
	for i := range cells {
		if i > 0 {
			_, err = cw.WriteString(" ")
			if err != nil {
				return cw.N(), err
			}
		}
		_, err = cw.DeferCount(func(w io.Writer) (int, error) { return Format(w, cells[i], table) })
		if err != nil {
			return cw.N(), err
		}
	}
	_, err = cw.WriteString(")")
	return cw.N(), err
}

// FormatNumber renders x in its shortest form.  Exponent notation is only
// used for magnitudes of 1e21 and above.
func FormatNumber(x float64) string {
	if math.Abs(x) < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Sprint returns the result of Format as a string.  Symbols unknown to table
// are rendered as diagnostics instead of failing.
func Sprint(v LVal, table symbol.Table) string {
	var b strings.Builder
	Format(&b, v, symbol.ResolveUnknown("", table))
	return b.String()
}
