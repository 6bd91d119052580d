package ast

import (
	"fmt"

	"github.com/cloudcmds/candle/token"
)

// String renders the node in the fully parenthesized prefix form spec.md
// §6 specifies for the `parse` subcommand.
func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return token.FormatNumberLiteral(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// String renders "(<op.lexeme> <r>)".
func (u *Unary) String() string {
	return fmt.Sprintf("(%s %s)", u.Operator.Lexeme, u.Right.String())
}

// String renders "(<op.lexeme> <l> <r>)".
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Operator.Lexeme, b.Left.String(), b.Right.String())
}

// String renders "(group <e>)".
func (g *Grouping) String() string {
	return fmt.Sprintf("(group %s)", g.Inner.String())
}
