package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NickHellemans/monkeypreter/token"
)

func TestString_LetStatement(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name:  &Identifier{Token: token.Token{Type: token.IDENT, Literal: "myVar"}, Value: "myVar"},
				Value: &Identifier{Token: token.Token{Type: token.IDENT, Literal: "anotherVar"}, Value: "anotherVar"},
			},
		},
	}

	assert.Equal(t, "let myVar = anotherVar;", program.String())
}

func TestString_InfixNesting(t *testing.T) {
	ident := func(name string) *Identifier {
		return &Identifier{Token: token.Token{Type: token.IDENT, Literal: name}, Value: name}
	}

	// (a + b)
	inner := &InfixExpression{
		Token:    token.Token{Type: token.PLUS, Literal: "+"},
		Left:     ident("a"),
		Operator: "+",
		Right:    ident("b"),
	}
	// ((a + b) * c)
	outer := &InfixExpression{
		Token:    token.Token{Type: token.ASTERISK, Literal: "*"},
		Left:     inner,
		Operator: "*",
		Right:    ident("c"),
	}

	assert.Equal(t, "((a + b) * c)", outer.String())
}

func TestString_IfExpression(t *testing.T) {
	ident := func(name string) *Identifier {
		return &Identifier{Token: token.Token{Type: token.IDENT, Literal: name}, Value: name}
	}
	consequence := &BlockStatement{Statements: []Statement{
		&ExpressionStatement{Expression: ident("x")},
	}}
	ifExpr := &IfExpression{
		Token:       token.Token{Type: token.IF, Literal: "if"},
		Condition:   ident("cond"),
		Consequence: consequence,
	}

	assert.Equal(t, "ifcond x", ifExpr.String())
}

func TestString_ArrayAndIndex(t *testing.T) {
	one := &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "1"}, Value: 1}
	two := &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "2"}, Value: 2}
	arr := &ArrayLiteral{Elements: []Expression{one, two}}

	assert.Equal(t, "[1, 2]", arr.String())

	idx := &IndexExpression{Left: arr, Index: one}
	assert.Equal(t, "([1, 2][1])", idx.String())
}
