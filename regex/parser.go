package regex

import "github.com/dekarrin/clrp/clrperr"

// astParser is the recursive-descent construction that turns a flat token
// sequence into the annotated AST, grounded on
// original_source/clrp/lexer/regex.py's PLY grammar actions: alt, concat,
// zero_or_more, one_or_more, zero_or_one, group, positive_set,
// negative_set, wildcard, char, escape_char, set_item, set_items.
//
// Grammar (precedence low to high): alt -> concat ('|' concat)*;
// concat -> repeat+; repeat -> atom ('*'|'+'|'?')?; atom -> CHAR | '.' |
// '(' alt ')' | '[' '^'? set_items ']' | '\' CHAR.
type astParser struct {
	tokens []Token
	pos    int
	build  *builder
}

func (p *astParser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *astParser) advance() Token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

func syntaxErr(pos int, reason string) error {
	return &clrperr.RegexSyntax{Pos: pos, Reason: reason}
}

// parseAlt parses the whole regex; top-level entry point.
func (p *astParser) parseAlt() (node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.Tag != TagAlt {
			return left, nil
		}
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = newAlt(left, right)
	}
}

func (p *astParser) parseConcat() (node, error) {
	first, err := p.parseRepeat()
	if err != nil {
		return nil, err
	}
	result := first
	for {
		t, ok := p.peek()
		if !ok || t.Tag == TagAlt || t.Tag == TagRParen || t.Tag == TagRBracket {
			return result, nil
		}
		next, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		result = p.build.newConcatNode(result, next)
	}
}

func (p *astParser) parseRepeat() (node, error) {
	a, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	t, ok := p.peek()
	if !ok {
		return a, nil
	}
	switch t.Tag {
	case TagStar:
		p.advance()
		return p.build.newZeroOrMoreNode(a), nil
	case TagPlus:
		p.advance()
		return p.build.newOneOrMoreNode(a), nil
	case TagOpt:
		p.advance()
		return newZeroOrOne(a), nil
	default:
		return a, nil
	}
}

func (p *astParser) parseAtom() (node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, syntaxErr(p.pos, "unexpected end of pattern")
	}

	switch t.Tag {
	case TagLParen:
		p.advance()
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		close, ok := p.peek()
		if !ok || close.Tag != TagRParen {
			return nil, syntaxErr(p.pos, "expected ')'")
		}
		p.advance()
		return inner, nil

	case TagLBracket:
		return p.parseBracket()

	case TagDot:
		p.advance()
		return p.build.newWildcardNode(), nil

	case TagSlash:
		p.advance()
		c, ok := p.peek()
		if !ok || c.Tag != TagChar {
			return nil, syntaxErr(p.pos, "expected character after '\\'")
		}
		p.advance()
		return p.build.newChar(escapeChar(c.Match)), nil

	case TagChar:
		p.advance()
		return p.build.newChar(t.Match[0]), nil

	default:
		return nil, syntaxErr(t.Pos, "unexpected token "+t.Tag.String())
	}
}

// parseBracket handles "[...]" and "[^...]", building either a PositiveSet
// or a NegativeSet from the enclosed items (§3, §9).
func (p *astParser) parseBracket() (node, error) {
	p.advance() // consume '['

	negate := false
	if t, ok := p.peek(); ok && t.Tag == TagNegate {
		negate = true
		p.advance()
	}

	var items []byte
	for {
		t, ok := p.peek()
		if !ok {
			return nil, syntaxErr(p.pos, "unterminated bracket expression")
		}
		if t.Tag == TagRBracket {
			break
		}

		lo, err := p.parseSetItemChar()
		if err != nil {
			return nil, err
		}

		if nt, ok := p.peek(); ok && nt.Tag == TagTo {
			p.advance()
			hi, err := p.parseSetItemChar()
			if err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, syntaxErr(t.Pos, "invalid range: end precedes start")
			}
			for c := lo; c <= hi; c++ {
				items = append(items, c)
				if c == 255 {
					break
				}
			}
		} else {
			items = append(items, lo)
		}
	}

	close, ok := p.peek()
	if !ok || close.Tag != TagRBracket {
		return nil, syntaxErr(p.pos, "expected ']'")
	}
	p.advance()

	if negate {
		return p.build.newNegativeSetNode(items), nil
	}
	return p.build.newPositiveSetNode(items), nil
}

func (p *astParser) parseSetItemChar() (byte, error) {
	t, ok := p.peek()
	if !ok {
		return 0, syntaxErr(p.pos, "unterminated bracket expression")
	}
	if t.Tag == TagSlash {
		p.advance()
		c, ok := p.peek()
		if !ok || c.Tag != TagChar {
			return 0, syntaxErr(p.pos, "expected character after '\\'")
		}
		p.advance()
		return escapeChar(c.Match), nil
	}
	if t.Tag != TagChar && t.Tag != TagTo {
		// Any token text is a literal set member outside of control tokens
		// handled above; TagTo only matters as an infix operator between
		// two set items, checked by the caller.
		p.advance()
		return t.Match[0], nil
	}
	p.advance()
	return t.Match[0], nil
}

// escapeChar expands "\s", "\r", "\n" to their literal byte; every other
// "\X" is a literal escape of X itself, recovered from the original's
// escape_char (original_source/clrp/lexer/ast.py, regex.py).
func escapeChar(match string) byte {
	switch match {
	case "s":
		return ' '
	case "r":
		return '\r'
	case "n":
		return '\n'
	default:
		return match[0]
	}
}
