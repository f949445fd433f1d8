package toki

// Mode is the parser's current phrase-assembly target. Toki pona particles
// announce what comes next, so a single forward pass with a mode switch per
// particle is enough: no lookahead, no backtracking.
type Mode int

const (
	ModeSubject Mode = iota
	ModeVerb
	ModeObject
	ModePrep
)

// Parser assembles the token sequence into sentences. Tokens that carry no
// trigger role (identifiers, literals, non-particle keywords) collect in a
// pending buffer; every trigger particle flushes the buffer into the slots of
// the mode it closes.
type Parser struct {
	tokens   []Token
	sentence Sentence
	buffer   []Token
	mode     Mode

	// phrase the current prepositional phrase hangs off, ModeSubject or
	// ModeObject; only meaningful while mode == ModePrep
	prepHome Mode
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse runs a parser over the whole token sequence.
func Parse(tokens []Token) ([]Sentence, error) {
	return NewParser(tokens).Run()
}

func (p *Parser) Run() ([]Sentence, error) {
	var sentences []Sentence

	for _, tok := range p.tokens {
		switch {
		case tok.IsKeyword(KeywordO) || tok.IsKeyword(KeywordLi):
			if p.mode == ModeObject || (p.mode == ModePrep && p.prepHome == ModeObject) {
				return nil, &GrammarError{
					Reason: "unimplemented: cannot use multiple predicates",
					Token:  tok,
				}
			}
			if p.mode == ModeVerb {
				return nil, &GrammarError{
					Reason: "unimplemented: cannot conjoin predicates",
					Token:  tok,
				}
			}

			p.flush()
			p.mode = ModeVerb

		case tok.IsKeyword(KeywordSin) || tok.IsKeyword(KeywordKin):
			if p.mode == ModeVerb {
				return nil, &GrammarError{
					Reason: "prepositions not allowed after verb phrases",
					Token:  tok,
				}
			}
			if p.mode == ModePrep {
				return nil, &GrammarError{
					Reason: "unimplemented: cannot conjoin prepositional phrases",
					Token:  tok,
				}
			}
			if len(p.buffer) == 0 {
				return nil, &GrammarError{
					Reason: "monadic preposition is not allowed",
					Token:  tok,
				}
			}

			p.flush()

			preps := p.prepList(p.mode)
			*preps = append(*preps, PrepPhrase{Prep: tok})

			p.prepHome = p.mode
			p.mode = ModePrep

		case tok.IsKeyword(KeywordE):
			if p.mode == ModeSubject || (p.mode == ModePrep && p.prepHome == ModeSubject) {
				return nil, &GrammarError{
					Reason: "invalid word order: object before verb",
					Token:  tok,
				}
			}

			p.flush()
			p.mode = ModeObject

		case tok.IsSeparator(SeparatorPeriod):
			p.flush()
			sentences = append(sentences, p.sentence)

			p.sentence = Sentence{}
			p.mode = ModeSubject

		default:
			p.buffer = append(p.buffer, tok)
		}
	}

	if p.mode != ModeSubject || len(p.buffer) > 0 {
		return nil, &GrammarError{
			Reason: "unterminated sentence at end of input",
		}
	}

	return sentences, nil
}

// flush commits the pending buffer into the slots of the current mode: the
// first buffered token becomes the head, the remainder become the modifiers
// in their original order. An empty buffer leaves the head null.
func (p *Parser) flush() {
	if len(p.buffer) == 0 {
		return
	}

	head, mods := p.slots(p.mode)
	*head = p.buffer[0]

	if len(p.buffer) >= 2 {
		*mods = append([]Token(nil), p.buffer[1:]...)
	}

	p.buffer = nil
}

// slots resolves the current mode to its head and modifier destinations
// inside the in-progress sentence. The pointers are used immediately by
// flush and never retained across a sentence reset.
func (p *Parser) slots(mode Mode) (head *Token, mods *[]Token) {
	switch mode {
	case ModeSubject:
		return &p.sentence.Subject.Noun, &p.sentence.Subject.Adjectives
	case ModeVerb:
		return &p.sentence.Predicate.Verb, &p.sentence.Predicate.Adverbs
	case ModeObject:
		return &p.sentence.Predicate.Object.Noun, &p.sentence.Predicate.Object.Adjectives
	default: // ModePrep
		preps := *p.prepList(p.prepHome)
		last := &preps[len(preps)-1]
		return &last.Object.Noun, &last.Object.Adjectives
	}
}

func (p *Parser) prepList(home Mode) *[]PrepPhrase {
	if home == ModeObject {
		return &p.sentence.Predicate.Object.Preps
	}

	return &p.sentence.Subject.Preps
}
