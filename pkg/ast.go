package toki

// Phrase structure for toki sentences. The structs hold only what is
// intrinsic to each phrase; word order is the parser's concern.
//
// NP holds N (AdjP+) (PP+)
// PP -> P (NP without further PPs)
// VP holds V (AdvP+) (NP)
// S  holds (NP) (VP)
//
// A lone NP is a valid sentence that generates nothing.

// BareNounPhrase is a noun phrase that cannot carry prepositional phrases.
// Using it as the object of a PrepPhrase caps prepositional nesting at one
// level by construction.
type BareNounPhrase struct {
	Noun       Token
	Adjectives []Token
}

type PrepPhrase struct {
	Prep   Token
	Object BareNounPhrase
}

type NounPhrase struct {
	Noun       Token
	Adjectives []Token
	Preps      []PrepPhrase
}

type VerbPhrase struct {
	Verb    Token
	Adverbs []Token
	Object  NounPhrase
}

// Sentence is one subject noun phrase and one predicate verb phrase. Either
// side may be empty: the null token marks an unfilled head, and an absent
// subject is meaningful (imperatives).
type Sentence struct {
	Subject   NounPhrase
	Predicate VerbPhrase
}
