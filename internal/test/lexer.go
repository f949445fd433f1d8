package test

import (
	"math/rand"
	"strings"
)

const validLexemes = "e;o;sitelen;toki;li;kama;sama;sin;kin;soweli;suno42;x;nimi;\"toki!\";\"a longer string with a few words in it\";\"\";\"escaped \\\" quote\";5;321;5.5;0.25;."

// GetRandomLexemes joins size randomly chosen valid toki lexemes with spaces,
// for scanner benchmarks.
func GetRandomLexemes(size int) string {
	return GetRandomLexemesWithSep(size, " ")
}

func GetRandomLexemesWithSep(size int, sep string) string {
	valid := strings.Split(validLexemes, ";")

	var lexemes []string
	for len(lexemes) < size {
		lexemes = append(lexemes, valid[rand.Intn(len(valid))])
	}

	return strings.Join(lexemes, sep)
}
