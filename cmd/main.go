package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/lintang-b-s/spellcheck/pkg/corpus"
	"github.com/lintang-b-s/spellcheck/pkg/speller"
)

var (
	corpusFile = flag.String("f", "corpus.txt", "corpus file buat frequency model (plain text atau .gz)")
)

func main() {
	flag.Parse()

	text, err := corpus.Load(*corpusFile)
	if err != nil {
		log.Fatal(err)
	}

	engine := speller.NewSpeller(speller.NewFrequencyModel())
	if err := engine.BuildCorpus(text); err != nil {
		log.Fatal(err)
	}

	inputs := []string{
		"Teh quick brown fox",
		"a splleing mistacke",
		"nothing wrong here",
	}

	for _, input := range inputs {
		corrected, err := engine.AutoCorrect(input)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(input, "->", corrected)

		items, err := engine.Check(input)
		if err != nil {
			log.Fatal(err)
		}
		for _, item := range items {
			fmt.Println("  ", item.SuspectedWord, item.SuggestedAlternatives)
		}
	}
}
