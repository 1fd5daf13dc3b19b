package text

import (
	"fmt"
	"os"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Load reads a whole text file into memory. Invalid UTF-8 sequences are
// replaced with U+FFFD so tokenization never trips over encoding junk in
// old ebook dumps.
func Load(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return strings.ToValidUTF8(string(raw), "�"), nil
}

// Tokenize splits raw text into an ordered sequence of word tokens.
// Punctuation marks are tokens of their own, as in the usual treebank
// convention, and tokens keep their original case. Blank input yields an
// empty sequence, not an error.
func Tokenize(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	// Tagging, entity extraction and sentence segmentation are dead weight
	// here; only the token stream matters.
	doc, err := prose.NewDocument(
		raw,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize text: %w", err)
	}

	toks := doc.Tokens()
	words := make([]string, 0, len(toks))
	for _, tok := range toks {
		words = append(words, tok.Text)
	}
	return words, nil
}

// Bigrams returns every ordered pair of adjacent tokens, in text order.
// Fewer than two tokens yield no pairs.
func Bigrams(words []string) [][2]string {
	if len(words) < 2 {
		return nil
	}
	pairs := make([][2]string, 0, len(words)-1)
	for i := 0; i+1 < len(words); i++ {
		pairs = append(pairs, [2]string{words[i], words[i+1]})
	}
	return pairs
}
