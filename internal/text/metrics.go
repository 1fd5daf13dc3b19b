package text

import (
	"hash/fnv"
	"math"
	"unicode/utf8"
)

// A Metric reduces a token sequence to one intensity in [0, 1] per
// plotted token. Most metrics emit one value per word; the bigram
// metrics emit one per adjacent pair, so their output is one shorter.
type Metric struct {
	Name        string
	Description string
	Eval        func(words []string) []float64
}

// Metrics lists every metric in the order they are shown to the user.
// The first entry is the default.
var Metrics = []Metric{
	{"word-freq", "Word frequency, log scale. Common words score high.", wordFrequency},
	{"word-freq-linear", "Word frequency, linear scale.", wordFrequencyLinear},
	{"bigram-prob", "Likelihood of each word given the one before it.", bigramProbability},
	{"bigram-diversity", "How many distinct words follow each word.", bigramDiversity},
	{"word-length", "Word length relative to the longest word.", wordLength},
	{"word-position", "Position in the text, start to end.", wordPosition},
	{"unique-word", "A stable value per distinct word. Pair with the random scheme.", uniqueWord},
}

// MetricByName looks up a metric in the registry.
func MetricByName(name string) (Metric, bool) {
	for _, m := range Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// MetricNames returns the registry names in display order.
func MetricNames() []string {
	names := make([]string, len(Metrics))
	for i, m := range Metrics {
		names[i] = m.Name
	}
	return names
}

func wordFrequency(words []string) []float64 {
	if len(words) == 0 {
		return nil
	}
	freq := CountWords(words)
	out := make([]float64, len(words))
	maxLog := math.Log(float64(freq.Max()))
	if maxLog == 0 {
		// Every word occurs exactly once; all intensities stay at zero.
		return out
	}
	for i, w := range words {
		out[i] = math.Log(float64(freq[w])) / maxLog
	}
	return out
}

func wordFrequencyLinear(words []string) []float64 {
	if len(words) == 0 {
		return nil
	}
	freq := CountWords(words)
	max := float64(freq.Max())
	out := make([]float64, len(words))
	for i, w := range words {
		out[i] = float64(freq[w]) / max
	}
	return out
}

func bigramProbability(words []string) []float64 {
	pairs := Bigrams(words)
	if len(pairs) == 0 {
		return nil
	}
	trans := CountTransitions(words)
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = trans.Probability(p[0], p[1])
	}
	return out
}

func bigramDiversity(words []string) []float64 {
	pairs := Bigrams(words)
	if len(pairs) == 0 {
		return nil
	}
	trans := CountTransitions(words)
	max := float64(trans.MaxDiversity())
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = float64(trans.Diversity(p[0])) / max
	}
	return out
}

func wordLength(words []string) []float64 {
	if len(words) == 0 {
		return nil
	}
	maxLen := 0
	lengths := make([]int, len(words))
	for i, w := range words {
		lengths[i] = utf8.RuneCountInString(w)
		if lengths[i] > maxLen {
			maxLen = lengths[i]
		}
	}
	out := make([]float64, len(words))
	for i, n := range lengths {
		out[i] = float64(n) / float64(maxLen)
	}
	return out
}

func wordPosition(words []string) []float64 {
	out := make([]float64, len(words))
	total := float64(len(words))
	for i := range words {
		out[i] = float64(i) / total
	}
	return out
}

func uniqueWord(words []string) []float64 {
	out := make([]float64, len(words))
	for i, w := range words {
		out[i] = identityValue(w)
	}
	return out
}

// identityValue maps a token to a stable value in [0, 1) using FNV-1a.
// The same token always lands on the same value, in any text, on any
// platform. The top 53 bits of the hash become the float mantissa, so
// the result is uniform and never rounds up to 1.
func identityValue(word string) float64 {
	h := fnv.New64a()
	h.Write([]byte(word))
	return float64(h.Sum64()>>11) / float64(uint64(1)<<53)
}
