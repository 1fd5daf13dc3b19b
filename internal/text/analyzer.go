package text

// FreqTable counts occurrences of each distinct token. Tokens are
// case-sensitive: "The" and "the" are separate entries.
type FreqTable map[string]int

// CountWords builds a frequency table for the token sequence.
func CountWords(words []string) FreqTable {
	table := make(FreqTable, len(words)/2)
	for _, w := range words {
		table[w]++
	}
	return table
}

// Max returns the highest count in the table, or zero when it is empty.
func (t FreqTable) Max() int {
	max := 0
	for _, n := range t {
		if n > max {
			max = n
		}
	}
	return max
}

// Total returns the sum of all counts.
func (t FreqTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// TransitionTable records, for each token, how often each distinct
// successor follows it in the text.
type TransitionTable map[string]FreqTable

// CountTransitions builds a transition table from adjacent token pairs.
func CountTransitions(words []string) TransitionTable {
	table := make(TransitionTable)
	for _, pair := range Bigrams(words) {
		followers, ok := table[pair[0]]
		if !ok {
			followers = make(FreqTable)
			table[pair[0]] = followers
		}
		followers[pair[1]]++
	}
	return table
}

// Diversity returns the number of distinct successors seen after w.
func (t TransitionTable) Diversity(w string) int {
	return len(t[w])
}

// MaxDiversity returns the largest successor set size across all tokens.
func (t TransitionTable) MaxDiversity() int {
	max := 0
	for _, followers := range t {
		if len(followers) > max {
			max = len(followers)
		}
	}
	return max
}

// Probability returns P(second|first): the share of first's recorded
// successors that are second. A token never seen in first position has
// probability zero for every successor.
func (t TransitionTable) Probability(first, second string) float64 {
	followers, ok := t[first]
	if !ok {
		return 0
	}
	total := followers.Total()
	if total == 0 {
		return 0
	}
	return float64(followers[second]) / float64(total)
}
