package generation

import (
	"strings"
	"testing"
)

// noopShuffler leaves the option order untouched so tests can assert
// exact positions.
type noopShuffler struct{}

func (noopShuffler) Shuffle(n int, swap func(i, j int)) {}

// permShuffler rearranges n elements into a fixed target permutation:
// after shuffling, position i holds the element that started at perm[i].
type permShuffler struct{ perm []int }

func (p permShuffler) Shuffle(n int, swap func(i, j int)) {
	pos := make([]int, n)
	cur := make([]int, n)
	for i := 0; i < n; i++ {
		pos[i] = i
		cur[i] = i
	}
	for i := 0; i < n; i++ {
		j := pos[p.perm[i]]
		if j != i {
			swap(i, j)
			cur[i], cur[j] = cur[j], cur[i]
			pos[cur[i]] = i
			pos[cur[j]] = j
		}
	}
}

func rawQuestion(question, correct string, wrongs ...string) RawQuestion {
	anyWrongs := make([]any, len(wrongs))
	for i, w := range wrongs {
		anyWrongs[i] = w
	}
	return RawQuestion{
		Question:      question,
		CorrectAnswer: correct,
		WrongAnswers:  anyWrongs,
	}
}

func TestNormalizeOptionCardinality(t *testing.T) {
	n := NewNormalizer(noopShuffler{})

	tests := []struct {
		name   string
		wrongs []string
	}{
		{name: "no wrongs", wrongs: nil},
		{name: "one wrong", wrongs: []string{"A"}},
		{name: "two wrongs", wrongs: []string{"A", "B"}},
		{name: "three wrongs", wrongs: []string{"A", "B", "C"}},
		{name: "five wrongs", wrongs: []string{"A", "B", "C", "D", "E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := n.Normalize(rawQuestion("Q?", "X", tt.wrongs...), 0)
			if len(q.Options) != OptionCount {
				t.Errorf("got %d options, want %d", len(q.Options), OptionCount)
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
				t.Errorf("CorrectIndex %d out of range", q.CorrectIndex)
			}
			if q.Options[q.CorrectIndex] != "X" {
				t.Errorf("Options[%d] = %q, want %q", q.CorrectIndex, q.Options[q.CorrectIndex], "X")
			}
		})
	}
}

func TestNormalizePadding(t *testing.T) {
	n := NewNormalizer(noopShuffler{})
	q := n.Normalize(rawQuestion("Capital of France?", "Paris"), 0)

	want := []string{"Paris", FillerOption, FillerOption, FillerOption}
	for i, opt := range want {
		if q.Options[i] != opt {
			t.Errorf("Options[%d] = %q, want %q", i, q.Options[i], opt)
		}
	}
	if q.CorrectIndex != 0 {
		t.Errorf("CorrectIndex = %d, want 0", q.CorrectIndex)
	}
}

func TestNormalizeSurplusWrongsDropped(t *testing.T) {
	n := NewNormalizer(noopShuffler{})
	q := n.Normalize(rawQuestion("Q?", "X", "A", "B", "C", "D", "E"), 0)

	want := []string{"X", "A", "B", "C"}
	for i, opt := range want {
		if q.Options[i] != opt {
			t.Errorf("Options[%d] = %q, want %q", i, q.Options[i], opt)
		}
	}
}

func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			perm := make([]int, n)
			copy(perm, base)
			out = append(out, perm)
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			recurse(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	recurse(0)
	return out
}

func TestNormalizeCorrectIndexAllPermutations(t *testing.T) {
	for _, perm := range permutations(OptionCount) {
		n := NewNormalizer(permShuffler{perm: perm})
		q := n.Normalize(rawQuestion("Q?", "X", "A", "B", "C"), 0)

		if q.Options[q.CorrectIndex] != "X" {
			t.Errorf("perm %v: Options[%d] = %q, want %q", perm, q.CorrectIndex, q.Options[q.CorrectIndex], "X")
		}
	}
}

func TestNormalizeEmptyCorrectAnswer(t *testing.T) {
	n := NewNormalizer(noopShuffler{})
	q := n.Normalize(rawQuestion("Q?", "", "A", "B", "C"), 0)

	if len(q.Options) != OptionCount {
		t.Fatalf("got %d options, want %d", len(q.Options), OptionCount)
	}
	// No option can match an empty correct answer; the index degrades
	// to the first slot.
	if q.CorrectIndex != 0 {
		t.Errorf("CorrectIndex = %d, want 0", q.CorrectIndex)
	}
}

func TestNormalizeWrongTypedFields(t *testing.T) {
	n := NewNormalizer(noopShuffler{})

	raw := RawQuestion{
		Question:      42.0,
		CorrectAnswer: true,
		WrongAnswers:  "not an array",
		Explanation:   []any{"nope"},
	}
	q := n.Normalize(raw, 3)

	if q.Question != "" {
		t.Errorf("Question = %q, want empty", q.Question)
	}
	want := []string{FillerOption, FillerOption, FillerOption, FillerOption}
	for i, opt := range want {
		if q.Options[i] != opt {
			t.Errorf("Options[%d] = %q, want %q", i, q.Options[i], opt)
		}
	}
	if q.CorrectIndex != 0 {
		t.Errorf("CorrectIndex = %d, want 0", q.CorrectIndex)
	}
	if q.Explanation != nil {
		t.Errorf("Explanation = %v, want nil", *q.Explanation)
	}
	if q.OrderInQuiz != 3 {
		t.Errorf("OrderInQuiz = %d, want 3", q.OrderInQuiz)
	}
}

func TestNormalizeFieldTruncation(t *testing.T) {
	n := NewNormalizer(noopShuffler{})

	long := strings.Repeat("x", MaxFieldLength+500)
	raw := rawQuestion(long, "X", "A", "B", "C")
	raw.Explanation = long

	q := n.Normalize(raw, 0)
	if len(q.Question) != MaxFieldLength {
		t.Errorf("len(Question) = %d, want %d", len(q.Question), MaxFieldLength)
	}
	if q.Explanation == nil {
		t.Fatal("Explanation is nil")
	}
	if len(*q.Explanation) != MaxFieldLength {
		t.Errorf("len(Explanation) = %d, want %d", len(*q.Explanation), MaxFieldLength)
	}
}

func TestNormalizeDropsEmptyWrongAnswers(t *testing.T) {
	n := NewNormalizer(noopShuffler{})

	raw := RawQuestion{
		Question:      "Q?",
		CorrectAnswer: "X",
		WrongAnswers:  []any{"A", "", "   ", 7, "B"},
	}
	q := n.Normalize(raw, 0)

	want := []string{"X", "A", "B", FillerOption}
	for i, opt := range want {
		if q.Options[i] != opt {
			t.Errorf("Options[%d] = %q, want %q", i, q.Options[i], opt)
		}
	}
}
