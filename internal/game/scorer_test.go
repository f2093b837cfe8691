package game

import (
	"reflect"
	"testing"
)

func TestScorerScore(t *testing.T) {
	cases := []struct {
		name   string
		secret Code
		guess  Code
		want   Score
	}{
		{
			name:   "fully_wrong",
			secret: Code{Red, Green, Blue, Yellow},
			guess:  Code{Orange, Orange, Purple, Purple},
			want:   Score{},
		},
		{
			name:   "success",
			secret: Code{Red, Green, Blue, Yellow},
			guess:  Code{Red, Green, Blue, Yellow},
			want:   Score{MarkExact, MarkExact, MarkExact, MarkExact},
		},
		{
			name:   "match_all_colors_with_wrong_positions",
			secret: Code{Red, Green, Blue, Yellow},
			guess:  Code{Yellow, Blue, Green, Red},
			want:   Score{MarkPresent, MarkPresent, MarkPresent, MarkPresent},
		},
		{
			name:   "two_exact",
			secret: Code{Blue, Blue, Red, Purple},
			guess:  Code{Blue, Yellow, Yellow, Purple},
			want:   Score{MarkExact, MarkExact},
		},
		{
			name:   "exact_and_present",
			secret: Code{Red, Blue, Orange, Purple},
			guess:  Code{Blue, Yellow, Yellow, Purple},
			want:   Score{MarkExact, MarkPresent},
		},
		{
			name:   "count_each_peg_only_once",
			secret: Code{Red, Green, Orange, Purple},
			guess:  Code{Red, Red, Yellow, Yellow},
			want:   Score{MarkExact},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewScorer(tc.secret).Score(tc.guess)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("score(%v, %v) = %v, want %v", tc.secret, tc.guess, got, tc.want)
			}
		})
	}
}

func TestScoreExactCountMatchesAlignedPositions(t *testing.T) {
	secret := Code{Red, Red, Green, Blue}
	guess := Code{Red, Green, Green, Yellow}

	aligned := 0
	for i := 0; i < Size; i++ {
		if secret[i] == guess[i] {
			aligned++
		}
	}

	got := NewScorer(secret).Score(guess)
	if got.Exact() != aligned {
		t.Fatalf("exact = %d, want %d", got.Exact(), aligned)
	}
}

// Swapping secret and guess must preserve the counts by kind, even though
// the discovery order of present marks may differ.
func TestScoreCountsSymmetricUnderSwap(t *testing.T) {
	pairs := []struct{ a, b Code }{
		{Code{Red, Green, Blue, Yellow}, Code{Yellow, Blue, Green, Red}},
		{Code{Red, Red, Green, Blue}, Code{Green, Red, Red, Red}},
		{Code{Blue, Blue, Red, Purple}, Code{Blue, Yellow, Yellow, Purple}},
		{Code{Orange, Orange, Orange, Orange}, Code{Orange, Purple, Orange, Purple}},
	}
	for _, p := range pairs {
		ab := NewScorer(p.a).Score(p.b)
		ba := NewScorer(p.b).Score(p.a)
		if ab.Exact() != ba.Exact() || ab.Present() != ba.Present() {
			t.Fatalf("score(%v,%v)=%d/%d but score(%v,%v)=%d/%d",
				p.a, p.b, ab.Exact(), ab.Present(),
				p.b, p.a, ba.Exact(), ba.Present())
		}
	}
}

// A color held m times by the secret and n times by the guess, with no
// positional overlap, earns exactly min(m, n) present marks.
func TestScoreRepeatedColorCappedAtMultisetMin(t *testing.T) {
	secret := Code{Red, Red, Green, Blue}
	guess := Code{Yellow, Yellow, Red, Yellow}

	got := NewScorer(secret).Score(guess)
	if got.Exact() != 0 || got.Present() != 1 {
		t.Fatalf("got %d exact / %d present, want 0/1", got.Exact(), got.Present())
	}
}

func TestScoreTotalNeverExceedsSize(t *testing.T) {
	codes := []Code{
		{Red, Red, Red, Red},
		{Red, Green, Blue, Yellow},
		{Purple, Purple, Orange, Orange},
		{Green, Red, Green, Red},
	}
	for _, s := range codes {
		for _, g := range codes {
			if got := NewScorer(s).Score(g); len(got) > Size {
				t.Fatalf("score(%v, %v) has %d marks", s, g, len(got))
			}
		}
	}
}

func TestScoreIsWin(t *testing.T) {
	if !(Score{MarkExact, MarkExact, MarkExact, MarkExact}).IsWin() {
		t.Fatal("all-exact score should be a win")
	}
	if (Score{MarkExact, MarkExact, MarkExact, MarkPresent}).IsWin() {
		t.Fatal("score with a present mark is not a win")
	}
	if (Score{MarkExact, MarkExact, MarkExact}).IsWin() {
		t.Fatal("short score is not a win")
	}
}
