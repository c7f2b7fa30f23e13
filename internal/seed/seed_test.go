package seed

import (
	"errors"
	"sort"
	"testing"
)

func TestLanguagesSortedAndComplete(t *testing.T) {
	t.Parallel()

	langs := Languages()
	if !sort.StringsAreSorted(langs) {
		t.Errorf("Languages() not sorted: %v", langs)
	}

	want := []string{"arabic", "english", "german", "japanese", "korean"}
	if len(langs) != len(want) {
		t.Fatalf("Languages() = %v, want %v", langs, want)
	}
	for i, l := range want {
		if langs[i] != l {
			t.Errorf("Languages()[%d] = %q, want %q", i, langs[i], l)
		}
	}
}

func TestLevels(t *testing.T) {
	t.Parallel()

	levels, err := Levels("english")
	if err != nil {
		t.Fatalf("Levels(english) error: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("Levels(english) returned %d levels, want 3", len(levels))
	}
	if levels[0].Name != "Pemula (A1)" {
		t.Errorf("first level = %q, want %q", levels[0].Name, "Pemula (A1)")
	}
	for _, l := range levels {
		if len(l.Words) == 0 {
			t.Errorf("level %q has no words", l.Name)
		}
	}

	if _, err := Levels("klingon"); !errors.Is(err, ErrLanguageUnknown) {
		t.Errorf("Levels(klingon) error = %v, want ErrLanguageUnknown", err)
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	words, err := Words("german", "Pemula (A1)")
	if err != nil {
		t.Fatalf("Words error: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("Words returned empty pack")
	}
	for _, w := range words {
		if w.Front == "" || w.Back == "" {
			t.Errorf("pack entry with empty side: %+v", w)
		}
	}

	if _, err := Words("german", "Ultra"); !errors.Is(err, ErrLevelUnknown) {
		t.Errorf("unknown level error = %v, want ErrLevelUnknown", err)
	}
	if _, err := Words("klingon", "Pemula"); !errors.Is(err, ErrLanguageUnknown) {
		t.Errorf("unknown language error = %v, want ErrLanguageUnknown", err)
	}
}

func TestNoDuplicateFrontsWithinLevel(t *testing.T) {
	t.Parallel()

	for _, lang := range Languages() {
		levels, err := Levels(lang)
		if err != nil {
			t.Fatalf("Levels(%s): %v", lang, err)
		}
		for _, level := range levels {
			seen := make(map[string]bool, len(level.Words))
			for _, w := range level.Words {
				if seen[w.Front] {
					t.Errorf("%s/%s: duplicate front %q", lang, level.Name, w.Front)
				}
				seen[w.Front] = true
			}
		}
	}
}
