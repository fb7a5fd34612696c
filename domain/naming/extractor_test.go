package naming

import (
	"strings"
	"testing"
)

func TestFindFirstName_PriorityPatterns(t *testing.T) {
	e := NewExtractor()

	t.Run("name followed by here", func(t *testing.T) {
		name, ok := e.FindFirstName("Hey everyone, Sarah Johnson here, and today I'll be walking through the project.")
		if !ok {
			t.Fatal("expected a name to be found")
		}
		if name != "Sarah" {
			t.Errorf("expected Sarah, got %s", name)
		}
	})

	t.Run("my name is", func(t *testing.T) {
		name, ok := e.FindFirstName("Good morning. My name is Alice and I study robotics.")
		if !ok {
			t.Fatal("expected a name to be found")
		}
		if name != "Alice" {
			t.Errorf("expected Alice, got %s", name)
		}
	})

	t.Run("i am", func(t *testing.T) {
		name, ok := e.FindFirstName("Hi all, I am Marcus from the design group.")
		if !ok {
			t.Fatal("expected a name to be found")
		}
		if name != "Marcus" {
			t.Errorf("expected Marcus, got %s", name)
		}
	})

	t.Run("contracted i'm", func(t *testing.T) {
		name, ok := e.FindFirstName("Okay so I'm Priya and this is my intro video.")
		if !ok {
			t.Fatal("expected a name to be found")
		}
		if name != "Priya" {
			t.Errorf("expected Priya, got %s", name)
		}
	})

	t.Run("this is", func(t *testing.T) {
		name, ok := e.FindFirstName("Hello, this is Daniel recording my introduction.")
		if !ok {
			t.Fatal("expected a name to be found")
		}
		if name != "Daniel" {
			t.Errorf("expected Daniel, got %s", name)
		}
	})

	t.Run("pattern order beats text order", func(t *testing.T) {
		// "my name is" outranks "this is" even when "this is" occurs earlier
		// in the transcript.
		name, ok := e.FindFirstName("Hmm, this is Bob speaking... wait, my name is Alice actually.")
		if !ok {
			t.Fatal("expected a name to be found")
		}
		if name != "Alice" {
			t.Errorf("expected Alice (pattern priority), got %s", name)
		}
	})

	t.Run("returned name preserves source casing", func(t *testing.T) {
		name, _ := e.FindFirstName("McKenna here, hi everybody.")
		if name != "McKenna" {
			t.Errorf("expected McKenna, got %s", name)
		}
	})
}

func TestFindFirstName_Validation(t *testing.T) {
	e := NewExtractor()

	t.Run("stopword candidate is rejected", func(t *testing.T) {
		// "Today" matches "i am <word>" but is a stopword, so the match is
		// discarded and nothing else in the text qualifies.
		_, ok := e.FindFirstName("Hello there, I am Today going to explain the syllabus.")
		if ok {
			t.Error("expected no name for stopword candidate")
		}
	})

	t.Run("stopword rejection falls through to later patterns", func(t *testing.T) {
		name, ok := e.FindFirstName("I am Today recording because this is Wendy's assignment.")
		if !ok {
			t.Fatal("expected a name from a later pattern")
		}
		if name != "Wendy" {
			t.Errorf("expected Wendy, got %s", name)
		}
	})

	t.Run("short candidate is rejected", func(t *testing.T) {
		_, ok := e.FindFirstName("my name is Jo")
		if ok {
			t.Error("expected two-letter candidate to be rejected")
		}
	})

	t.Run("lowercase prose before here is not an introduction", func(t *testing.T) {
		// Case-insensitive matching lets "come here" satisfy the cue phrase,
		// but an earlier capitalized word must not leak out as the name.
		_, ok := e.FindFirstName("Martin always wanted to come here and talk about the weather.")
		if ok {
			t.Error("expected no name when only lowercase words precede the cue")
		}
	})

	t.Run("capitalized run before lowercase prose still names the speaker", func(t *testing.T) {
		name, ok := e.FindFirstName("Hey everyone, Sarah Johnson here with the weekly recap.")
		if !ok {
			t.Fatal("expected a name to be found")
		}
		if name != "Sarah" {
			t.Errorf("expected Sarah, got %s", name)
		}
	})

	t.Run("punctuation is stripped before validation", func(t *testing.T) {
		name, ok := e.FindFirstName("My name is Elena, and I'm a transfer student.")
		if !ok {
			t.Fatal("expected a name to be found")
		}
		if name != "Elena" {
			t.Errorf("expected Elena, got %s", name)
		}
	})

	t.Run("extra stopwords extend the default set", func(t *testing.T) {
		custom := NewExtractor("wendy")
		_, ok := custom.FindFirstName("this is Wendy")
		if ok {
			t.Error("expected configured extra stopword to be rejected")
		}
	})
}

func TestFindFirstName_Fallback(t *testing.T) {
	e := NewExtractor()

	t.Run("adjacent capitalized pair yields first word", func(t *testing.T) {
		name, ok := e.FindFirstName("Recording for week one. Jordan Matthews speaking about the course project.")
		if !ok {
			t.Fatal("expected fallback pair to match")
		}
		if name != "Jordan" {
			t.Errorf("expected Jordan, got %s", name)
		}
	})

	t.Run("single capitalized word is never returned", func(t *testing.T) {
		_, ok := e.FindFirstName("Jordan speaking about the course project for week one.")
		if ok {
			t.Error("fallback requires a pair; single word must not match")
		}
	})

	t.Run("pair with stopword second word is rejected", func(t *testing.T) {
		_, ok := e.FindFirstName("Jordan Today speaking about nothing in particular.")
		if ok {
			t.Error("expected pair with stopword to be rejected")
		}
	})

	t.Run("scan stops after fifteen words", func(t *testing.T) {
		filler := strings.Repeat("uh ", 16)
		_, ok := e.FindFirstName(filler + "Jordan Matthews speaking")
		if ok {
			t.Error("expected pair beyond the fifteen-word window to be ignored")
		}
	})
}

func TestFindFirstName_NoMatch(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		label      string
		transcript string
	}{
		{"filler only", "Um, okay, let's get started with the project overview."},
		{"empty transcript", ""},
		{"lowercase text", "hello everyone welcome to another recording about go modules"},
		{"stopword pair", "Hello Everyone, welcome to the first class of the semester."},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			if name, ok := e.FindFirstName(tc.transcript); ok {
				t.Errorf("expected no name, got %q", name)
			}
		})
	}
}

func TestFindFirstName_IntroWindow(t *testing.T) {
	e := NewExtractor()

	t.Run("pattern beyond 500 characters is ignored", func(t *testing.T) {
		padding := strings.Repeat("and so on ", 55) // > 500 chars of lowercase filler
		_, ok := e.FindFirstName(padding + "my name is Alice")
		if ok {
			t.Error("expected match outside the intro window to be ignored")
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		transcript := "Hey folks, Omar here with another update."
		a, _ := e.FindFirstName(transcript)
		b, _ := e.FindFirstName(transcript)
		if a != b {
			t.Errorf("expected identical results, got %q and %q", a, b)
		}
	})
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sarah", "Sarah"},
		{"O'Brien", "OBrien"},
		{"Mary Jane", "Mary-Jane"},
		{"  Anna  -  Lee  ", "Anna-Lee"},
		{"Jean-Luc", "Jean-Luc"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := SanitizeFilename(tc.in); got != tc.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
