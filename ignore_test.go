package diffx

import "testing"

func TestIgnoreSet(t *testing.T) {
	t.Run("MatchesExtension", func(t *testing.T) {
		set, err := NewIgnoreSet("*.bin")
		if err != nil {
			t.Fatalf("Failed to compile pattern: %v", err)
		}

		if !set.Match("data.bin") {
			t.Error("data.bin should match *.bin")
		}
		if set.Match("data.txt") {
			t.Error("data.txt should not match *.bin")
		}
	})

	t.Run("StarCrossesSeparators", func(t *testing.T) {
		set, err := NewIgnoreSet("*.bin")
		if err != nil {
			t.Fatalf("Failed to compile pattern: %v", err)
		}

		if !set.Match("nested/dir/data.bin") {
			t.Error("Patterns apply to the full relative path, * crosses /")
		}
	})

	t.Run("QuestionMark", func(t *testing.T) {
		set, err := NewIgnoreSet("file?.txt")
		if err != nil {
			t.Fatalf("Failed to compile pattern: %v", err)
		}

		if !set.Match("file1.txt") {
			t.Error("file1.txt should match file?.txt")
		}
		if set.Match("file10.txt") {
			t.Error("file10.txt should not match file?.txt")
		}
	})

	t.Run("CharacterClass", func(t *testing.T) {
		set, err := NewIgnoreSet("log[0-9].txt")
		if err != nil {
			t.Fatalf("Failed to compile pattern: %v", err)
		}

		if !set.Match("log5.txt") {
			t.Error("log5.txt should match log[0-9].txt")
		}
		if set.Match("logs.txt") {
			t.Error("logs.txt should not match log[0-9].txt")
		}
	})

	t.Run("NegatedCharacterClass", func(t *testing.T) {
		set, err := NewIgnoreSet("log[!0-9].txt")
		if err != nil {
			t.Fatalf("Failed to compile pattern: %v", err)
		}

		if !set.Match("logs.txt") {
			t.Error("logs.txt should match log[!0-9].txt")
		}
		if set.Match("log5.txt") {
			t.Error("log5.txt should not match log[!0-9].txt")
		}
	})

	t.Run("UnterminatedClassIsLiteral", func(t *testing.T) {
		set, err := NewIgnoreSet("file[")
		if err != nil {
			t.Fatalf("Unterminated class should compile as literal: %v", err)
		}

		if !set.Match("file[") {
			t.Error("file[ should match itself")
		}
		if set.Match("file") {
			t.Error("file should not match file[")
		}
	})

	t.Run("InvalidClassRange", func(t *testing.T) {
		if _, err := NewIgnoreSet("[z-a]"); err == nil {
			t.Error("Reversed class range should fail to compile")
		}
	})

	t.Run("MultiplePatterns", func(t *testing.T) {
		set, err := NewIgnoreSet("*.png", "*.zip", "tmp/*")
		if err != nil {
			t.Fatalf("Failed to compile patterns: %v", err)
		}

		for _, rel := range []string{"icon.png", "release.zip", "tmp/scratch.txt"} {
			if !set.Match(rel) {
				t.Errorf("%s should be ignored", rel)
			}
		}
		if set.Match("main.conf") {
			t.Error("main.conf should not be ignored")
		}
	})

	t.Run("NilSetMatchesNothing", func(t *testing.T) {
		var set *IgnoreSet
		if set.Match("anything") {
			t.Error("Nil set should match nothing")
		}
	})
}

func TestIsIgnored(t *testing.T) {
	t.Run("MatchesAnyPattern", func(t *testing.T) {
		patterns := []string{"*.png", "*.zip"}

		if !IsIgnored("shot.png", patterns) {
			t.Error("shot.png should be ignored")
		}
		if IsIgnored("notes.txt", patterns) {
			t.Error("notes.txt should not be ignored")
		}
	})

	t.Run("SkipsInvalidPatterns", func(t *testing.T) {
		patterns := []string{"[z-a]", "*.png"}

		if !IsIgnored("shot.png", patterns) {
			t.Error("Valid patterns should still apply")
		}
	})
}
