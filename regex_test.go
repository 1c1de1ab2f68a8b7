package microre

import "testing"

func mustGroupString(t *testing.T, c *Captures, i int) (string, bool) {
	t.Helper()
	return c.GroupString(i)
}

func TestScenarioWordAndRest(t *testing.T) {
	re := MustCompile(`(\w+)\s+(.+)`)
	c := re.CapturesString("abc   123-XYZ")
	if c == nil {
		t.Fatal("expected match")
	}
	if g, _ := mustGroupString(t, c, 1); g != "abc" {
		t.Errorf("group 1 = %q, want %q", g, "abc")
	}
	if g, _ := mustGroupString(t, c, 2); g != "123-XYZ" {
		t.Errorf("group 2 = %q, want %q", g, "123-XYZ")
	}
}

func TestScenarioRepeatedGroupKeepsLastIteration(t *testing.T) {
	re := MustCompile(`(ab)+`)
	c := re.CapturesString("abab")
	if c == nil {
		t.Fatal("expected match")
	}
	if g, ok := c.GroupString(1); !ok || g != "ab" {
		t.Errorf("group 1 = %q, ok=%v, want %q", g, ok, "ab")
	}
}

func TestScenarioNonParticipatingOptionalGroup(t *testing.T) {
	re := MustCompile(`(ab)?c`)
	c := re.CapturesString("c")
	if c == nil {
		t.Fatal("expected match")
	}
	if _, ok := c.GroupString(1); ok {
		t.Errorf("group 1 should be absent")
	}
}

func TestScenarioEmptyGroup(t *testing.T) {
	re := MustCompile(`a()b`)
	c := re.CapturesString("ab")
	if c == nil {
		t.Fatal("expected match")
	}
	g, ok := c.GroupString(1)
	if !ok || g != "" {
		t.Errorf("group 1 = %q, ok=%v, want empty string present", g, ok)
	}
}

func TestScenarioNestedGroups(t *testing.T) {
	re := MustCompile(`(a)(b(c))(d)`)
	c := re.CapturesString("abcd")
	if c == nil {
		t.Fatal("expected match")
	}
	want := []string{"abcd", "a", "bc", "c", "d"}
	for i, w := range want {
		g, ok := c.Group(i)
		if !ok && i != 0 {
			t.Errorf("group %d: expected present", i)
			continue
		}
		if string(g) != w {
			t.Errorf("group %d = %q, want %q", i, g, w)
		}
	}
	if c.NumGroups() != 4 {
		t.Errorf("NumGroups() = %d, want 4", c.NumGroups())
	}
}

func TestScenarioNegatedClass(t *testing.T) {
	re := MustCompile(`[^0-9]+`)
	if !re.IsMatchString("abc_") {
		t.Error("expected match on abc_")
	}
	if re.IsMatchString("abc3") {
		t.Error("expected no match on abc3 (whole-string)")
	}
}

func TestDotMatchesNewline(t *testing.T) {
	re := MustCompile(`a.c`)
	if !re.IsMatchString("a\nc") {
		t.Error(`"." should match newline`)
	}
}

func TestIsMatchCapturesAgreement(t *testing.T) {
	patterns := []string{`(\w+)\s+(.+)`, `(ab)+`, `(ab)?c`, `a()b`, `[^0-9]+`, `a.c`, `(a|b)*c`}
	inputs := []string{"abc   123-XYZ", "abab", "c", "ab", "abc_", "a\nc", "aababbc"}

	for _, p := range patterns {
		re := MustCompile(p)
		for _, in := range inputs {
			isMatch := re.IsMatchString(in)
			c := re.CapturesString(in)
			if isMatch != (c != nil) {
				t.Errorf("%q on %q: IsMatch=%v but Captures present=%v", p, in, isMatch, c != nil)
			}
			if c != nil {
				whole, _ := c.Group(0)
				if string(whole) != in {
					t.Errorf("%q on %q: group 0 = %q, want %q", p, in, whole, in)
				}
			}
		}
	}
}

func TestEmptyPattern(t *testing.T) {
	re := MustCompile("")
	if !re.IsMatchString("") {
		t.Error("empty pattern should match empty string")
	}
	if re.IsMatchString("a") {
		t.Error("empty pattern should not match non-empty string")
	}
}

func TestAlternation(t *testing.T) {
	re := MustCompile(`(ab|cd)ef`)
	if !re.IsMatchString("abef") {
		t.Error("expected match on abef")
	}
	if !re.IsMatchString("cdef") {
		t.Error("expected match on cdef")
	}
	if re.IsMatchString("abcdef") {
		t.Error("should not match abcdef")
	}
}

func TestQuantifiers(t *testing.T) {
	star := MustCompile(`ab*c`)
	if !star.IsMatchString("ac") || !star.IsMatchString("abbbc") {
		t.Error("ab*c quantifier failure")
	}
	plus := MustCompile(`ab+c`)
	if plus.IsMatchString("ac") || !plus.IsMatchString("abc") {
		t.Error("ab+c quantifier failure")
	}
	qmark := MustCompile(`ab?c`)
	if !qmark.IsMatchString("ac") || !qmark.IsMatchString("abc") {
		t.Error("ab?c quantifier failure")
	}
}

func TestPresetClasses(t *testing.T) {
	d := MustCompile(`\d+`)
	if !d.IsMatchString("1234") || d.IsMatchString("12a4") {
		t.Error(`\d+ failure`)
	}
	w := MustCompile(`\w+`)
	if !w.IsMatchString("abc_123") || w.IsMatchString("abc 123") {
		t.Error(`\w+ failure`)
	}
	s := MustCompile(`a\sb`)
	if !s.IsMatchString("a b") || !s.IsMatchString("a\tb") {
		t.Error(`\s failure`)
	}
}
