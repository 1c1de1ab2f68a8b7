package microre

import "testing"

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		kind    ErrorKind
	}{
		{"a**", DanglingQuantifier},
		{"(ab", UnbalancedParen},
		{`\`, UnexpectedEof},
		{"[abc", UnbalancedClass},
		{"*a", DanglingQuantifier},
		{"|*", DanglingQuantifier},
		{"a+?", DanglingQuantifier},
		{"a)", UnbalancedParen},
		{"(a))", UnbalancedParen},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q): expected error, got nil", tt.pattern)
			}
			re, ok := err.(*Error)
			if !ok {
				t.Fatalf("Compile(%q): error is %T, want *Error", tt.pattern, err)
			}
			if re.Kind != tt.kind {
				t.Errorf("Compile(%q): kind = %v, want %v", tt.pattern, re.Kind, tt.kind)
			}
		})
	}
}

func TestCompileAccepts(t *testing.T) {
	// Patterns that a stricter validator might reject but this engine's
	// lexer, as specified, accepts: an empty class runs on to
	// UnbalancedClass rather than EmptyClass, but a reversed range
	// compiles fine and simply matches nothing.
	if _, err := Compile("[z-a]"); err != nil {
		t.Fatalf("Compile(%q): unexpected error: %v", "[z-a]", err)
	}
	re := MustCompile("[z-a]")
	if re.IsMatchString("z") || re.IsMatchString("a") {
		t.Errorf("[z-a] should match nothing, matched")
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile(invalid): expected panic")
		}
	}()
	MustCompile("a**")
}
