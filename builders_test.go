package doctree

import "testing"

func TestBuilderLiterals(t *testing.T) {
	if True().Type() != TagBoolTrue || False().Type() != TagBoolFalse || Null().Type() != TagNull {
		t.Fatal("literal builders returned the wrong tag")
	}
	if Zero().Type() != TagZero || string(Zero().ValueBytes) != "0" {
		t.Fatal("Zero() should be a TagZero node with text \"0\"")
	}
}

func TestBuilderNumberFromInt(t *testing.T) {
	a := NewArena()
	n := NumberFromInt64(a, -42)
	if n.Tag != TagNumber || string(n.ValueBytes) != "-42" {
		t.Fatalf("NumberFromInt64(-42) = %s %q", n.Tag, n.ValueBytes)
	}
	z := NumberFromInt64(a, 0)
	if z.Tag != TagZero {
		t.Fatalf("NumberFromInt64(0) tag = %s, want zero", z.Tag)
	}
}

func TestBuilderNumberFromFloat(t *testing.T) {
	a := NewArena()
	n, err := NumberFromFloat(a, 2.5)
	if err != nil {
		t.Fatalf("NumberFromFloat error: %v", err)
	}
	if n.Tag != TagDecimal || string(n.ValueBytes) != "2.5" {
		t.Fatalf("NumberFromFloat(2.5) = %s %q", n.Tag, n.ValueBytes)
	}
}

func TestBuilderStringPolicies(t *testing.T) {
	a := NewArena()
	raw := []byte(`say "hi"`)

	copyEscaped := NewStringCopyEscape(a, raw)
	if string(copyEscaped.ValueBytes) != `say \"hi\"` {
		t.Fatalf("CopyEscape = %q", copyEscaped.ValueBytes)
	}

	aliasEscaped := NewStringAliasEscape(a, raw)
	if string(aliasEscaped.ValueBytes) != `say \"hi\"` {
		t.Fatalf("AliasEscape = %q", aliasEscaped.ValueBytes)
	}

	plain := []byte("no escaping needed")
	aliasedPlain := NewStringAliasEscape(a, plain)
	if &aliasedPlain.ValueBytes[0] != &plain[0] {
		t.Fatal("AliasEscape should alias input that needs no escaping")
	}

	encoded := []byte(`already\nencoded`)
	copyRaw := NewStringCopyRaw(a, encoded)
	if string(copyRaw.ValueBytes) != string(encoded) {
		t.Fatalf("CopyRaw = %q", copyRaw.ValueBytes)
	}
	if &copyRaw.ValueBytes[0] == &encoded[0] {
		t.Fatal("CopyRaw should not alias its input")
	}

	aliasRaw := NewStringAliasRaw(encoded)
	if &aliasRaw.ValueBytes[0] != &encoded[0] {
		t.Fatal("AliasRaw should alias its input")
	}
}
