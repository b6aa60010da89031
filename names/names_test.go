package names

import "testing"

func TestToMemberName(t *testing.T) {
	for in, want := range map[string]string{
		"this-is-a-string": "thisIsAString",
		"first-name":       "firstName",
		"plain":            "plain",
		"alreadyCamel":     "alreadyCamel",
		"":                 "",
	} {
		if got := ToMemberName(in); got != want {
			t.Errorf("ToMemberName(%q): expect %q, got %q", in, want, got)
		}
	}
}

func TestToFieldName(t *testing.T) {
	for in, want := range map[string]string{
		"userName": "UserName",
		"UserName": "UserName",
		"x":        "X",
		"":         "",
	} {
		if got := ToFieldName(in); got != want {
			t.Errorf("ToFieldName(%q): expect %q, got %q", in, want, got)
		}
	}
}

func TestToPropertyName(t *testing.T) {
	for in, want := range map[string]string{
		"UserName": "userName",
		"X":        "x",
		"already":  "already",
	} {
		if got := ToPropertyName(in); got != want {
			t.Errorf("ToPropertyName(%q): expect %q, got %q", in, want, got)
		}
	}
}

func TestLast(t *testing.T) {
	if got := Last("js.tools.NotFound", '.'); got != "NotFound" {
		t.Errorf("expect NotFound, got %q", got)
	}
	if got := Last("NotFound", '.'); got != "NotFound" {
		t.Errorf("expect whole string, got %q", got)
	}
}
