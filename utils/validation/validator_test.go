package validation

import (
	"reflect"
	"testing"
)

type sampleForm struct {
	Email    string `form:"email" validate:"notblank"`
	FullName string `form:"fullName" validate:"notblank"`
	Notes    string `form:"notes"`
}

func TestMissingFieldsUsesFormNamesInOrder(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(&sampleForm{})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	got := MissingFields(err)
	want := []string{"email", "fullName"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("missing = %v, want %v", got, want)
	}
}

func TestNotblankRejectsWhitespace(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(&sampleForm{Email: "  ", FullName: "Asha Negi"})
	if err == nil {
		t.Fatal("whitespace-only value should fail notblank")
	}

	got := MissingFields(err)
	if len(got) != 1 || got[0] != "email" {
		t.Errorf("missing = %v, want [email]", got)
	}
}

func TestValidStructPasses(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateStruct(&sampleForm{Email: "a@b.c", FullName: "Asha"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
