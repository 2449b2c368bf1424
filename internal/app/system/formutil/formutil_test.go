package formutil_test

import (
	"testing"

	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
)

type sample struct {
	Decision string `form:"Decision" validate:"required,oneof=shortlist reject hold"`
	Email    string `form:"Email" validate:"omitempty,email"`
	Notes    string `form:"Notes" validate:"max=10"`
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		in   sample
		want string
	}{
		{"valid", sample{Decision: "hold"}, ""},
		{"missing decision", sample{}, "Decision is required."},
		{"bad decision", sample{Decision: "maybe"}, "Decision must be one of: shortlist, reject, hold."},
		{"bad email", sample{Decision: "reject", Email: "nope"}, "Email must be a valid email address."},
		{"too long", sample{Decision: "reject", Notes: "0123456789abc"}, "Notes must be at most 10 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formutil.Check(tt.in); got != tt.want {
				t.Errorf("Check = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBase_SetError(t *testing.T) {
	var b formutil.Base
	b.SetError("Something went wrong")
	if b.Error != "Something went wrong" {
		t.Errorf("Error = %q", b.Error)
	}
}
