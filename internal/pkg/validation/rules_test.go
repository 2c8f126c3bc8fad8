package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUID(t *testing.T) {
	tests := []struct {
		name  string
		uid   string
		valid bool
	}{
		{"student uid", "stu1001", true},
		{"faculty uid", "fac2001", true},
		{"admin uid", "adm3001", true},
		{"minimum digits", "stu100", true},
		{"maximum digits", "stu12345678", true},
		{"too few digits", "stu10", false},
		{"too many digits", "stu123456789", false},
		{"unknown prefix", "pro1001", false},
		{"uppercase prefix", "STU1001", false},
		{"letters after prefix", "stu10a1", false},
		{"missing digits", "stu", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidUID(tt.uid))
		})
	}
}

func TestRolePrefix(t *testing.T) {
	assert.Equal(t, "stu", RolePrefix("stu1001"))
	assert.Equal(t, "fac", RolePrefix("fac2001"))
	assert.Equal(t, "adm", RolePrefix("adm3001"))
	assert.Equal(t, "", RolePrefix("pro1001"))
	assert.Equal(t, "", RolePrefix(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("alice@campus.edu"))
	assert.True(t, IsValidEmail("first.last+tag@sub.campus.edu"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}
