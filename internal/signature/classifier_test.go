package signature

import (
	"testing"

	"github.com/toyz/textsig/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		role  models.Role
		token string
	}{
		{models.RoleFreeFunction, ""},
		{models.RoleModuleFunction, "$module"},
		{models.RoleInstanceMethod, "$self"},
		{models.RoleClassMethod, "$cls"},
		{models.RoleStaticMethod, ""},
	}

	for _, tt := range tests {
		if got := Classify(tt.role).Token(); got != tt.token {
			t.Errorf("Classify(%s) = %q, expected %q", tt.role, got, tt.token)
		}
	}
}
