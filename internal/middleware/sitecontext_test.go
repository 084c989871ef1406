package middleware

import "testing"

func TestDeriveUserFromPath(t *testing.T) {
	tests := []struct {
		path   string
		userID string
		ok     bool
	}{
		{"/", "", false},
		{"", "", false},
		{"/josh", "josh", true},
		{"/josh/", "josh", true},
		{"/josh/projects", "josh", true},
		{"/josh/projects/p1", "josh", true},
		{"/admin", "", false},
		{"/admin/anything", "", false},
		{"/signup", "", false},
		{"/login", "", false},
		{"/api/users", "", false},
		{"/static/app.css", "", false},
	}

	for _, tt := range tests {
		userID, ok := DeriveUserFromPath(tt.path)
		if userID != tt.userID || ok != tt.ok {
			t.Errorf("DeriveUserFromPath(%q) = (%q, %v), want (%q, %v)", tt.path, userID, ok, tt.userID, tt.ok)
		}
	}
}
