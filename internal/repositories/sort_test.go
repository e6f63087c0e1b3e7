package repositories

import "testing"

func TestOrderClause(t *testing.T) {
	allowed := map[string]bool{"name": true, "created_at": true}

	cases := []struct {
		sort string
		want string
	}{
		{"", " ORDER BY name ASC"},
		{"name", " ORDER BY name ASC"},
		{"-name", " ORDER BY name DESC"},
		{"created_at", " ORDER BY created_at ASC"},
		{"-created_at", " ORDER BY created_at DESC"},
		// Unknown columns fall back to the default.
		{"password_hash", " ORDER BY name ASC"},
		{"-password_hash", " ORDER BY name ASC"},
		// Injection attempts are not valid columns.
		{"name; DROP TABLE clients", " ORDER BY name ASC"},
		{"name--", " ORDER BY name ASC"},
	}

	for _, c := range cases {
		got := orderClause(c.sort, allowed, "name ASC")
		if got != c.want {
			t.Errorf("orderClause(%q) = %q, want %q", c.sort, got, c.want)
		}
	}
}
