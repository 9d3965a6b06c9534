package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessPage(t *testing.T) {
	testCases := []struct {
		name     string
		role     Role
		path     string
		expected bool
	}{
		{name: "Student blocked from settings", role: Student, path: "/settings", expected: false},
		{name: "Super admin sees settings", role: SuperAdmin, path: "/settings", expected: true},
		{name: "Missing role", role: "", path: "/", expected: false},
		{name: "Unknown role", role: "janitor", path: "/", expected: false},
		{name: "Unknown path", role: SuperAdmin, path: "/reports", expected: false},
		{name: "Tariffs page not listed", role: SuperAdmin, path: "/tariffs", expected: false},
		{name: "Warden blocked from tariffs", role: Warden, path: "/tariffs", expected: false},
		{name: "Accountant sees students", role: Accountant, path: "/students", expected: true},
		{name: "Accountant blocked from allocations", role: Accountant, path: "/allocations", expected: false},
		{name: "Warden blocked from settings despite rank", role: Warden, path: "/settings", expected: false},
		{name: "Everyone sees dashboard", role: Student, path: "/", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanAccessPage(tc.role, tc.path))
		})
	}
}

func TestVisibleMenuItems(t *testing.T) {
	paths := func(items []MenuItem) []string {
		out := make([]string, 0, len(items))
		for _, i := range items {
			out = append(out, i.Path)
		}
		return out
	}

	assert.Equal(t, []string{"/"}, paths(VisibleMenuItems(Student)))
	assert.Equal(t, []string{"/", "/students"}, paths(VisibleMenuItems(Accountant)))
	assert.Equal(t, []string{"/", "/hostels", "/inventory", "/students", "/allocations"}, paths(VisibleMenuItems(Warden)))
	assert.Len(t, VisibleMenuItems(SuperAdmin), len(menuItems))
	assert.Empty(t, VisibleMenuItems(""))
	assert.Empty(t, VisibleMenuItems("guest"))
}

func TestMenuAndPagesAgree(t *testing.T) {
	for _, item := range menuItems {
		for _, r := range Roles() {
			assert.Equal(t, CanAccessPage(r, item.Path), VisibleMenuItems(r) != nil && containsPath(VisibleMenuItems(r), item.Path),
				"role %s path %s", r, item.Path)
		}
	}
}

func containsPath(items []MenuItem, path string) bool {
	for _, i := range items {
		if i.Path == path {
			return true
		}
	}
	return false
}

func TestRolesAndParse(t *testing.T) {
	assert.Equal(t, []Role{SuperAdmin, Warden, Accountant, Student}, Roles())

	r, ok := ParseRole("warden")
	assert.True(t, ok)
	assert.Equal(t, Warden, r)
	assert.Equal(t, 3, r.Rank())

	_, ok = ParseRole("Warden")
	assert.False(t, ok)
	assert.Equal(t, 0, Role("nobody").Rank())
}
