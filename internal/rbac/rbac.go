// Package rbac maps dashboard roles to the pages and menu entries they may see.
//
// Access is decided only by the explicit allow-lists below. Rank orders roles
// for display and is never consulted for authorization.
package rbac

import (
	"slices"
	"sort"
)

// Role is a dashboard role.
type Role string

const (
	SuperAdmin Role = "super_admin"
	Warden     Role = "warden"
	Accountant Role = "accountant"
	Student    Role = "student"
)

var ranks = map[Role]int{
	SuperAdmin: 4,
	Warden:     3,
	Accountant: 2,
	Student:    1,
}

// ParseRole returns the role named s, or false when s is not a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := ranks[r]
	return r, ok
}

// Rank is the display position of r; unknown roles rank 0.
func (r Role) Rank() int {
	return ranks[r]
}

func (r Role) Valid() bool {
	_, ok := ranks[r]
	return ok
}

// Roles lists all roles from highest to lowest rank.
func Roles() []Role {
	out := make([]Role, 0, len(ranks))
	for r := range ranks {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank() > out[j].Rank() })
	return out
}

var pageRoles = map[string][]Role{
	"/":            {SuperAdmin, Warden, Accountant, Student},
	"/hostels":     {SuperAdmin, Warden},
	"/inventory":   {SuperAdmin, Warden},
	"/students":    {SuperAdmin, Warden, Accountant},
	"/allocations": {SuperAdmin, Warden},
	"/settings":    {SuperAdmin},
}

// MenuItem is a navigation entry.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Roles []Role `json:"roles"`
}

var menuItems = []MenuItem{
	{Label: "Dashboard", Path: "/", Roles: []Role{SuperAdmin, Warden, Accountant, Student}},
	{Label: "Hostels", Path: "/hostels", Roles: []Role{SuperAdmin, Warden}},
	{Label: "Inventory", Path: "/inventory", Roles: []Role{SuperAdmin, Warden}},
	{Label: "Students", Path: "/students", Roles: []Role{SuperAdmin, Warden, Accountant}},
	{Label: "Allocations", Path: "/allocations", Roles: []Role{SuperAdmin, Warden}},
	{Label: "Settings", Path: "/settings", Roles: []Role{SuperAdmin}},
}

// CanAccessPage reports whether role may open path. Unknown roles and
// unknown paths are denied.
func CanAccessPage(role Role, path string) bool {
	if !role.Valid() {
		return false
	}
	allowed, ok := pageRoles[path]
	if !ok {
		return false
	}
	return slices.Contains(allowed, role)
}

// VisibleMenuItems returns, in menu order, the entries whose allow-list
// contains role.
func VisibleMenuItems(role Role) []MenuItem {
	items := make([]MenuItem, 0, len(menuItems))
	if !role.Valid() {
		return items
	}
	for _, item := range menuItems {
		if slices.Contains(item.Roles, role) {
			items = append(items, item)
		}
	}
	return items
}
