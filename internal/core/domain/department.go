package domain

import (
	"slices"
	"strings"
)

// DepartmentSet is an ordered, duplicate free list of department names.
// An empty set means the item is not scoped to any department.
type DepartmentSet []string

// NewDepartmentSet trims, drops empty entries and removes duplicates while
// keeping first-seen order.
func NewDepartmentSet(depts ...string) DepartmentSet {
	set := make(DepartmentSet, 0, len(depts))
	for _, d := range depts {
		d = strings.TrimSpace(d)
		if d == "" || slices.Contains(set, d) {
			continue
		}
		set = append(set, d)
	}
	return set
}

// Contains reports whether dept is a member of the set.
func (s DepartmentSet) Contains(dept string) bool {
	return slices.Contains(s, dept)
}

// String joins the set for display, e.g. "Sales, Marketing".
func (s DepartmentSet) String() string {
	return strings.Join(s, ", ")
}

// Departments is the fixed list offered by the portal's department pickers.
var Departments = []string{
	"IT",
	"HR",
	"Management",
	"Sales",
	"Marketing",
	"Finance",
	"Engineering",
	"General",
}
