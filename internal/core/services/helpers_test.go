package services_test

import (
	"time"

	"github.com/SscSPs/corp_portal/internal/core/domain"
)

var fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

var (
	jane = domain.User{UserID: "u-jane", Name: "Jane", Role: domain.RoleOfficer, Department: "Sales"}
	bob  = domain.User{UserID: "u-bob", Name: "Bob", Role: domain.RoleOfficer, Department: "Marketing"}
	root = domain.User{UserID: "u-root", Name: "Root", Role: domain.RoleAdmin, Department: "IT"}
	eve  = domain.User{UserID: "u-eve", Name: "Eve", Role: domain.RoleEmployee, Department: "Sales"}
	vic  = domain.User{UserID: "u-vic", Name: "Vic", Role: domain.RoleVP, Department: "Sales"}
	sam  = domain.User{UserID: "u-sam", Name: "Sam", Role: domain.RoleSVP, Department: "Finance"}
)

func ptr[T any](v T) *T { return &v }
