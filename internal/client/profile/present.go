package profile

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
)

// Defaults shown for profile fields the record leaves empty.
const (
	DefaultPhone      = "+1 (555) 123-4567"
	DefaultDepartment = "Computer Science"
	JoinDateLayout    = "January 2, 2006"
)

// Card is the profile page as displayed.
type Card struct {
	Name       string
	Email      string
	RoleBadge  string
	RoleLevel  string
	EmployeeID string
	Phone      string
	Department string
	JoinDate   string
	Avatar     string
	TaskCount  int
}

// Present fills the card of user, substituting defaults for empty fields.
// now is used as the join date when the record has none.
func Present(user models.User, taskCount int, now time.Time) Card {
	c := Card{
		Name:       user.DisplayName(),
		Email:      user.Email,
		RoleBadge:  "User",
		RoleLevel:  "Student",
		EmployeeID: user.EmployeeID,
		Phone:      user.Phone,
		Department: user.Department,
		JoinDate:   user.JoinDate,
		Avatar:     user.Avatar,
		TaskCount:  taskCount,
	}
	if user.Role.IsAdmin() {
		c.RoleBadge = "System Admin"
		c.RoleLevel = "Senior Administrator"
	}
	if c.EmployeeID == "" {
		c.EmployeeID = "CZ-" + padLeft(user.ID.String(), 6, '0')
	}
	if c.Phone == "" {
		c.Phone = DefaultPhone
	}
	if c.Department == "" {
		c.Department = DefaultDepartment
	}
	if c.JoinDate == "" {
		c.JoinDate = now.Format(JoinDateLayout)
	}
	return c
}

func padLeft(s string, n int, pad byte) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(string(pad), n-len(s)) + s
}
