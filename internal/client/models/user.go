package models

// User is a record of the store's users collection.
type User struct {
	ID       ID     `json:"id,omitempty"`
	FullName string `json:"fullName"`
	// Name is a legacy display-name field some records still carry.
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`

	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
	JoinDate   string `json:"joinDate,omitempty"`
}

// DisplayName prefers FullName and falls back to the legacy Name.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Name
}

// NewUser is the body of a registration request.
type NewUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UserPatch carries the fields of a partial user update; nil fields are not
// sent.
type UserPatch struct {
	FullName   *string `json:"fullName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
}
