package models

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	ClinicID  string `json:"clinicId"`
	Roles     []Role `json:"roles"`
}

type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PrimaryRole is the first role in the list. Display only; authorization
// never depends on role ordering.
func (u *User) PrimaryRole() Role {
	if u == nil || len(u.Roles) == 0 {
		return Role{}
	}
	return u.Roles[0]
}

func (u *User) HasRole(roleID int) bool {
	if u == nil {
		return false
	}
	for _, role := range u.Roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}
