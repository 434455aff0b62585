package responses

type Login struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

type UserProfile struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	ClinicID    string `json:"clinicId"`
	Roles       []Role `json:"roles"`
	PrimaryRole string `json:"primaryRole"`
}

type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
