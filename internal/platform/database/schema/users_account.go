package schema

// UsersAccountTable represents the 'users.account' table
type UsersAccountTable struct {
	Table        string
	ID           string
	FullName     string
	PhoneNumber  string
	ProfilePhoto string
	Role         string
	Status       string
	IsActive     string
	AddressID    string
	CreatedAt    string
}

// UsersAccount is the schema definition for users.account
var UsersAccount = UsersAccountTable{
	Table:        "users.account",
	ID:           "id",
	FullName:     "full_name",
	PhoneNumber:  "phone_number",
	ProfilePhoto: "profile_photo",
	Role:         "role",
	Status:       "status",
	IsActive:     "is_active",
	AddressID:    "address_id",
	CreatedAt:    "created_at",
}

func (t UsersAccountTable) Columns() []string {
	return []string{
		t.ID, t.FullName, t.PhoneNumber, t.ProfilePhoto, t.Role, t.Status, t.IsActive, t.AddressID, t.CreatedAt,
	}
}
