package schema

// UsersAddressTable represents the 'users.address' table
type UsersAddressTable struct {
	Table      string
	ID         string
	Name       string
	Lat        string
	Long       string
	RegionID   string
	DistrictID string
}

// UsersAddress is the schema definition for users.address
var UsersAddress = UsersAddressTable{
	Table:      "users.address",
	ID:         "id",
	Name:       "name",
	Lat:        "lat",
	Long:       "long",
	RegionID:   "region_id",
	DistrictID: "district_id",
}

func (t UsersAddressTable) Columns() []string {
	return []string{t.ID, t.Name, t.Lat, t.Long, t.RegionID, t.DistrictID}
}
