package schema

// RefRegionTable represents the 'ref.region' table
type RefRegionTable struct {
	Table string
	ID    string
	Name  string
}

// RefRegion is the schema definition for ref.region
var RefRegion = RefRegionTable{
	Table: "ref.region",
	ID:    "id",
	Name:  "name",
}

// RefDistrictTable represents the 'ref.district' table
type RefDistrictTable struct {
	Table    string
	ID       string
	RegionID string
	Name     string
}

// RefDistrict is the schema definition for ref.district
var RefDistrict = RefDistrictTable{
	Table:    "ref.district",
	ID:       "id",
	RegionID: "region_id",
	Name:     "name",
}
