package schema

// CoreFavoriteTable represents the 'core.favorite' table
type CoreFavoriteTable struct {
	Table     string
	ID        string
	UserID    string
	DeviceID  string
	AdID      string
	CreatedAt string
}

// CoreFavorite is the schema definition for core.favorite
var CoreFavorite = CoreFavoriteTable{
	Table:     "core.favorite",
	ID:        "id",
	UserID:    "user_id",
	DeviceID:  "device_id",
	AdID:      "ad_id",
	CreatedAt: "created_at",
}

func (t CoreFavoriteTable) Columns() []string {
	return []string{t.ID, t.UserID, t.DeviceID, t.AdID, t.CreatedAt}
}
