package schema

// CoreAdPhotoTable represents the 'core.ad_photo' table
type CoreAdPhotoTable struct {
	Table     string
	ID        string
	AdID      string
	Image     string
	IsMain    string
	SortOrder string
	CreatedAt string
}

// CoreAdPhoto is the schema definition for core.ad_photo
var CoreAdPhoto = CoreAdPhotoTable{
	Table:     "core.ad_photo",
	ID:        "id",
	AdID:      "ad_id",
	Image:     "image",
	IsMain:    "is_main",
	SortOrder: "sort_order",
	CreatedAt: "created_at",
}

func (t CoreAdPhotoTable) Columns() []string {
	return []string{t.ID, t.AdID, t.Image, t.IsMain, t.SortOrder, t.CreatedAt}
}
