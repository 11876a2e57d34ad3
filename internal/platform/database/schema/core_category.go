package schema

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table     string
	ID        string
	ParentID  string
	Name      string
	Icon      string
	CreatedAt string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table:     "core.category",
	ID:        "id",
	ParentID:  "parent_id",
	Name:      "name",
	Icon:      "icon",
	CreatedAt: "created_at",
}

func (t CoreCategoryTable) Columns() []string {
	return []string{t.ID, t.ParentID, t.Name, t.Icon, t.CreatedAt}
}
