package schema

// CoreSearchCountTable represents the 'core.search_count' table
type CoreSearchCountTable struct {
	Table     string
	ID        string
	AdID      string
	HitCount  string
	UpdatedAt string
}

// CoreSearchCount is the schema definition for core.search_count
var CoreSearchCount = CoreSearchCountTable{
	Table:     "core.search_count",
	ID:        "id",
	AdID:      "ad_id",
	HitCount:  "hit_count",
	UpdatedAt: "updated_at",
}

func (t CoreSearchCountTable) Columns() []string {
	return []string{t.ID, t.AdID, t.HitCount, t.UpdatedAt}
}
