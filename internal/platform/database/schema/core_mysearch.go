package schema

// CoreMySearchTable represents the 'core.my_search' table
type CoreMySearchTable struct {
	Table      string
	ID         string
	UserID     string
	CategoryID string
	Query      string
	PriceMin   string
	PriceMax   string
	RegionID   string
	CreatedAt  string
}

// CoreMySearch is the schema definition for core.my_search
var CoreMySearch = CoreMySearchTable{
	Table:      "core.my_search",
	ID:         "id",
	UserID:     "user_id",
	CategoryID: "category_id",
	Query:      "query",
	PriceMin:   "price_min",
	PriceMax:   "price_max",
	RegionID:   "region_id",
	CreatedAt:  "created_at",
}

func (t CoreMySearchTable) Columns() []string {
	return []string{t.ID, t.UserID, t.CategoryID, t.Query, t.PriceMin, t.PriceMax, t.RegionID, t.CreatedAt}
}
