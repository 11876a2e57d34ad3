package schema

// CoreAdTable represents the 'core.ad' table
type CoreAdTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Slug        string
	Price       string
	CategoryID  string
	SellerID    string
	AddressID   string
	Status      string
	IsPublished string
	IsTop       string
	ViewCount   string
	PublishedAt string
	UpdatedAt   string

	// SlugKey is the unique constraint on Slug.
	SlugKey string
}

// CoreAd is the schema definition for core.ad
var CoreAd = CoreAdTable{
	Table:       "core.ad",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Slug:        "slug",
	Price:       "price",
	CategoryID:  "category_id",
	SellerID:    "seller_id",
	AddressID:   "address_id",
	Status:      "status",
	IsPublished: "is_published",
	IsTop:       "is_top",
	ViewCount:   "view_count",
	PublishedAt: "published_at",
	UpdatedAt:   "updated_at",
	SlugKey:     "ad_slug_key",
}

func (t CoreAdTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Description, t.Slug, t.Price, t.CategoryID, t.SellerID, t.AddressID,
		t.Status, t.IsPublished, t.IsTop, t.ViewCount, t.PublishedAt, t.UpdatedAt,
	}
}
