package models

// Project is a portfolio item. ID is assigned by storage on insert and never changes.
type Project struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"column:title;not null" json:"title"`
	Description string `gorm:"column:description;not null" json:"description"`
	ImageURL    string `gorm:"column:image_url;not null" json:"image_url"`
}

// TableName pins the table name used by Gorm.
func (Project) TableName() string { return "projects" }

// SeedProjects returns the demonstration rows inserted into an empty table.
func SeedProjects() []Project {
	return []Project{
		{
			Title:       "Nexus Platform",
			Description: "A next-gen SaaS dashboard.",
			ImageURL:    "https://images.unsplash.com/photo-1550745165-9bc0b252726f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		{
			Title:       "Echo E-Commerce",
			Description: "High-conversion storefront.",
			ImageURL:    "https://images.unsplash.com/photo-1558655146-d09347e92766?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
		{
			Title:       "Nova Identity",
			Description: "Global brand platform.",
			ImageURL:    "https://images.unsplash.com/photo-1518770660439-4636190af475?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		},
	}
}
