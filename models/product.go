package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Product is a catalog entry shown on the public products pages.
// The description doubles as the comma-separated list of orderable
// subproducts; Subproducts() is the single place that split happens.
// @Description Catalog product
type Product struct {
	ID               string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title            string            `json:"title" binding:"required"`
	Description      string            `json:"description" gorm:"type:text"`
	ImageURL         string            `json:"imageUrl" gorm:"column:image_url"`
	Category         string            `json:"category"`
	IsNew            bool              `json:"isNew" gorm:"column:is_new"`
	Images           datatypes.JSON    `json:"images" swaggertype:"array,string"`
	SubproductImages datatypes.JSONMap `json:"subproductImages,omitempty" gorm:"column:subproduct_images" swaggertype:"object,string"`
	CreatedAt        time.Time         `json:"createdAt" swaggerignore:"true"`
	UpdatedAt        time.Time         `json:"updatedAt" swaggerignore:"true"`
}

func (Product) TableName() string {
	return "products"
}

// Subproducts splits the description into the subproduct names the UI
// renders. Whitespace is trimmed and empty segments dropped; a comma
// inside a legitimate name will mis-split, which is a known limitation
// of the description format.
func (p Product) Subproducts() []string {
	parts := strings.Split(p.Description, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ProductCreate is the payload accepted by POST /products and PUT /products/{id}
type ProductCreate struct {
	Title            string            `json:"title" binding:"required" example:"Motors & Power Transmission"`
	Description      string            `json:"description" example:"Sprockets, Speed Reducers, Pulleys"`
	ImageURL         string            `json:"imageUrl" example:"https://example.com/motors.jpg"`
	Category         string            `json:"category" example:"Power"`
	IsNew            bool              `json:"isNew"`
	Images           []string          `json:"images"`
	SubproductImages map[string]string `json:"subproductImages"`
}
