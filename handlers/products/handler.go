package products

import (
	"encoding/json"
	"net/http"
	"tatva-backend/db"
	"tatva-backend/models"
	"tatva-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// buildImages normalizes every externally hosted URL and packs the
// list into the JSON column. A nil list is stored as [] so the public
// pages never see null.
func buildImages(images []string) (datatypes.JSON, error) {
	if images == nil {
		images = []string{}
	}
	normalized := make([]string, len(images))
	for i, url := range images {
		normalized[i] = utils.NormalizeImageURL(url)
	}
	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func buildSubproductImages(m map[string]string) datatypes.JSONMap {
	if len(m) == 0 {
		return nil
	}
	out := datatypes.JSONMap{}
	for name, url := range m {
		out[name] = utils.NormalizeImageURL(url)
	}
	return out
}

// @Summary Get all products
// @Description Retrieve the full product catalog
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /products [get]
func GetAllProducts(c *gin.Context) {
	var products []models.Product

	result := db.DB.Order("created_at ASC").Find(&products)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Get a product
// @Description Retrieve one product by its ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string "error: Product not found"
// @Router /products/{id} [get]
func GetProductByID(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	result := db.DB.First(&product, "id = ?", productID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Create a product
// @Description Create a new catalog product; Google Drive image links are rewritten to their direct form
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.ProductCreate true "Product information"
// @Security BearerAuth
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /products [post]
func CreateProduct(c *gin.Context) {
	var input models.ProductCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	images, err := buildImages(input.Images)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid images list: " + err.Error()})
		return
	}

	product := models.Product{
		Title:            input.Title,
		Description:      input.Description,
		ImageURL:         utils.NormalizeImageURL(input.ImageURL),
		Category:         input.Category,
		IsNew:            input.IsNew,
		Images:           images,
		SubproductImages: buildSubproductImages(input.SubproductImages),
	}

	result := db.DB.Create(&product)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating product: " + result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// @Summary Update a product
// @Description Replace a product's fields with the provided information
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.ProductCreate true "Updated product information"
// @Security BearerAuth
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /products/{id} [put]
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	result := db.DB.First(&product, "id = ?", productID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input models.ProductCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	images, err := buildImages(input.Images)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid images list: " + err.Error()})
		return
	}

	product.Title = input.Title
	product.Description = input.Description
	product.ImageURL = utils.NormalizeImageURL(input.ImageURL)
	product.Category = input.Category
	product.IsNew = input.IsNew
	product.Images = images
	product.SubproductImages = buildSubproductImages(input.SubproductImages)

	result = db.DB.Save(&product)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating product: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Delete a product
// @Description Remove a product from the catalog
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Security BearerAuth
// @Success 200 {object} map[string]bool "success: true"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	result := db.DB.First(&product, "id = ?", productID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	result = db.DB.Delete(&product)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting product: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Upload a product image
// @Description Upload an image file and get back its hosted URL
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Security BearerAuth
// @Success 200 {object} map[string]string "url: hosted image URL"
// @Failure 400 {object} map[string]string "error: Invalid file"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /products/upload [post]
func UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	url, err := utils.UploadProductImage(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
