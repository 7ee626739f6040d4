package controllers

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Sarvesh-GanesanW/enterprises/models"
	"github.com/Sarvesh-GanesanW/enterprises/repositories"
	"github.com/gin-gonic/gin"
)

const catalogCacheKey = "catalog_list"

type CatalogController struct {
	catalog *repositories.CatalogRepository
}

func NewCatalogController(catalog *repositories.CatalogRepository) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// @Summary Get tea catalog
// @Description Get the full list of tea blends
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /catalog [get]
func (ctrl *CatalogController) GetCatalog(c *gin.Context) {
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	response := gin.H{"success": true, "message": "Catalog retrieved", "data": ctrl.catalog.GetAll()}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, catalogCacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get tea by id
// @Description Get a single tea blend by its catalog id
// @Tags Catalog
// @Produce json
// @Param id path int true "Catalog ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /catalog/{id} [get]
func (ctrl *CatalogController) GetTeaByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid catalog id"})
		return
	}

	item, ok := ctrl.catalog.GetByID(id)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Tea not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Tea retrieved", "data": item})
}
