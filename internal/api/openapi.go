package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	_ "github.com/pageza/alchemorsel-recipe-generator/backend/internal/docs"
	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/types"
)

// OpenAPI serves the API description registered by the docs package
func OpenAPI(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Detail: "Internal Server Error"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
