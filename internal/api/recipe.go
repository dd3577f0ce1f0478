package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pageza/diethub/backend/internal/service"
	"github.com/pageza/diethub/backend/internal/types"
)

// MaxImageSize caps recipe image uploads.
const MaxImageSize = 5 << 20

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("", h.CreateRecipe)
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/calories", h.ListRecipesByCalories)
		recipes.GET("/category/:category", h.ListRecipesByCategory)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/image", h.UploadImage)
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), req.Fields())
	if err != nil {
		internalError(c, err, "failed to create recipe")
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": recipeNotFound(id)})
		return
	}
	if err != nil {
		internalError(c, err, "failed to get recipe")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		internalError(c, err, "failed to list recipes")
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListRecipesByCategory(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipesByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		internalError(c, err, "failed to list recipes")
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	keyword, ok := c.GetQuery("keyword")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	recipes, err := h.recipeService.SearchRecipes(c.Request.Context(), keyword)
	if err != nil {
		internalError(c, err, "failed to search recipes")
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListRecipesByCalories(c *gin.Context) {
	min, errMin := strconv.Atoi(c.Query("min"))
	max, errMax := strconv.Atoi(c.Query("max"))
	if errMin != nil || errMax != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min and max must be integers"})
		return
	}

	recipes, err := h.recipeService.ListRecipesByCalorieRange(c.Request.Context(), min, max)
	if err != nil {
		internalError(c, err, "failed to list recipes")
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	var req types.RecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, req.Fields())
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": recipeNotFound(id)})
		return
	}
	if err != nil {
		internalError(c, err, "failed to update recipe")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		internalError(c, err, "failed to delete recipe")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage stores the multipart "image" file and sets it as the recipe's imageUrl.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxImageSize+(1<<20))
	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 5 MiB"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"image\" is required"})
		return
	}
	if fileHeader.Size > MaxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 5 MiB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		internalError(c, err, "failed to read image")
		return
	}
	defer func() { _ = file.Close() }()

	contentType, err := imageContentType(fileHeader, file)
	if err != nil {
		internalError(c, err, "failed to read image")
		return
	}

	recipe, err := h.recipeService.AttachImage(c.Request.Context(), id, service.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Body:        file,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, recipe)
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": recipeNotFound(id)})
	case errors.Is(err, service.ErrInvalidImage):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrImageStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		internalError(c, err, "failed to upload image")
	}
}

// imageContentType trusts the part's declared type unless it is missing or
// generic, in which case the leading bytes are sniffed.
func imageContentType(header *multipart.FileHeader, file multipart.File) (string, error) {
	declared := header.Header.Get("Content-Type")
	if declared != "" && declared != "application/octet-stream" {
		return declared, nil
	}

	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

func recipeNotFound(id uint) string {
	return fmt.Sprintf("recipe not found with id: %d", id)
}
