package controllers

import (
	"errors"
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecipeInput struct {
	Name         string `json:"name" binding:"required,max=100"`
	Ingredients  string `json:"ingredients" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
	Popularity   int    `json:"popularity"`
}

// GET /recipes
func ListRecipes(c *gin.Context) {
	var recipes []models.Recipe
	if err := config.DB.Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// POST /recipes
func CreateRecipe(c *gin.Context) {
	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	recipe := models.Recipe{
		Name:         input.Name,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Popularity:   input.Popularity,
	}
	if err := config.DB.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// GET /recipes/:id
func GetRecipe(c *gin.Context) {
	recipe, ok := findRecipe(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// PUT /recipes/:id
func UpdateRecipe(c *gin.Context) {
	recipe, ok := findRecipe(c)
	if !ok {
		return
	}

	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	recipe.Name = input.Name
	recipe.Ingredients = input.Ingredients
	recipe.Instructions = input.Instructions
	recipe.Popularity = input.Popularity
	if err := config.DB.Save(recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DELETE /recipes/:id
func DeleteRecipe(c *gin.Context) {
	recipe, ok := findRecipe(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /recipes/suggest returns the first 5 recipes in storage order.
func SuggestRecipes(c *gin.Context) {
	var recipes []models.Recipe
	if err := config.DB.Limit(5).Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /recipes/popular returns the top 5 recipes by descending popularity.
func PopularRecipes(c *gin.Context) {
	var recipes []models.Recipe
	if err := config.DB.Order("popularity desc").Limit(5).Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /recipes/:id/details
func RecipeDetails(c *gin.Context) {
	recipe, ok := findRecipe(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// GET /recipes/:id/nutrition returns a fixed payload for any existing recipe.
// There is no nutrition calculation behind this endpoint.
func RecipeNutrition(c *gin.Context) {
	if _, ok := findRecipe(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"calories": 500,
		"protein":  "25g",
		"carbs":    "60g",
		"fats":     "20g",
	})
}

// GET /recipes/:id/substitutions returns a fixed substitution table for any
// existing recipe.
func RecipeSubstitutions(c *gin.Context) {
	recipe, ok := findRecipe(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipe": recipe.Name,
		"substitutions": gin.H{
			"sugar":  "honey",
			"butter": "olive oil",
		},
	})
}

func findRecipe(c *gin.Context) (*models.Recipe, bool) {
	var recipe models.Recipe
	if err := config.DB.First(&recipe, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return &recipe, true
}
