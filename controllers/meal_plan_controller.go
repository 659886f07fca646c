package controllers

import (
	"errors"
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealPlanInput struct {
	UserID   uint   `json:"user_id" binding:"required"`
	PlanName string `json:"plan_name" binding:"required,max=100"`
	Summary  string `json:"summary"`
}

// GET /inventory/meal-plans
func ListMealPlans(c *gin.Context) {
	var plans []models.MealPlan
	if err := config.DB.Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// POST /inventory/meal-plans
func CreateMealPlan(c *gin.Context) {
	var input MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}
	if !userExists(c, input.UserID) {
		return
	}

	plan := models.MealPlan{
		UserID:   input.UserID,
		PlanName: input.PlanName,
		Summary:  input.Summary,
	}
	if err := config.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GET /inventory/meal-plans/:id
func GetMealPlan(c *gin.Context) {
	plan, ok := findMealPlan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, plan)
}

// PUT /inventory/meal-plans/:id updates the name and summary. GeneratedAt is
// assigned at creation and never written again.
func UpdateMealPlan(c *gin.Context) {
	plan, ok := findMealPlan(c)
	if !ok {
		return
	}

	var input MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}
	if !userExists(c, input.UserID) {
		return
	}

	plan.UserID = input.UserID
	plan.PlanName = input.PlanName
	plan.Summary = input.Summary
	if err := config.DB.Save(plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DELETE /inventory/meal-plans/:id
func DeleteMealPlan(c *gin.Context) {
	plan, ok := findMealPlan(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /inventory/meal-plans/generate stores a plan with a canned summary.
// There is no plan generation behind this endpoint.
func GenerateMealPlan(c *gin.Context) {
	var body struct {
		UserID   uint   `json:"user_id" binding:"required"`
		PlanName string `json:"plan_name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}
	if body.PlanName == "" {
		body.PlanName = "Weekly Meal Plan"
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", body.UserID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	plan := models.MealPlan{
		UserID:   user.ID,
		PlanName: body.PlanName,
		Summary:  "Dummy meal plan summary.",
	}
	if err := config.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GET /inventory/meal-plans/:id/summary
func MealPlanSummary(c *gin.Context) {
	plan, ok := findMealPlan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan_name": plan.PlanName,
		"summary":   plan.Summary,
	})
}

// userExists verifies the referenced account before a plan write so an unknown
// id is a validation failure, not a foreign-key error from the database.
func userExists(c *gin.Context, userID uint) bool {
	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid input",
			"fields": map[string]string{"user_id": "unknown user"},
		})
		return false
	}
	return true
}

func findMealPlan(c *gin.Context) (*models.MealPlan, bool) {
	var plan models.MealPlan
	if err := config.DB.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return &plan, true
}
