package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", middlewares.AuthMiddleware(), controllers.Logout)
	}

	// Recipe routes
	rec := r.Group("/recipes")
	rec.Use(middlewares.AuthMiddleware())
	{
		rec.GET("", controllers.ListRecipes)
		rec.POST("", controllers.CreateRecipe)
		rec.GET("/suggest", controllers.SuggestRecipes)
		rec.GET("/popular", controllers.PopularRecipes)
		rec.GET("/:id", controllers.GetRecipe)
		rec.PUT("/:id", controllers.UpdateRecipe)
		rec.DELETE("/:id", controllers.DeleteRecipe)
		rec.GET("/:id/details", controllers.RecipeDetails)
		rec.GET("/:id/nutrition", controllers.RecipeNutrition)
		rec.GET("/:id/substitutions", controllers.RecipeSubstitutions)
	}

	// Inventory routes
	inv := r.Group("/inventory")
	inv.Use(middlewares.AuthMiddleware())
	{
		items := inv.Group("/items")
		{
			items.GET("", controllers.ListItems)
			items.POST("", controllers.CreateItem)
			items.GET("/low-stock", controllers.LowStockItems)
			items.GET("/:id", controllers.GetItem)
			items.PUT("/:id", controllers.UpdateItem)
			items.DELETE("/:id", controllers.DeleteItem)
			items.PUT("/:id/update", controllers.UpdateItemQuantity)
			items.DELETE("/:id/remove", controllers.RemoveItem)
		}

		plans := inv.Group("/meal-plans")
		{
			plans.GET("", controllers.ListMealPlans)
			plans.POST("", controllers.CreateMealPlan)
			plans.POST("/generate", controllers.GenerateMealPlan)
			plans.GET("/:id", controllers.GetMealPlan)
			plans.PUT("/:id", controllers.UpdateMealPlan)
			plans.DELETE("/:id", controllers.DeleteMealPlan)
			plans.GET("/:id/summary", controllers.MealPlanSummary)
		}

		posts := inv.Group("/community/posts")
		{
			posts.GET("", controllers.ListPosts)
			posts.POST("", controllers.CreatePost)
			posts.GET("/trending", controllers.TrendingPosts)
			posts.GET("/:id", controllers.GetPost)
			posts.PUT("/:id", controllers.UpdatePost)
			posts.DELETE("/:id", controllers.DeletePost)
			posts.GET("/:id/comments", controllers.ListComments)
			posts.POST("/:id/comments", controllers.CreateComment)
		}

		inv.GET("/notifications", controllers.ListNotifications)
		inv.POST("/scan", controllers.ScanBarcode)
		inv.POST("/recipes/used", controllers.LogRecipeUsage)
		inv.GET("/analytics/spending", controllers.SpendingAnalytics)
		inv.GET("/analytics/usage", controllers.UsageAnalytics)
		inv.GET("/users/:id/preferences", controllers.GetPreferences)
		inv.PUT("/users/:id/preferences", controllers.UpdatePreferences)
		inv.GET("/users/:id/history", controllers.ListHistory)
	}

	return r
}
