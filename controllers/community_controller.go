package controllers

import (
	"errors"
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommunityPostInput struct {
	Content       string `json:"content" binding:"required"`
	TrendingScore int    `json:"trending_score"`
}

type CommentInput struct {
	Comment string `json:"comment" binding:"required"`
}

// GET /inventory/community/posts
func ListPosts(c *gin.Context) {
	var posts []models.CommunityPost
	if err := config.DB.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// POST /inventory/community/posts creates a post owned by the authenticated account.
func CreatePost(c *gin.Context) {
	var input CommunityPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	post := models.CommunityPost{
		UserID:        c.GetUint("userID"),
		Content:       input.Content,
		TrendingScore: input.TrendingScore,
	}
	if err := config.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GET /inventory/community/posts/:id
func GetPost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, post)
}

// PUT /inventory/community/posts/:id
func UpdatePost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	var input CommunityPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	post.Content = input.Content
	post.TrendingScore = input.TrendingScore
	if err := config.DB.Save(post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// DELETE /inventory/community/posts/:id removes the post and, by cascade, its comments.
func DeletePost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /inventory/community/posts/trending returns the top 5 posts by descending
// trending score.
func TrendingPosts(c *gin.Context) {
	var posts []models.CommunityPost
	if err := config.DB.Order("trending_score desc").Limit(5).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GET /inventory/community/posts/:id/comments
func ListComments(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	var comments []models.Comment
	if err := config.DB.Where("post_id = ?", post.ID).Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// POST /inventory/community/posts/:id/comments
func CreateComment(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  c.GetUint("userID"),
		Comment: input.Comment,
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func findPost(c *gin.Context) (*models.CommunityPost, bool) {
	var post models.CommunityPost
	if err := config.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return &post, true
}
