package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenNotFound      = errors.New("token not found")
)

// RegisterUser creates an account with a hashed password and issues its first
// token. Fails with ErrUsernameTaken when the username is already in use.
func RegisterUser(username, email, password string) (*models.User, string, error) {
	var count int64
	if err := config.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// Unique index backs up the count check under concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// AuthenticateUser verifies the password by bcrypt comparison and returns a new
// token for the account. Lookup and comparison failures collapse into the same
// error so callers cannot tell whether the username exists.
func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return IssueToken(user.ID)
}

// IssueToken replaces the account's token wholesale: any previous row is
// deleted, keeping exactly one live token per account.
func IssueToken(userID uint) (string, error) {
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error; err != nil {
		return "", err
	}
	token := models.AuthToken{Key: utils.NewTokenKey(), UserID: userID}
	if err := config.DB.Create(&token).Error; err != nil {
		return "", err
	}
	return token.Key, nil
}

// RevokeToken deletes the token row, invalidating the credential immediately.
func RevokeToken(key string) error {
	res := config.DB.Where("key = ?", key).Delete(&models.AuthToken{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}
