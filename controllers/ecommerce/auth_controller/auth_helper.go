package auth_controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func createOrUpdateUser(c *gin.Context, googleUser *models.GoogleUserInfo) (*models.User, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.StoreGorm.WithContext(ctx)

	var user models.User
	result := db.Where("email = ?", googleUser.Email).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// First-time Google login, create user
			user = models.User{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      googleUser.ID,
				Provider:      "google",
				EmailVerified: googleUser.VerifiedEmail,
				Status:        "active",
			}
			if googleUser.Picture != "" {
				user.Avatar = &googleUser.Picture
			}
			if err := db.Create(&user).Error; err != nil {
				return nil, fmt.Errorf("create user: %w", err)
			}
			return &user, nil
		}
		return nil, result.Error
	}

	// Existing user: refresh profile fields that Google owns
	updates := map[string]interface{}{
		"google_id":      googleUser.ID,
		"name":           googleUser.Name,
		"email_verified": googleUser.VerifiedEmail,
	}
	if googleUser.Picture != "" {
		updates["avatar"] = googleUser.Picture
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return &user, nil
}

// redirectToFrontendWithError sends the user back to the storefront login
// popup with an error query param instead of rendering a backend error page.
func redirectToFrontendWithError(c *gin.Context, message string) {
	redirectURL := fmt.Sprintf("%s/auth-popup?error=%s", config.GetFrontendURL(), message)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
