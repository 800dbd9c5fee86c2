package utils

import (
	"log"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LogLoginEvent records a customer login to the login_events table (pgx path,
// fire-and-forget: failures are logged, never surfaced to the user).
func LogLoginEvent(c *gin.Context, userID uuid.UUID) error {
	ctx := c.Request.Context()

	query := `
		INSERT INTO login_events (id, user_id, logged_in_at, ip_address, user_agent)
		VALUES ($1, $2, NOW(), $3, $4)
	`

	_, err := config.StorePool.Exec(ctx, query,
		uuid.New().String(),
		userID.String(),
		c.ClientIP(),
		c.GetHeader("User-Agent"),
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	log.Printf("✅ Login event logged for user: %s from IP: %s", userID.String(), c.ClientIP())
	return nil
}
