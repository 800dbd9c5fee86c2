package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AngelSpinazzola/hardware-store-backend/config"
)

// NextOrderNumber allocates a gapless-enough order number from a Postgres
// sequence via the pgx pool: ORD-<year>-<six digit counter>.
// The sequence is created by the seed command.
func NextOrderNumber(ctx context.Context) (string, error) {
	var seq int64
	err := config.StorePool.QueryRow(ctx, "SELECT nextval('order_number_seq')").Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("allocate order number: %w", err)
	}
	return fmt.Sprintf("ORD-%d-%06d", time.Now().UTC().Year(), seq), nil
}
