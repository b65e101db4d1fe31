package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/afrikipresse/subscription-service/internal/pkg/database"
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
)

// SubscriptionRepo handles subscription data access operations
type SubscriptionRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewSubscriptionRepo creates a new subscription repository
func NewSubscriptionRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *SubscriptionRepo {
	return &SubscriptionRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// cacheEnabled reports whether the entitlement cache can be used
func (r *SubscriptionRepo) cacheEnabled() bool {
	return r.redisClient != nil && r.redisClient.GetClient() != nil
}
