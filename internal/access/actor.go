package access

import "github.com/rdelacruz/stocktrail-backend/pkg/db/models"

// ActorFromUser builds the decision input from a live user record.
func ActorFromUser(u *models.User) Actor {
	if u == nil {
		return Actor{}
	}
	return Actor{
		ID:        u.ID,
		Role:      u.Role,
		StoreID:   u.StoreID,
		CreatedBy: u.CreatedBy,
	}
}
