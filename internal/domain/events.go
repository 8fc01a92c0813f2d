package domain

import "time"

// Activity types recorded in the activity log.
const (
	ActivityItemCreated = "item_created"
	ActivityItemUpdated = "item_updated"
	ActivityItemDeleted = "item_deleted"
	ActivityOrderPlaced = "order_placed"
	ActivityQRGenerated = "qr_generated"
	ActivityLogin       = "login"
	ActivityLogout      = "logout"
)

// Actor is the identity performing a mutation. Customers and unauthenticated
// callers use AnonymousActor; background jobs use SystemActor.
type Actor struct {
	ManagerID *int
	Label     string
}

var (
	AnonymousActor = Actor{Label: "anonymous"}
	SystemActor    = Actor{Label: "system"}
)

func ManagerActor(managerID int) Actor {
	id := managerID
	return Actor{ManagerID: &id, Label: "manager"}
}

// ActivityEvent is emitted by mutation paths and consumed by the activity
// dispatcher, which writes ActivityLog rows. Mutations never write the log
// directly.
type ActivityEvent struct {
	Type      string            `json:"type"`
	ManagerID *int              `json:"manager_id,omitempty"`
	Details   map[string]string `json:"details"`
	Timestamp time.Time         `json:"timestamp"`
}

func NewActivityEvent(activityType string, actor Actor, details map[string]string) ActivityEvent {
	return ActivityEvent{
		Type:      activityType,
		ManagerID: actor.ManagerID,
		Details:   details,
		Timestamp: time.Now(),
	}
}
