package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DOCUMENT_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by all constructors below.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published on the activity bus.
const (
	TypeUserSignedUp          = "USER_SIGNED_UP"
	TypeAssistantTurnResolved = "ASSISTANT_TURN_RESOLVED"
	TypeAssistantTurnFailed   = "ASSISTANT_TURN_FAILED"
	TypeDocumentCreated       = "DOCUMENT_CREATED"
	TypeDocumentUpdated       = "DOCUMENT_UPDATED"
	TypeDocumentDeleted       = "DOCUMENT_DELETED"
	TypeSupplierCreated       = "SUPPLIER_CREATED"
	TypeSupplierUpdated       = "SUPPLIER_UPDATED"
	TypeSupplierDeleted       = "SUPPLIER_DELETED"
)

func newEvent(eventType, userID string, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["user_id"] = userID
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func NewUserSignedUp(userID, email string) Event {
	return newEvent(TypeUserSignedUp, userID, map[string]interface{}{
		"email": email,
	})
}

func NewAssistantTurnResolved(userID, sessionID string) Event {
	return newEvent(TypeAssistantTurnResolved, userID, map[string]interface{}{
		"session_id": sessionID,
	})
}

func NewAssistantTurnFailed(userID, sessionID, reason string) Event {
	return newEvent(TypeAssistantTurnFailed, userID, map[string]interface{}{
		"session_id": sessionID,
		"reason":     reason,
	})
}

func NewDocumentCreated(userID, documentID, name string) Event {
	return newEvent(TypeDocumentCreated, userID, map[string]interface{}{
		"document_id": documentID,
		"name":        name,
	})
}

func NewDocumentUpdated(userID, documentID, name string) Event {
	return newEvent(TypeDocumentUpdated, userID, map[string]interface{}{
		"document_id": documentID,
		"name":        name,
	})
}

func NewDocumentDeleted(userID string, documentIDs []string) Event {
	return newEvent(TypeDocumentDeleted, userID, map[string]interface{}{
		"document_ids": documentIDs,
	})
}

func NewSupplierCreated(userID, supplierID, name string) Event {
	return newEvent(TypeSupplierCreated, userID, map[string]interface{}{
		"supplier_id": supplierID,
		"name":        name,
	})
}

func NewSupplierUpdated(userID, supplierID, name string) Event {
	return newEvent(TypeSupplierUpdated, userID, map[string]interface{}{
		"supplier_id": supplierID,
		"name":        name,
	})
}

func NewSupplierDeleted(userID string, supplierIDs []string) Event {
	return newEvent(TypeSupplierDeleted, userID, map[string]interface{}{
		"supplier_ids": supplierIDs,
	})
}
