package models

// Audit event actions published to the audit topic.
const (
	AuditActionBoost    = "boost"
	AuditActionBan      = "ban"
	AuditActionUnban    = "unban"
	AuditActionRegister = "register_listing"
)

// AuditEvent records a user-initiated state change, published fire-and-forget
// to Kafka. Delivery is best-effort and never fails the originating action.
type AuditEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID    string `json:"user_id"`   // UserID is the acting user.
	Action    string `json:"action"`    // Action is the event kind, e.g. "boost" or "ban".
	Detail    string `json:"detail"`    // Detail carries action-specific context such as a ban reason.
}
