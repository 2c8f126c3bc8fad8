package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleFaculty RoleType = "faculty"
	RoleAdmin   RoleType = "admin"
)

// Numeric role identifiers as stored in users.role_id
const (
	RoleIDStudent = 1
	RoleIDFaculty = 2
	RoleIDAdmin   = 3
)

// RoleFromID maps a numeric role id to its role type
func RoleFromID(roleID int) RoleType {
	switch roleID {
	case RoleIDFaculty:
		return RoleFaculty
	case RoleIDAdmin:
		return RoleAdmin
	default:
		return RoleStudent
	}
}

// RoleIDFromPrefix maps a campus uid prefix (stu/fac/adm) to a role id.
// Returns 0 for an unknown prefix.
func RoleIDFromPrefix(prefix string) int {
	switch prefix {
	case "stu":
		return RoleIDStudent
	case "fac":
		return RoleIDFaculty
	case "adm":
		return RoleIDAdmin
	default:
		return 0
	}
}

// EventStatus defines the event approval lifecycle state
type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

// Priority defines the announcement priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriority reports whether p is one of the known priority levels
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ItemType defines the resource kind a favorite points at
type ItemType string

const (
	ItemTypeEvent        ItemType = "event"
	ItemTypeAnnouncement ItemType = "announcement"
)

// ValidItemType reports whether t is a known favoritable type
func ValidItemType(t ItemType) bool {
	return t == ItemTypeEvent || t == ItemTypeAnnouncement
}
