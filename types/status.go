package types

// Role - user role enum type
type Role string

const (
	RoleUser   Role = "USER"
	RoleEditor Role = "EDITOR"
	RoleAdmin  Role = "ADMIN"
)

// BlogStatus - blog post lifecycle enum type
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "DRAFT"
	BlogStatusPublished BlogStatus = "PUBLISHED"
	BlogStatusArchived  BlogStatus = "ARCHIVED"
)

// ContactStatus - contact message lifecycle enum type
type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "NEW"
	ContactStatusInProgress ContactStatus = "IN_PROGRESS"
	ContactStatusCompleted  ContactStatus = "COMPLETED"
	ContactStatusSpam       ContactStatus = "SPAM"
)

// SortDirection - query sort direction
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)
