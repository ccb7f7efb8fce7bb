package constant

import "time"

const (
	Empty   = ""
	Asterix = "*"
)

// ServerEnvDevelopment turns on console logging and the swagger UI.
const ServerEnvDevelopment = "development"

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
)

// PqErrorCodeUniqueViolation is the SQLSTATE postgres raises on a duplicate key.
const PqErrorCodeUniqueViolation = "23505"

// Roles, most privileged first. Staff handle guest requests and chat.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleUser       = "user"
)

// Columns every table carries.
const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)
