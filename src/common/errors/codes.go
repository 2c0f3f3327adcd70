package errors

// Common error codes used across domains
const (
	CodeNotFound       Code = "not_found"
	CodeAlreadyExists  Code = "already_exists"
	CodeInvalidRequest Code = "invalid_request"
	CodeUnauthorized   Code = "unauthorized"
	CodeForbidden      Code = "forbidden"
	CodeConflict       Code = "conflict"
	CodeInternal       Code = "internal_error"
	CodeUnavailable    Code = "unavailable"
)

// ============================================================================
// Authentication Errors
// ============================================================================

var (
	// ErrInvalidCredentials is returned when name, user id and password do not match a user
	ErrInvalidCredentials = New(DomainAuth, "invalid_credentials",
		"Invalid name, user id or password")

	// ErrNotManager is returned when a claimed id is not a manager or admin
	ErrNotManager = New(DomainAuth, "not_manager",
		"ERROR: Not A Manager ID")

	// ErrWrongManager is returned when a manager id does not match the logged in user
	ErrWrongManager = New(DomainAuth, "wrong_manager",
		"ERROR: Not Correct Manager ID")

	// ErrNotAdmin is returned when a claimed id is not an admin
	ErrNotAdmin = New(DomainAuth, "not_admin",
		"ERROR: Not An Admin ID")

	// ErrWrongAdmin is returned when an admin id does not match the logged in user
	ErrWrongAdmin = New(DomainAuth, "wrong_admin",
		"ERROR: Not Correct Admin ID")

	// ErrCustomerOnly is returned when a manager or admin tries a customer operation
	ErrCustomerOnly = New(DomainAuth, CodeForbidden,
		"Must be logged in as a customer!")
)

// ============================================================================
// User Errors
// ============================================================================

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = New(DomainUser, CodeNotFound,
		"User not found")

	// ErrUserInUse is returned when a user is still referenced by stores or audit rows
	ErrUserInUse = New(DomainUser, CodeConflict,
		"User is still referenced by stores, product updates or supply requests")

	// ErrInvalidUserData is returned when user data fails validation
	ErrInvalidUserData = New(DomainUser, CodeInvalidRequest,
		"Invalid user data")
)

// ============================================================================
// Store Errors
// ============================================================================

var (
	// ErrInvalidStore is returned when a store is not managed by the acting manager
	ErrInvalidStore = New(DomainStore, "invalid_store",
		"ERROR: Invalid Store ID")

	// ErrStoreNotFound is returned when a store cannot be found
	ErrStoreNotFound = New(DomainStore, CodeNotFound,
		"Store not found")

	// ErrStoreOutOfRange is returned when a customer orders from a store that is too far away
	ErrStoreOutOfRange = New(DomainStore, "out_of_range",
		"Store not in range")
)

// ============================================================================
// Product Errors
// ============================================================================

var (
	// ErrProductNotFound is returned when a (store, product) pair does not exist
	ErrProductNotFound = New(DomainProduct, CodeNotFound,
		"Product not found in store")

	// ErrProductAlreadyExists is returned when a store already carries the product
	ErrProductAlreadyExists = New(DomainProduct, CodeAlreadyExists,
		"Product already exists in store")

	// ErrInvalidProductData is returned when product data fails validation
	ErrInvalidProductData = New(DomainProduct, CodeInvalidRequest,
		"Invalid product data")
)

// ============================================================================
// Order and Supply Errors
// ============================================================================

var (
	// ErrInsufficientStock is returned when an order asks for more units than the store holds
	ErrInsufficientStock = New(DomainOrder, "insufficient_stock",
		"Not enough inventory in store!")

	// ErrInvalidOrderData is returned when order data fails validation
	ErrInvalidOrderData = New(DomainOrder, CodeInvalidRequest,
		"Invalid order data")

	// ErrWarehouseNotFound is returned when a supply request names an unknown warehouse
	ErrWarehouseNotFound = New(DomainSupply, CodeNotFound,
		"Warehouse not found")

	// ErrInvalidSupplyData is returned when supply request data fails validation
	ErrInvalidSupplyData = New(DomainSupply, CodeInvalidRequest,
		"Invalid supply request data")
)

// ============================================================================
// Database Errors
// ============================================================================

var (
	// ErrDatabaseConnection is returned when the database cannot be reached at startup
	ErrDatabaseConnection = &Error{
		Domain:   DomainDatabase,
		Code:     "connection_failed",
		Message:  "Unable to connect to database",
		ExitCode: ExitUnavailable,
	}

	// ErrDatabaseQuery is returned when a database query fails
	ErrDatabaseQuery = New(DomainDatabase, "query_failed",
		"Database query failed")

	// ErrDatabaseTransaction is returned when a database transaction fails
	ErrDatabaseTransaction = New(DomainDatabase, "transaction_failed",
		"Database transaction failed")

	// ErrDuplicateKey is returned when a statement violates a unique or primary key constraint
	ErrDuplicateKey = New(DomainDatabase, "duplicate_key",
		"Duplicate key value")

	// ErrForeignKeyViolation is returned when a statement breaks a foreign key reference
	ErrForeignKeyViolation = New(DomainDatabase, "foreign_key_violation",
		"Foreign key constraint violated")

	// ErrUnsupportedDriver is returned when the configured driver is unknown
	ErrUnsupportedDriver = New(DomainDatabase, "unsupported_driver",
		"Unsupported database driver")
)

// ============================================================================
// Validation and Input Errors
// ============================================================================

var (
	// ErrInvalidFieldValue is returned when a field value is invalid
	ErrInvalidFieldValue = New(DomainValidation, "invalid_value",
		"Your input is invalid!")

	// ErrUnrecognizedChoice is returned when a menu choice has no handler
	ErrUnrecognizedChoice = New(DomainInput, "unrecognized_choice",
		"Unrecognized choice!")

	// ErrUsage is returned when the command line has the wrong shape
	ErrUsage = New(DomainInput, "usage",
		"Usage: retail <dbname> <port> <user>")
)

// ============================================================================
// Internal Errors
// ============================================================================

var (
	// ErrInternal is a generic internal error
	ErrInternal = New(DomainInternal, CodeInternal,
		"Internal error")
)
