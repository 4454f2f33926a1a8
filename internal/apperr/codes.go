package apperr

// Code is a stable machine-readable error code. The integer values are an
// external contract shared with API clients; never renumber them.
type Code int

// Request/validation errors (1xxx)
const (
	// CodeMissingField indicates a required request field is absent.
	CodeMissingField Code = 1001
	// CodeInvalidInput indicates a field is present but unusable.
	CodeInvalidInput Code = 1002
	// CodeDuplicateUser indicates the username is already taken.
	CodeDuplicateUser Code = 1003
)

// Authentication/authorization errors (2xxx)
const (
	// CodeMissingToken indicates no bearer or refresh token was supplied.
	CodeMissingToken Code = 2001
	// CodeInvalidToken covers malformed, tampered, wrong-type and expired tokens.
	CodeInvalidToken Code = 2002
	// CodeInsufficientRole indicates the principal lacks the required role.
	CodeInsufficientRole Code = 2003
	// CodeInvalidCredentials indicates an unknown user or a failed password check.
	CodeInvalidCredentials Code = 2004
	// CodeRevokedToken indicates a refresh token whose revocation entry is gone.
	CodeRevokedToken Code = 2005
)

// Server-side errors (5xxx)
const (
	// CodeStoreUnavailable indicates the user or revocation store failed.
	CodeStoreUnavailable Code = 5001
	// CodeInternal indicates an unexpected server error.
	CodeInternal Code = 5000
)
