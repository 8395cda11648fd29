package basetypes

// Error is an immutable structured failure value carrying a machine-readable
// code and a human-readable message. It is meant to be returned through
// ordinary error plumbing, not panicked.
//
// Equality is by value over (code, message) and reuses the value-object
// machinery.
type Error struct {
	code    string
	message string
}

// NewError creates an Error with the given code and message.
func NewError(code string, message string) Error {
	return Error{code: code, message: message}
}

// Code returns the machine-readable error code.
func (e Error) Code() string {
	return e.code
}

// Message returns the human-readable error message.
func (e Error) Message() string {
	return e.message
}

// Error implements the builtin error interface.
func (e Error) Error() string {
	return e.code + ": " + e.message
}

// EqualityComponents implements ValueObject: the code first, then the message.
func (e Error) EqualityComponents() []any {
	return []any{e.code, e.message}
}

// Equal reports whether both errors carry the same code and message.
func (e Error) Equal(other Error) bool {
	return EqualValueObjects(e, other)
}
