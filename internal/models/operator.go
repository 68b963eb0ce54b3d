package models

// Operator roles. Dispatchers press car and landing buttons; observers only
// read state and the event log.
const (
	RoleDispatcher = "dispatcher"
	RoleObserver   = "observer"
)

// Operator is a person or system allowed to drive the API.
type Operator struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

// CanDispatch reports whether the operator may register requests and calls.
func (o Operator) CanDispatch() bool {
	return o.Role == RoleDispatcher
}
