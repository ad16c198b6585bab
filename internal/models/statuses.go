package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleEmployee UserRole = "employee"
)

// CustomerStatus is the stage of a naming-service request.
type CustomerStatus string

const (
	CustomerStatusNewRequest CustomerStatus = "new_request"
	CustomerStatusInProgress CustomerStatus = "in_progress"
	CustomerStatusCompleted  CustomerStatus = "completed"
	CustomerStatusRejected   CustomerStatus = "rejected"
)

// customerTransitions is the allowed-edge table. Transitions are enforced
// here, not by which client buttons happen to be rendered.
var customerTransitions = map[CustomerStatus][]CustomerStatus{
	CustomerStatusNewRequest: {CustomerStatusInProgress, CustomerStatusRejected},
	CustomerStatusInProgress: {CustomerStatusCompleted},
	CustomerStatusCompleted:  {CustomerStatusInProgress}, // manual revert
	CustomerStatusRejected:   {CustomerStatusNewRequest},
}

// CanTransition reports whether from -> to is an allowed customer edge.
func (from CustomerStatus) CanTransition(to CustomerStatus) bool {
	for _, next := range customerTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Valid reports whether the status is one of the known stages.
func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusNewRequest, CustomerStatusInProgress, CustomerStatusCompleted, CustomerStatusRejected:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

type LeaveType string

const (
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
	LeaveTypeOther  LeaveType = "other"
)
