package constants

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// TaskStatuses lists every allowed status. Any status may move to any other.
var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusDone}

func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s TaskStatus) String() string {
	return string(s)
}
