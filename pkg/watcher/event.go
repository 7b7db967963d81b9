package watcher

import "time"

// Op is the kind of change observed on a watched root.
type Op uint8

const (
	OpCreate Op = iota + 1
	OpRemove
	OpModify
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpModify:
		return "modify"
	default:
		return "unknown"
	}
}

// Event describes one observed change. Path is the full path of the changed
// entry, Root the watched directory it belongs to.
type Event struct {
	Root string
	Path string
	Op   Op
	At   time.Time
}
