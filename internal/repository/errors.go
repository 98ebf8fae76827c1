package repository

import "errors"

// Common repository errors. Soft-deleted rows are treated as not found.
var (
	ErrWorkspaceNotFound     = errors.New("workspace not found")
	ErrWorkspaceUserNotFound = errors.New("workspace user not found")
	ErrProjectNotFound       = errors.New("project not found")
	ErrTaskListNotFound      = errors.New("task list not found")
	ErrTaskNotFound          = errors.New("task not found")
	ErrSubtaskNotFound       = errors.New("subtask not found")
	ErrCommentNotFound       = errors.New("comment not found")
	ErrAttachmentNotFound    = errors.New("attachment not found")
	ErrNotificationNotFound  = errors.New("notification not found")
)

// IsNotFound reports whether err is any of the entity not-found sentinels.
func IsNotFound(err error) bool {
	for _, sentinel := range []error{
		ErrWorkspaceNotFound,
		ErrWorkspaceUserNotFound,
		ErrProjectNotFound,
		ErrTaskListNotFound,
		ErrTaskNotFound,
		ErrSubtaskNotFound,
		ErrCommentNotFound,
		ErrAttachmentNotFound,
		ErrNotificationNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
