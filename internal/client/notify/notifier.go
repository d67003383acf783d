// Package notify is the user-facing acknowledgment channel, standing in for
// the toast dialogs of the original web client.
package notify

// Notifier shows a short acknowledgment after a user-visible action.
// Success notifications auto-dismiss; error notifications stay until the
// user acknowledges them. Implementations must not block state updates.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}
