package notify

import "log"

// Sender delivers a prepared notification to the user-facing channel.
type Sender interface {
	Send(notification *Notification) error
}

// LogSender writes notifications to the application log. Stands in until a
// push delivery channel exists.
type LogSender struct{}

func (LogSender) Send(notification *Notification) error {
	log.Printf("Notification: %s - %s", notification.Title, notification.Body)
	return nil
}
