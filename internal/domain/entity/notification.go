package entity

// Notification is the content of a scheduled alert.
type Notification struct {
	Title string
	Body  string
}
