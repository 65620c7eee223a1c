package notifier

// Notifier shows one result dialog: a title and a text body.
type Notifier interface {
	Show(title, body string) error
}
