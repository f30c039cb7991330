package ports

// Notifier surfaces important messages to the user.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Important displays a message that needs the user's attention.
	Important(title, message string)
}
