package domain

// ResolvedRef pairs an element reference with the element it names.
type ResolvedRef struct {
	Ref ElementRefDefinition `json:"ref"`
	// Element is nil when the reference could not be resolved.
	Element *ElementDefinition `json:"element"`
}

// Notification is a message raised for the user's attention.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
