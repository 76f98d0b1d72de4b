package model

// View selects what the journal page shows below the forms. It travels
// with each request and response; the server keeps no view state.
type View string

const (
	ViewHome    View = "home"
	ViewReply   View = "reply"
	ViewHistory View = "history"
)

// ParseView maps a query or form value to a View, defaulting to ViewHome.
func ParseView(s string) View {
	switch View(s) {
	case ViewReply, ViewHistory:
		return View(s)
	}
	return ViewHome
}
