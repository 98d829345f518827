package bridge

// Host is the surface rendering the embedded document. The bridge delegates
// user-visible side effects and history navigation to it and pushes scripts
// into the document through it.
type Host interface {
	// ShowToast displays a transient user-visible message.
	ShowToast(message string, long bool)

	CanGoBack() bool
	GoBack()
	CanGoForward() bool
	GoForward()

	// Navigate opens a native destination with optional opaque params.
	Navigate(destination, params string)

	// PushScript evaluates js inside the currently loaded document.
	PushScript(js string)
}
