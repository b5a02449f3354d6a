package component

// ReloadRequest is a marker used to signal the game loop to rebuild the
// level. Systems create a short-lived entity with it.
type ReloadRequest struct {
	// Next moves on to the following catalog level instead of replaying.
	Next bool
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
