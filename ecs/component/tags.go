package component

type ActorTag struct{}

var ActorTagComponent = NewComponent[ActorTag]()

type PlatformTag struct{}

var PlatformTagComponent = NewComponent[PlatformTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
