package engine

// Component is data or behaviour attached to a GameObject. Most rig
// components are passive (colliders, cues, layout); the ones that act on
// their own also implement Starter or Updater.
type Component interface {
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Starter is called once, before the first Update.
type Starter interface {
	Start()
}

// Updater is called every frame while the GameObject is active.
type Updater interface {
	Update(deltaTime float32)
}

// LookProvider is implemented by components that steer the head's look
// direction. Camera uses it to build the head pose.
type LookProvider interface {
	GetLookAngles() (yaw, pitch float32)
	GetEyeHeight() float32
}

// BaseComponent links a component to its GameObject.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
