package ecs

import (
	"github.com/skilllens/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for motion lifecycle events.
// Subscribe to this in your ECS systems to receive tween and reveal events.
var AnimationEventType = events.NewEventType[motion.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to AnimationEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) motion.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event motion.Event) {
	AnimationEventType.Publish(s.world, event)
}
