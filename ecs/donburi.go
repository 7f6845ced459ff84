package ecs

import (
	"github.com/phanxgames/pando"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for pando gestures.
var GestureEventType = events.NewEventType[pando.GestureEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns an EventSink that publishes to GestureEventType in
// world.
func NewDonburiSink(world donburi.World) pando.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Publish(e pando.GestureEvent) {
	GestureEventType.Publish(s.world, e)
}
