// Package ecs bridges pando's gesture dispatch into an ECS world.
//
// [NewDonburiSink] publishes every dispatched hover, leave, down, up, click,
// drag and scroll as a typed [Donburi] event. Subscribe to
// [GestureEventType] in your ECS systems to receive them:
//
//	world := donburi.NewWorld()
//	app := pando.NewApp(root, pando.WithEventSink(ecs.NewDonburiSink(world)))
//
// Events are queued by donburi; drain them once per tick with
// GestureEventType.ProcessEvents(world).
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
