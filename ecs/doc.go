// Package ecs provides ECS adapters for motion's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges animation events
// (tween start, complete and cancel, visibility reveals) into a [Donburi]
// world as typed events. Subscribe to [AnimationEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	animator.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
