// Package ecs provides ECS adapters for panel's widget event system.
//
// The primary adapter is [NewDonburiSink], which forwards panel events
// (category toggles, deletes, add requests, reorder drops and selections)
// into a [Donburi] world as typed events. Subscribe to [PanelEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tree.Events = sink
//	list.Events = sink
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
