package walletadapter

import (
	"github.com/ethereum/go-ethereum/event"
)

// EventName identifies a lifecycle event of the adapter contract
type EventName string

const (
	EventReadyStateChange EventName = "readyStateChange"
	EventConnect          EventName = "connect"
	EventDisconnect       EventName = "disconnect"
	EventAccountChange    EventName = "accountChange"
	EventNetworkChange    EventName = "networkChange"
	EventError            EventName = "error"
)

// Event is emitted by an adapter to its observers.
// The concrete types below are the only implementations.
type Event interface {
	Name() EventName
}

// ReadyStateChangeEvent is fired when extension detection changes the ready state
type ReadyStateChangeEvent struct {
	State ReadyState
}

// ConnectEvent is fired after a successful connect
type ConnectEvent struct {
	PublicKey string
}

// DisconnectEvent is fired at the end of every disconnect
type DisconnectEvent struct{}

// AccountChangeEvent is fired when the extension reports a different account
type AccountChangeEvent struct {
	PublicKey string
}

// NetworkChangeEvent is fired when the extension switches network
type NetworkChangeEvent struct {
	Network string
}

// ErrorEvent carries a failure that was also returned to the caller
type ErrorEvent struct {
	Err error
}

func (ReadyStateChangeEvent) Name() EventName { return EventReadyStateChange }
func (ConnectEvent) Name() EventName          { return EventConnect }
func (DisconnectEvent) Name() EventName       { return EventDisconnect }
func (AccountChangeEvent) Name() EventName    { return EventAccountChange }
func (NetworkChangeEvent) Name() EventName    { return EventNetworkChange }
func (ErrorEvent) Name() EventName            { return EventError }

// Emitter fans adapter events out to subscribers.
// Emit blocks until every subscribed channel has accepted the event, so
// subscribers must keep draining their channels. The zero value is ready to use.
type Emitter struct {
	feed  event.FeedOf[Event]
	scope event.SubscriptionScope
}

// Subscribe registers ch to receive every subsequent event
func (e *Emitter) Subscribe(ch chan<- Event) event.Subscription {
	return e.scope.Track(e.feed.Subscribe(ch))
}

// Emit delivers ev and returns the number of subscribers it reached
func (e *Emitter) Emit(ev Event) int {
	return e.feed.Send(ev)
}

// Close ends all subscriptions created through Subscribe
func (e *Emitter) Close() {
	e.scope.Close()
}
