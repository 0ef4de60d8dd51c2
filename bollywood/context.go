package bollywood

// Context is handed to an actor for every message it processes.
type Context interface {
	Engine() *Engine
	Self() *PID
	// Sender is nil for messages sent from outside the actor system.
	Sender() *PID
	Message() interface{}
	// Reply answers an Ask, or sends to Sender when the message was not an Ask.
	Reply(message interface{})
}

type actorContext struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
	reply   chan interface{}
}

func (c *actorContext) Engine() *Engine      { return c.engine }
func (c *actorContext) Self() *PID           { return c.self }
func (c *actorContext) Sender() *PID         { return c.sender }
func (c *actorContext) Message() interface{} { return c.message }

func (c *actorContext) Reply(message interface{}) {
	if c.reply != nil {
		select {
		case c.reply <- message:
		default:
		}
		return
	}
	if c.sender != nil {
		c.engine.Send(c.sender, message, c.self)
	}
}
