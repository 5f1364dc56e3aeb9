package recorder

import (
	"fmt"

	"github.com/go-theft-auto/rgui"
)

// Platform is a scripted rgui.Platform. Messages queued with Post are
// delivered by WaitMessage in order; when the queue is empty WaitMessage
// reports that the platform has no more messages.
type Platform struct {
	Queue     []rgui.Message
	Forwarded []rgui.Message
	Destroyed []rgui.WindowID
	Created   []rgui.WindowConfig

	// CreateErr is returned by CreateWindow when set.
	CreateErr error
	// NewHandle builds the native handle for a created window. The default
	// is a Handle.
	NewHandle func(id rgui.WindowID) rgui.NativeHandle

	nextID rgui.WindowID
}

var _ rgui.Platform = (*Platform)(nil)

// NewPlatform creates an empty platform. The first window gets ID 1.
func NewPlatform() *Platform {
	return &Platform{nextID: 1}
}

// Post queues messages.
func (p *Platform) Post(msgs ...rgui.Message) {
	p.Queue = append(p.Queue, msgs...)
}

func (p *Platform) CreateWindow(cfg rgui.WindowConfig) (rgui.NativeHandle, error) {
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	if p.nextID == 0 {
		p.nextID = 1
	}
	id := p.nextID
	p.nextID++
	p.Created = append(p.Created, cfg)
	p.Post(rgui.Message{Kind: rgui.MsgCreate, Window: id})
	if p.NewHandle != nil {
		return p.NewHandle(id), nil
	}
	return Handle(id), nil
}

func (p *Platform) WaitMessage() (rgui.Message, bool) {
	if len(p.Queue) == 0 {
		return rgui.Message{}, false
	}
	msg := p.Queue[0]
	p.Queue = p.Queue[1:]
	return msg, true
}

func (p *Platform) Forward(msg rgui.Message) {
	p.Forwarded = append(p.Forwarded, msg)
}

func (p *Platform) Invalidate(h rgui.NativeHandle) {
	p.Post(rgui.Message{Kind: rgui.MsgPaint, Window: h.WindowID()})
}

func (p *Platform) DestroyWindow(h rgui.NativeHandle) error {
	for _, id := range p.Destroyed {
		if id == h.WindowID() {
			return fmt.Errorf("window %d already destroyed", id)
		}
	}
	p.Destroyed = append(p.Destroyed, h.WindowID())
	return nil
}
