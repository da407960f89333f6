package events

func NewRecorder() *Recorder {
	return &Recorder{
		listeners: make(map[string][]*Subscription),
	}
}

func (r *Recorder) Send(name string, payload interface{}) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.sent = append(r.sent, Sent{Name: name, Payload: payload})

	return nil
}

func (r *Recorder) On(name string, handler Handler) *Subscription {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.nextID++

	subscription := &Subscription{
		id:      r.nextID,
		name:    name,
		handler: handler,
		off:     r.remove,
	}

	r.listeners[name] = append(r.listeners[name], subscription)

	return subscription
}

func (r *Recorder) Off(subscription *Subscription) {
	subscription.Unsubscribe()
}

// Emit runs every listener of name synchronously and returns how many ran.
func (r *Recorder) Emit(name string, payload interface{}) (int, error) {
	event, err := New(name, 0, payload)

	if err != nil {
		return 0, err
	}

	r.lock.Lock()
	listeners := make([]*Subscription, len(r.listeners[name]))
	copy(listeners, r.listeners[name])
	r.lock.Unlock()

	for _, subscription := range listeners {
		subscription.handler(event)
	}

	return len(listeners), nil
}

func (r *Recorder) Sent() []Sent {
	r.lock.Lock()
	defer r.lock.Unlock()

	sent := make([]Sent, len(r.sent))
	copy(sent, r.sent)

	return sent
}

func (r *Recorder) Names() []string {
	names := make([]string, 0)

	for _, sent := range r.Sent() {
		names = append(names, sent.Name)
	}

	return names
}

func (r *Recorder) Listeners(name string) int {
	r.lock.Lock()
	defer r.lock.Unlock()

	return len(r.listeners[name])
}

func (r *Recorder) remove(subscription *Subscription) {
	r.lock.Lock()
	defer r.lock.Unlock()

	listeners := r.listeners[subscription.name]

	for i, s := range listeners {
		if s.id == subscription.id {
			r.listeners[subscription.name] = append(listeners[:i:i], listeners[i+1:]...)
			break
		}
	}
}
