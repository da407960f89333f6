package wss

func NewHub() *Hub {
	return &Hub{
		links: make(map[string]*Link),
	}
}

func (h *Hub) Add(link *Link) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.links[link.ID] = link
}

func (h *Hub) Remove(link *Link) {
	h.lock.Lock()
	defer h.lock.Unlock()

	delete(h.links, link.ID)
}

func (h *Hub) Count() int {
	h.lock.RLock()
	defer h.lock.RUnlock()

	return len(h.links)
}

func (h *Hub) CloseAll() {
	h.lock.RLock()
	links := make([]*Link, 0, len(h.links))
	for _, link := range h.links {
		links = append(links, link)
	}
	h.lock.RUnlock()

	for _, link := range links {
		link.Close()
	}
}
