package market

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/atharvakonge/portfolio-tracker/internal/models"
)

// QuoteHub fans validated market quotes out to subscribers.
// Quotes come from whatever feeds prices in; the hub never fetches them.
type QuoteHub struct {
	mu          sync.RWMutex
	subscribers map[chan models.MarketQuote]struct{}
	buffer      int
	log         zerolog.Logger
}

// NewQuoteHub creates a hub whose subscribers buffer up to buffer quotes
func NewQuoteHub(buffer int, log zerolog.Logger) *QuoteHub {
	if buffer < 1 {
		buffer = 1
	}
	return &QuoteHub{
		subscribers: make(map[chan models.MarketQuote]struct{}),
		buffer:      buffer,
		log:         log.With().Str("component", "quote_hub").Logger(),
	}
}

// Subscribe registers a new subscriber. The returned cancel func
// unregisters it and closes the channel; it is safe to call more than once.
func (h *QuoteHub) Subscribe() (<-chan models.MarketQuote, func()) {
	ch := make(chan models.MarketQuote, h.buffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish validates q and hands it to every subscriber. Subscribers whose
// buffer is full miss the quote. It returns how many received it.
func (h *QuoteHub) Publish(q models.MarketQuote) (int, error) {
	q, err := models.NewMarketQuote(q)
	if err != nil {
		return 0, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for ch := range h.subscribers {
		select {
		case ch <- q:
			delivered++
		default:
			h.log.Warn().Str("symbol", q.Symbol).Msg("subscriber buffer full, quote dropped")
		}
	}

	h.log.Debug().
		Str("symbol", q.Symbol).
		Float64("price", q.Price).
		Int("delivered", delivered).
		Msg("quote published")
	return delivered, nil
}

// Subscribers returns the number of active subscribers
func (h *QuoteHub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
