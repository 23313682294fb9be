package inference

import "time"

// EndpointStats summarises the requests sent to one endpoint since start.
type EndpointStats struct {
	Requests   int64         `json:"requests"`
	Failures   int64         `json:"failures"`
	AvgLatency time.Duration `json:"avg_latency"`
	LastUsed   time.Time     `json:"last_used,omitempty"`
}

// SuccessRate returns the share of successful requests in [0,1], or 0 when
// nothing was sent yet.
func (s EndpointStats) SuccessRate() float64 {
	if s.Requests == 0 {
		return 0
	}
	return float64(s.Requests-s.Failures) / float64(s.Requests)
}

func (c *Client) record(endpoint string, latency time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.stats[endpoint]
	if !ok {
		st = &endpointStats{}
		c.stats[endpoint] = st
	}
	st.requests++
	st.latency += latency
	st.last = time.Now()
	if err != nil {
		st.failures++
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Dur("latency", latency).Msg("Inference request failed")
	}
}

// Stats returns a snapshot per endpoint.
func (c *Client) Stats() map[string]EndpointStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]EndpointStats, len(c.stats))
	for name, st := range c.stats {
		s := EndpointStats{Requests: st.requests, Failures: st.failures, LastUsed: st.last}
		if st.requests > 0 {
			s.AvgLatency = st.latency / time.Duration(st.requests)
		}
		out[name] = s
	}
	return out
}

// Totals aggregates Stats over all endpoints.
func (c *Client) Totals() EndpointStats {
	var total EndpointStats
	var latency time.Duration
	for _, s := range c.Stats() {
		total.Requests += s.Requests
		total.Failures += s.Failures
		latency += s.AvgLatency * time.Duration(s.Requests)
		if s.LastUsed.After(total.LastUsed) {
			total.LastUsed = s.LastUsed
		}
	}
	if total.Requests > 0 {
		total.AvgLatency = latency / time.Duration(total.Requests)
	}
	return total
}
