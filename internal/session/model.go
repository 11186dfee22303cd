package session

// Counter is a session's free-tier consumption snapshot.
type Counter struct {
	Used  int `json:"used"`
	Limit int `json:"limit"`
}

// Remaining returns how many free-tier calls are left.
func (c Counter) Remaining() int {
	if c.Used >= c.Limit {
		return 0
	}
	return c.Limit - c.Used
}
