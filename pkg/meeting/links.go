// Package meeting assigns video-call links to interviews.
package meeting

import (
	"hash/fnv"
	"net/url"
	"strings"
)

// Links hands out meeting URLs. Approved interviews get a room from a fixed
// pool; rescheduled interviews get a personal link per participant.
type Links struct {
	Pool    []string
	BaseURL string
}

// DefaultPool is used when no pool is configured.
var DefaultPool = []string{
	"https://meet.google.com/xkd-qwmz-pfa",
	"https://meet.google.com/bnr-tvzc-ehk",
	"https://meet.google.com/okj-wsly-mup",
	"https://meet.google.com/hfe-rdyn-qcz",
}

func NewLinks(pool []string, baseURL string) *Links {
	if len(pool) == 0 {
		pool = DefaultPool
	}
	return &Links{Pool: pool, BaseURL: strings.TrimRight(baseURL, "/")}
}

// ForRequest picks a pool room for the interview. The same id always maps to the same room.
func (l *Links) ForRequest(interviewRequestID string) string {
	pool := l.Pool
	if len(pool) == 0 {
		pool = DefaultPool
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(interviewRequestID))
	return pool[int(h.Sum32()%uint32(len(pool)))]
}

// ForParty builds the personal link a participant uses to join the interview.
func (l *Links) ForParty(interviewRequestID, name, role string) string {
	q := url.Values{}
	q.Set("name", strings.TrimSpace(name))
	q.Set("role", role)
	return l.BaseURL + "/room/" + url.PathEscape(interviewRequestID) + "?" + q.Encode()
}
