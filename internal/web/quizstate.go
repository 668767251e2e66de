package web

import (
	"fmt"

	"github.com/gorilla/securecookie"
)

const (
	quizStateName   = "quiz"
	quizStateMaxAge = 24 * 60 * 60
)

// quizState is the progress of one game. It round-trips through the play
// form as a single signed field. Signing stops forged scores, not replays: an
// earlier token posted again is accepted until it expires.
type quizState struct {
	Category int
	Previous []int
	Score    int
	// Current is the question being answered, 0 when the next one is due
	Current int
}

type stateCodec struct {
	sc *securecookie.SecureCookie
}

// newStateCodec signs states with key. An empty key gets a random one, which
// only holds for the life of the process.
func newStateCodec(key []byte) *stateCodec {
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	sc := securecookie.New(key, nil)
	sc.MaxAge(quizStateMaxAge)
	return &stateCodec{sc: sc}
}

func (c *stateCodec) encode(st quizState) (string, error) {
	v, err := c.sc.Encode(quizStateName, st)
	if err != nil {
		return "", fmt.Errorf("web: failed to encode quiz state: %w", err)
	}
	return v, nil
}

func (c *stateCodec) decode(v string) (quizState, error) {
	var st quizState
	if err := c.sc.Decode(quizStateName, v, &st); err != nil {
		return quizState{}, fmt.Errorf("web: invalid quiz state: %w", err)
	}
	return st, nil
}
