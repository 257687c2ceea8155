package input

import (
	"time"

	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/engine"
)

// ThrottleHold turns discrete throttle presses into a held pedal
// Each press keeps the throttle applied for ThrottleHoldWindow
type ThrottleHold struct {
	intent engine.Intent
	until  time.Time
}

// Press records a throttle press at now; non-throttle intents are ignored
func (h *ThrottleHold) Press(intent engine.Intent, now time.Time) {
	if !intent.IsThrottle() {
		return
	}
	h.intent = intent
	h.until = now.Add(constants.ThrottleHoldWindow)
}

// Active returns the held throttle at now, IntentNone once released
func (h *ThrottleHold) Active(now time.Time) engine.Intent {
	if h.intent == engine.IntentNone || !now.Before(h.until) {
		return engine.IntentNone
	}
	return h.intent
}

// Release drops any held throttle
func (h *ThrottleHold) Release() {
	h.intent = engine.IntentNone
}
