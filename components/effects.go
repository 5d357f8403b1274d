package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// FlashData tracks an entity's hit flash.
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()

// ScreenData holds the screen shake and flash envelopes. Renderers read
// Shake and Flash; UpdateScreenEffects advances the tweens.
type ScreenData struct {
	Shake      float64
	Flash      float64
	shakeTween *gween.Tween
	flashTween *gween.Tween
}

// StartShake replaces the shake envelope unless a stronger one is running.
func (s *ScreenData) StartShake(intensity float64, ticks int) {
	if s.shakeTween != nil && s.Shake > intensity {
		return
	}
	s.Shake = intensity
	s.shakeTween = gween.New(float32(intensity), 0, float32(ticks), ease.Linear)
}

// StartFlash replaces the flash envelope unless a stronger one is running.
func (s *ScreenData) StartFlash(intensity float64, ticks int) {
	if s.flashTween != nil && s.Flash > intensity {
		return
	}
	s.Flash = intensity
	s.flashTween = gween.New(float32(intensity), 0, float32(ticks), ease.Linear)
}

// Step advances both envelopes by one tick.
func (s *ScreenData) Step() {
	if s.shakeTween != nil {
		v, done := s.shakeTween.Update(1)
		s.Shake = float64(v)
		if done {
			s.Shake, s.shakeTween = 0, nil
		}
	}
	if s.flashTween != nil {
		v, done := s.flashTween.Update(1)
		s.Flash = float64(v)
		if done {
			s.Flash, s.flashTween = 0, nil
		}
	}
}
