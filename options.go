package carousel

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/capitan"
)

// validate is the shared validator instance.
var validate = validator.New()

// Options is the resolved configuration of a carousel, immutable after
// construction.
type Options struct {
	AutoAdvance     bool
	AutoAdvanceTime time.Duration `validate:"gt=0"`
	EnableKeyboard  bool
	EnableTouch     bool
	Loop            bool
	StartSlide      int `validate:"gte=0"`
}

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		AutoAdvance:     true,
		AutoAdvanceTime: 6 * time.Second,
		EnableKeyboard:  true,
		EnableTouch:     true,
		Loop:            true,
		StartSlide:      0,
	}
}

// Overrides is a partial configuration. Nil fields leave the
// corresponding default untouched, so a caller can override any subset
// without clobbering the rest.
type Overrides struct {
	AutoAdvance     *bool
	AutoAdvanceTime *time.Duration
	EnableKeyboard  *bool
	EnableTouch     *bool
	Loop            *bool
	StartSlide      *int
}

func (o Overrides) apply(base Options) Options {
	if o.AutoAdvance != nil {
		base.AutoAdvance = *o.AutoAdvance
	}
	if o.AutoAdvanceTime != nil {
		base.AutoAdvanceTime = *o.AutoAdvanceTime
	}
	if o.EnableKeyboard != nil {
		base.EnableKeyboard = *o.EnableKeyboard
	}
	if o.EnableTouch != nil {
		base.EnableTouch = *o.EnableTouch
	}
	if o.Loop != nil {
		base.Loop = *o.Loop
	}
	if o.StartSlide != nil {
		base.StartSlide = *o.StartSlide
	}
	return base
}

// Container attributes read during bootstrap.
const (
	AttrCarouselID = "data-carousel"
	attrAutoplay   = "data-autoplay"
	attrInterval   = "data-interval"
	attrLoop       = "data-loop"
	attrStart      = "data-start"
)

// OverridesFromAttrs builds a partial configuration from a container's
// attribute bag. Absent or malformed attributes leave the default
// untouched. The interval attribute is in milliseconds.
func OverridesFromAttrs(attrs map[string]string) Overrides {
	var o Overrides
	if v, ok := attrs[attrAutoplay]; ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			o.AutoAdvance = &b
		}
	}
	if v, ok := attrs[attrInterval]; ok {
		if ms, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			d := time.Duration(ms) * time.Millisecond
			o.AutoAdvanceTime = &d
		}
	}
	if v, ok := attrs[attrLoop]; ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			o.Loop = &b
		}
	}
	if v, ok := attrs[attrStart]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			o.StartSlide = &n
		}
	}
	return o
}

// normalize validates resolved options and resets each field the
// validator rejects to its default, emitting OptionsRejected so bad
// input stays observable. Called once at construction.
func (o Options) normalize() Options {
	err := validate.Struct(o)
	if err == nil {
		return o
	}
	capitan.Emit(context.Background(), OptionsRejected,
		KeyError.Field(err.Error()),
	)
	d := DefaultOptions()
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return d
	}
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "AutoAdvanceTime":
			o.AutoAdvanceTime = d.AutoAdvanceTime
		case "StartSlide":
			o.StartSlide = d.StartSlide
		}
	}
	return o
}
