package config

import (
	"time"
)

// Config is the overlay configuration document.
type Config struct {
	Version  string   `yaml:"version" validate:"required,semver"`
	Defaults Behavior `yaml:"defaults,omitempty"`
	Theme    Theme    `yaml:"theme,omitempty"`
	Anchors  []Anchor `yaml:"anchors,omitempty" validate:"omitempty,dive"`
}

// Behavior holds overlay settings. Unset fields inherit: an anchor falls
// back to the document defaults, which fall back to the built-in values.
type Behavior struct {
	Placement    *string        `yaml:"placement,omitempty" validate:"omitempty,placement"`
	Offset       *float64       `yaml:"offset,omitempty" validate:"omitempty,min=-20,max=20"`
	ShowDelay    *time.Duration `yaml:"show_delay,omitempty" validate:"omitempty,gte=0s,lte=10s"`
	HideDelay    *time.Duration `yaml:"hide_delay,omitempty" validate:"omitempty,gte=0s,lte=10s"`
	Trigger      *string        `yaml:"trigger,omitempty" validate:"omitempty,trigger_kind"`
	KeepOpen     *string        `yaml:"keep_open,omitempty" validate:"omitempty,keep_open_kind"`
	Arrow        *bool          `yaml:"arrow,omitempty"`
	Bounded      *bool          `yaml:"bounded,omitempty"`
	DisplayFrom  *string        `yaml:"display_from,omitempty" validate:"omitempty,breakpoint"`
	DisplayUntil *string        `yaml:"display_until,omitempty" validate:"omitempty,breakpoint"`
}

// Theme selects the base theme and overrides tooltip tokens.
type Theme struct {
	Name    string       `yaml:"name,omitempty" validate:"omitempty,oneof=default dark"`
	Tooltip TooltipTheme `yaml:"tooltip,omitempty"`
}

// TooltipTheme overrides tooltip design tokens.
type TooltipTheme struct {
	Background  string `yaml:"background,omitempty" validate:"omitempty,hex_color"`
	Foreground  string `yaml:"foreground,omitempty" validate:"omitempty,hex_color"`
	Border      string `yaml:"border,omitempty" validate:"omitempty,hex_color"`
	BorderStyle string `yaml:"border_style,omitempty" validate:"omitempty,oneof=rounded normal thick none"`
	PaddingX    *int   `yaml:"padding_x,omitempty" validate:"omitempty,min=0,max=4"`
	MaxWidth    int    `yaml:"max_width,omitempty" validate:"omitempty,min=4,max=200"`
}

// Anchor declares a playground button and the tooltip attached to it.
type Anchor struct {
	ID       string `yaml:"id" validate:"required,anchor_id"`
	Label    string `yaml:"label" validate:"required,max=40"`
	Tooltip  string `yaml:"tooltip,omitempty"`
	Behavior `yaml:",inline"`
}
