package config

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	o := Default()
	if err := o.Validate(); err != nil {
		t.Fatalf("default options should be valid: %v", err)
	}
	if o.Capacity() != SnakeLength+MaxApples {
		t.Errorf("expected capacity %d, got %d", SnakeLength+MaxApples, o.Capacity())
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name                              string
		wrap, obstacles, apples, steering bool
	}{
		{PresetClassic, true, true, true, true},
		{PresetStraight, true, false, false, false},
		{PresetObstacles, false, true, false, true},
	}

	for _, tt := range tests {
		o, err := Preset(tt.name)
		if err != nil {
			t.Fatalf("preset %s: %v", tt.name, err)
		}
		if o.Wraparound != tt.wrap || o.Obstacles != tt.obstacles || o.Apples != tt.apples || o.Steering != tt.steering {
			t.Errorf("preset %s: got wrap=%v obstacles=%v apples=%v steering=%v",
				tt.name, o.Wraparound, o.Obstacles, o.Apples, o.Steering)
		}
		if err := o.Validate(); err != nil {
			t.Errorf("preset %s should validate: %v", tt.name, err)
		}
	}

	if _, err := Preset("arcade"); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("unknown preset should fail with ErrInvalidOptions, got %v", err)
	}
}

func TestCapacityWithoutApples(t *testing.T) {
	o, _ := Preset(PresetObstacles)
	if o.Capacity() != SnakeLength {
		t.Errorf("without apples the snake cannot grow, got capacity %d", o.Capacity())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *Options)
	}{
		{"tiny board", func(o *Options) { o.Width = 4 }},
		{"tail through left border", func(o *Options) { o.StartX = 5 }},
		{"head on right border", func(o *Options) { o.StartX = o.Width - 1 }},
		{"head on top border", func(o *Options) { o.StartY = 0 }},
		{"no apples to win", func(o *Options) { o.MaxApples = 0 }},
		{"obstacle wider than board", func(o *Options) { o.ObstacleSize = o.Width }},
		{"floor above base", func(o *Options) { o.MinInterval = o.BaseInterval * 2 }},
		{"zero length", func(o *Options) { o.SnakeLength = 0 }},
	}

	for _, tt := range tests {
		o := Default()
		tt.mutate(&o)
		if err := o.Validate(); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("%s: expected ErrInvalidOptions, got %v", tt.name, err)
		}
	}
}
