package hypercurve

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Tuning holds the parameters used to prepare a loaded curve for display.
// Unset fields fall back to defaults through the Get methods, so partial
// files are fine.
type Tuning struct {
	// Minimum duration of the window used to label dimensionality.
	KernelSize *float64 `json:"kernel_size,omitempty" yaml:"kernel_size,omitempty"`
	// Fraction of the curve's extent an axis must be traversed by within a
	// window to count as active.
	MaxMovement *float64 `json:"max_movement,omitempty" yaml:"max_movement,omitempty"`
	// Fraction of the curve's extent, measured from its origin, beyond which
	// an axis counts as active.
	MaxValue *float64 `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	// Douglas–Peucker tolerance for the simplified curve.
	MaxDeviation *float64 `json:"max_deviation,omitempty" yaml:"max_deviation,omitempty"`

	// Speed colors, as SVG color names ("steelblue") or hex ("#4682b4").
	LowSpeedColor  *string `json:"low_speed_color,omitempty" yaml:"low_speed_color,omitempty"`
	HighSpeedColor *string `json:"high_speed_color,omitempty" yaml:"high_speed_color,omitempty"`
}

const maxTuningFileSize = 1 << 20

// LoadTuning reads tuning parameters from a JSON or YAML file, chosen by
// extension.
func LoadTuning(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	var unmarshal func([]byte, any) error
	switch ext := filepath.Ext(cleanPath); ext {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("tuning file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fi, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat tuning file: %w", err)
	}
	if fi.Size() > maxTuningFileSize {
		return nil, fmt.Errorf("tuning file too large: %d bytes (max %d)", fi.Size(), maxTuningFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	var tu Tuning
	if err := unmarshal(data, &tu); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}
	if err := tu.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return &tu, nil
}

// Validate checks the fields that are set.
func (tu *Tuning) Validate() error {
	if tu.KernelSize != nil && !(*tu.KernelSize > 0) {
		return fmt.Errorf("%w: kernel_size must be positive, got %g", ErrInvalidThreshold, *tu.KernelSize)
	}
	if tu.MaxMovement != nil && !(*tu.MaxMovement >= 0) {
		return fmt.Errorf("%w: max_movement must be non-negative, got %g", ErrInvalidThreshold, *tu.MaxMovement)
	}
	if tu.MaxValue != nil && !(*tu.MaxValue >= 0) {
		return fmt.Errorf("%w: max_value must be non-negative, got %g", ErrInvalidThreshold, *tu.MaxValue)
	}
	if tu.MaxDeviation != nil && !(*tu.MaxDeviation >= 0) {
		return fmt.Errorf("%w: max_deviation must be non-negative, got %g", ErrInvalidThreshold, *tu.MaxDeviation)
	}
	if tu.LowSpeedColor != nil {
		if _, err := parseColor(*tu.LowSpeedColor); err != nil {
			return fmt.Errorf("invalid low_speed_color: %w", err)
		}
	}
	if tu.HighSpeedColor != nil {
		if _, err := parseColor(*tu.HighSpeedColor); err != nil {
			return fmt.Errorf("invalid high_speed_color: %w", err)
		}
	}
	return nil
}

// parseColor accepts an SVG color name or a #rrggbb hex triplet.
func parseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{c.R, c.G, c.B, c.A}, nil
	}
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.NRGBA{r, g, b, 255}, nil
		}
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

// GetKernelSize returns kernel_size or the default.
func (tu *Tuning) GetKernelSize() float64 {
	if tu == nil || tu.KernelSize == nil {
		return 0.05
	}
	return *tu.KernelSize
}

// GetMaxMovement returns max_movement or the default.
func (tu *Tuning) GetMaxMovement() float64 {
	if tu == nil || tu.MaxMovement == nil {
		return 0.1
	}
	return *tu.MaxMovement
}

// GetMaxValue returns max_value or the default.
func (tu *Tuning) GetMaxValue() float64 {
	if tu == nil || tu.MaxValue == nil {
		return 0.25
	}
	return *tu.MaxValue
}

// GetMaxDeviation returns max_deviation or the default.
func (tu *Tuning) GetMaxDeviation() float64 {
	if tu == nil || tu.MaxDeviation == nil {
		return 0.01
	}
	return *tu.MaxDeviation
}

// SpeedColors returns the colors of slow and fast curve segments, falling
// back to DefaultLowSpeed and DefaultHighSpeed.
func (tu *Tuning) SpeedColors() (low, high color.NRGBA) {
	low, high = DefaultLowSpeed, DefaultHighSpeed
	if tu == nil {
		return low, high
	}
	if tu.LowSpeedColor != nil {
		if c, err := parseColor(*tu.LowSpeedColor); err == nil {
			low = c
		}
	}
	if tu.HighSpeedColor != nil {
		if c, err := parseColor(*tu.HighSpeedColor); err == nil {
			high = c
		}
	}
	return low, high
}

// Prepare readies a freshly loaded curve for display. It returns a full copy
// of raw and a simplified one, both with up to date statistics. raw itself
// isn't modified. A nil tuning uses the defaults.
func Prepare(raw *Curve, tuning *Tuning) (full, simple *Curve, err error) {
	if raw == nil || raw.Len() == 0 {
		return nil, nil, ErrEmptyCurve
	}
	if tuning != nil {
		if err := tuning.Validate(); err != nil {
			return nil, nil, err
		}
	}

	full = raw.Clone()
	simple, err = full.Simplify(tuning.GetMaxDeviation())
	if err != nil {
		return nil, nil, err
	}

	kernel, movement, value := tuning.GetKernelSize(), tuning.GetMaxMovement(), tuning.GetMaxValue()
	if err := full.UpdateStats(kernel, movement, value); err != nil {
		return nil, nil, fmt.Errorf("full curve: %w", err)
	}
	if err := simple.UpdateStats(kernel, movement, value); err != nil {
		return nil, nil, fmt.Errorf("simplified curve: %w", err)
	}

	Logf("prepared curve: %d points, %d after simplification, %d runs", full.Len(), simple.Len(), len(full.Stats().Runs))
	return full, simple, nil
}
