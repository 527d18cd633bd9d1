package score

import "github.com/ppiankov/claimready/internal/model"

// Display colors for the tier bands.
const (
	colorSuccess = "#16A34A"
	colorWarning = "#D97706"
	colorInfo    = "#2563EB"
	colorNeutral = "#9CA3AF"
	colorDanger  = "#DC2626"
)

// ReadinessLabel maps the 0-100 readiness score to a short display label.
// The tier cut points are the configured strength thresholds, so the badge
// and the strength rating never disagree.
func (e *Engine) ReadinessLabel(readiness int) string {
	switch {
	case readiness >= e.cfg.Scoring.StrongMin:
		return "Ready to file"
	case readiness >= e.cfg.Scoring.MediumMin:
		return "Almost ready"
	case readiness > 0:
		return "In progress"
	default:
		return "Not started"
	}
}

// ReadinessColor maps the readiness score to its tier color.
func (e *Engine) ReadinessColor(readiness int) string {
	switch {
	case readiness >= e.cfg.Scoring.StrongMin:
		return colorSuccess
	case readiness >= e.cfg.Scoring.MediumMin:
		return colorWarning
	case readiness > 0:
		return colorInfo
	default:
		return colorNeutral
	}
}

// StrengthLabel maps the qualitative strength rating to a display label.
func StrengthLabel(s model.Strength) string {
	switch s {
	case model.StrengthStrong:
		return "Strong case"
	case model.StrengthMedium:
		return "Medium case"
	default:
		return "Weak case"
	}
}

// StrengthColor maps the strength rating to its display color.
func StrengthColor(s model.Strength) string {
	switch s {
	case model.StrengthStrong:
		return colorSuccess
	case model.StrengthMedium:
		return colorWarning
	default:
		return colorDanger
	}
}
