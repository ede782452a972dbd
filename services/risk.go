package services

import (
	"github.com/ManasaYK17/MindPulse-AI/models"
)

// ClassifyRisk maps the two screening scores onto the triage bucket that
// drives which downstream feature is offered: recommendations only (low),
// peer support (medium), or counselor booking (high).
func ClassifyRisk(phq9, gad7 int) models.RiskLevel {
	switch {
	case phq9 < 5 && gad7 < 5:
		return models.RiskLow
	case phq9 < 15 && gad7 < 15:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}
