package viewstate

import "github.com/zatekoja/healthapp/backend/internal/domain/entities"

// FilterClaims keeps claims whose status equals tag exactly
func FilterClaims(claims []entities.InsuranceClaim, tag string) []entities.InsuranceClaim {
	return FilterByStatus(claims, tag, func(c entities.InsuranceClaim) entities.ClaimStatus { return c.Status })
}

// VisibleApprovedAmount returns the approved amount and whether the claim
// card should show it at all.
func VisibleApprovedAmount(c entities.InsuranceClaim) (float64, bool) {
	if c.Status != entities.ClaimStatusApproved {
		return 0, false
	}
	return c.ApprovedAmount, true
}

// ClaimSummary aggregates the claims tab
type ClaimSummary struct {
	TotalClaimed  float64                      `json:"total_claimed"`
	TotalApproved float64                      `json:"total_approved"`
	ApprovalRate  float64                      `json:"approval_rate"`
	Counts        map[entities.ClaimStatus]int `json:"counts"`
}

// SummarizeClaims totals claimed amounts across all claims and approved
// amounts across approved claims only. ApprovalRate is the approved share
// of the claimed amount, as a percentage.
func SummarizeClaims(claims []entities.InsuranceClaim) ClaimSummary {
	var claimed, approved int64
	for _, c := range claims {
		claimed += toMinor(c.ClaimAmount)
		if amount, ok := VisibleApprovedAmount(c); ok {
			approved += toMinor(amount)
		}
	}

	counts := CountBy(claims, func(c entities.InsuranceClaim) entities.ClaimStatus { return c.Status })

	return ClaimSummary{
		TotalClaimed:  fromMinor(claimed),
		TotalApproved: fromMinor(approved),
		ApprovalRate:  Percentage(float64(approved), float64(claimed)),
		Counts:        counts,
	}
}

var claimStatusStyles = map[entities.ClaimStatus]StatusStyle{
	entities.ClaimStatusApproved: {Color: "#10B981", Icon: "CheckCircle"},
	entities.ClaimStatusPending:  {Color: "#F59E0B", Icon: "Clock"},
	entities.ClaimStatusRejected: {Color: "#EF4444", Icon: "XCircle"},
}

// ClaimStatusStyle maps a claim status to its badge
func ClaimStatusStyle(s entities.ClaimStatus) StatusStyle {
	style, ok := claimStatusStyles[s]
	if !ok {
		style = StatusStyle{Color: neutralColor, Icon: "HelpCircle"}
	}
	style.Label = Capitalize(string(s))
	return style
}
