package models

// KYCSession holds context between client validation and the type-specific
// submission form. It lives in a single per-device Redis slot and is never
// written to Mongo.
type KYCSession struct {
	ClientID    string             `json:"clientId"`
	ClientName  string             `json:"clientName"`
	ClientEmail string             `json:"clientEmail"`
	ClientType  string             `json:"clientType"`
	ClientPhone string             `json:"clientPhone"`
	Services    []ServiceSelection `json:"services"`
	AgencyID    string             `json:"agencyId"`
}

// IsReady reports whether the session may proceed to the submission form:
// at least one service selected, and every selection carries a valid
// frequency.
func (s KYCSession) IsReady() bool {
	if len(s.Services) == 0 {
		return false
	}
	for _, sel := range s.Services {
		if sel.Frequency != FrequencyOneTime && sel.Frequency != FrequencyRecurring {
			return false
		}
	}
	return true
}
