package tenant

import "strings"

// Identity is what the auth collaborator vouches for on a request.
type Identity struct {
	UserID   string
	SchoolID string
	CampusID string
	Role     string
}

// EffectiveSchoolID is the single place deciding which tenant a request acts
// on: a campus, when the identity is bound to one, owns its own fee data.
func EffectiveSchoolID(id Identity) string {
	if campus := strings.TrimSpace(id.CampusID); campus != "" {
		return campus
	}
	return strings.TrimSpace(id.SchoolID)
}
