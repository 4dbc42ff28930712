package workflow

import "kycdesk/models"

// editPermissions is the role → permitted statuses matrix. A role may open
// the editable review surface only for documents sitting in one of its
// permitted stages. Lookups on unknown roles or statuses miss the map and
// come back false, so authorization fails closed.
var editPermissions = map[models.Role]map[models.DocumentStatus]bool{
	models.RoleResponsible: {
		models.StatusSubmitted: true,
	},
	models.RoleCompliance: {
		models.StatusSubmitted:           true,
		models.StatusResponsibleReviewed: true,
	},
	models.RoleOCIC: {
		models.StatusSubmitted:           true,
		models.StatusResponsibleReviewed: true,
		models.StatusComplianceReviewed:  true,
	},
	models.RoleAdmin: {
		models.StatusSubmitted:           true,
		models.StatusResponsibleReviewed: true,
		models.StatusComplianceReviewed:  true,
	},
}

// CanAccessEdit reports whether the role may enter the actionable review
// view for a document in the given status. Total over all inputs.
func CanAccessEdit(status models.DocumentStatus, role models.Role) bool {
	return editPermissions[role][status]
}

// nextStatus holds the single forward transition per stage. Completed is
// terminal and has no entry.
var nextStatus = map[models.DocumentStatus]models.DocumentStatus{
	models.StatusSubmitted:           models.StatusResponsibleReviewed,
	models.StatusResponsibleReviewed: models.StatusComplianceReviewed,
	models.StatusComplianceReviewed:  models.StatusCompleted,
}

// NextStatus returns the status a document advances to after a successful
// review action, and whether such a transition exists.
func NextStatus(status models.DocumentStatus) (models.DocumentStatus, bool) {
	next, ok := nextStatus[status]
	return next, ok
}
