package workflow

import (
	"fmt"

	"kycdesk/models"
)

// stageRoutes maps a status to the editable route template for that stage.
// Completed deliberately has no entry: there is no editable surface for a
// finished document, so resolution falls through to the view route.
var stageRoutes = map[models.DocumentStatus]string{
	models.StatusSubmitted:           "/company/review/%s",
	models.StatusResponsibleReviewed: "/company/compliance/%s",
	models.StatusComplianceReviewed:  "/company/ocic/%s",
}

// viewRoute is the uniform read-only fallback.
const viewRoute = "/company/view/%s"

// ResolveReviewRoute translates (documentID, status, role) into exactly one
// navigation target. The editable stage route is returned only when the
// caller holds an authenticated session and the permission matrix grants
// the role access to the document's current stage; every other combination
// lands on the read-only view route.
func ResolveReviewRoute(documentID string, status models.DocumentStatus, role models.Role, authenticated bool) string {
	if !authenticated || !CanAccessEdit(status, role) {
		return fmt.Sprintf(viewRoute, documentID)
	}
	tmpl, ok := stageRoutes[status]
	if !ok {
		return fmt.Sprintf(viewRoute, documentID)
	}
	return fmt.Sprintf(tmpl, documentID)
}

// ViewRoute returns the read-only route for a document.
func ViewRoute(documentID string) string {
	return fmt.Sprintf(viewRoute, documentID)
}
