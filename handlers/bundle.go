// File: kycdesk/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Client-facing flow.
	ValidateClient gin.HandlerFunc
	StartSession   gin.HandlerFunc
	GetSession     gin.HandlerFunc
	CancelSession  gin.HandlerFunc
	SubmitNatural  gin.HandlerFunc
	SubmitLegal    gin.HandlerFunc

	// Staff auth.
	Login  gin.HandlerFunc
	Logout gin.HandlerFunc

	// Staff review workflow.
	Dashboard    gin.HandlerFunc
	Expiring     gin.HandlerFunc
	ViewDocument gin.HandlerFunc
	ResolveRoute gin.HandlerFunc
	ReviewAction gin.HandlerFunc

	// Admin client management.
	CreateClient gin.HandlerFunc
	ListClients  gin.HandlerFunc
}
