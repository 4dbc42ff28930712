package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	documentRepo "kycdesk/database/repository/document"
	"kycdesk/models"
	documentSvc "kycdesk/services/document"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// stubDocumentRepo is an in-memory, order-preserving document store.
type stubDocumentRepo struct {
	mu   sync.Mutex
	docs []models.KYCDocument
}

func newStubDocumentRepo(docs ...models.KYCDocument) *stubDocumentRepo {
	return &stubDocumentRepo{docs: docs}
}

func (r *stubDocumentRepo) GetByID(id string) (*models.KYCDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.docs {
		if r.docs[i].ID == id {
			d := r.docs[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *stubDocumentRepo) GetByAgency(agencyID string) ([]models.KYCDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.KYCDocument
	for _, d := range r.docs {
		if d.AgencyID == agencyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDocumentRepo) GetByClient(clientID string) ([]models.KYCDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.KYCDocument
	for _, d := range r.docs {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDocumentRepo) Create(doc *models.KYCDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, *doc)
	return nil
}

func (r *stubDocumentRepo) UpdateStatus(id string, status models.DocumentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.docs {
		if r.docs[i].ID == id {
			r.docs[i].Status = status
			r.docs[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return errors.New("document not found")
}

func (r *stubDocumentRepo) GetExpiringBetween(agencyID string, from, to time.Time) ([]models.KYCDocument, error) {
	docs, _ := r.GetByAgency(agencyID)
	var out []models.KYCDocument
	for _, d := range docs {
		if !d.ExpiresAt.Before(from) && !d.ExpiresAt.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDocumentRepo) GetAgencyIDs() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, d := range r.docs {
		if !seen[d.AgencyID] {
			seen[d.AgencyID] = true
			out = append(out, d.AgencyID)
		}
	}
	return out, nil
}

func (r *stubDocumentRepo) GetByAgencyWithProjection(agencyID string, projection bson.M) ([]models.KYCDocument, error) {
	return r.GetByAgency(agencyID)
}

// brokenDocumentRepo simulates an unreachable store on reads.
type brokenDocumentRepo struct {
	*stubDocumentRepo
}

func (r *brokenDocumentRepo) GetByID(id string) (*models.KYCDocument, error) {
	return nil, errors.New("server selection timeout: store unreachable")
}

func setupReviewRouter(t *testing.T, role models.Role, docs ...models.KYCDocument) (*gin.Engine, *stubDocumentRepo) {
	t.Helper()
	repo := newStubDocumentRepo(docs...)
	return reviewRouterFor(t, role, repo), repo
}

func reviewRouterFor(t *testing.T, role models.Role, repo documentRepo.DocumentRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &documentSvc.DefaultDocumentService{Repo: repo}
	rh := NewReviewHandler(svc, zap.NewNop())
	dh := NewDashboardHandler(svc, zap.NewNop())

	r := gin.New()
	staff := r.Group("/api/company")
	staff.Use(func(c *gin.Context) {
		c.Set("staffID", "staff-1")
		c.Set("role", string(role))
		c.Set("agencyID", "ag1")
	})
	staff.GET("/dashboard", dh.KanbanHandler)
	staff.GET("/documents/expiring", dh.ExpiringDocumentsHandler)
	staff.GET("/documents/:id", rh.ViewDocumentHandler)
	staff.GET("/documents/:id/route", rh.ResolveRouteHandler)
	staff.POST("/documents/:id/review", rh.ReviewActionHandler)
	return r
}

func doStaff(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func submittedDoc(id string) models.KYCDocument {
	return models.KYCDocument{
		ID:         id,
		ClientID:   "c1",
		ClientName: "Ada Example",
		EntityType: models.ClientTypeNatural,
		Status:     models.StatusSubmitted,
		AgencyID:   "ag1",
		ExpiresAt:  time.Now().Add(200 * 24 * time.Hour),
	}
}

func TestResolveRouteFollowsStatusNotRole(t *testing.T) {
	// A compliance officer opening a freshly submitted document is sent to
	// the first-stage review screen, not the compliance screen.
	r, _ := setupReviewRouter(t, models.RoleCompliance, submittedDoc("doc-1"))

	w := doStaff(r, http.MethodGet, "/api/company/documents/doc-1/route")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"route":"/company/review/doc-1"}`, w.Body.String())
}

func TestResolveRouteDeniedRoleGetsView(t *testing.T) {
	doc := submittedDoc("doc-1")
	doc.Status = models.StatusComplianceReviewed
	r, _ := setupReviewRouter(t, models.RoleResponsible, doc)

	w := doStaff(r, http.MethodGet, "/api/company/documents/doc-1/route")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"route":"/company/view/doc-1"}`, w.Body.String())
}

func TestResolveRouteUnknownDocument(t *testing.T) {
	r, _ := setupReviewRouter(t, models.RoleAdmin)

	w := doStaff(r, http.MethodGet, "/api/company/documents/ghost/route")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewActionAdvancesOneStage(t *testing.T) {
	r, repo := setupReviewRouter(t, models.RoleResponsible, submittedDoc("doc-1"))

	w := doStaff(r, http.MethodPost, "/api/company/documents/doc-1/review")
	require.Equal(t, http.StatusOK, w.Code)

	var doc models.KYCDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, models.StatusResponsibleReviewed, doc.Status)

	stored, err := repo.GetByID("doc-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResponsibleReviewed, stored.Status)
}

func TestReviewActionForbiddenRedirectsToView(t *testing.T) {
	doc := submittedDoc("doc-1")
	doc.Status = models.StatusResponsibleReviewed
	r, repo := setupReviewRouter(t, models.RoleResponsible, doc)

	w := doStaff(r, http.MethodPost, "/api/company/documents/doc-1/review")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.JSONEq(t, `{"redirect":"/company/view/doc-1"}`, w.Body.String())

	stored, err := repo.GetByID("doc-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResponsibleReviewed, stored.Status, "denied action must not change the stage")
}

func TestDocumentEndpointsStoreOutage(t *testing.T) {
	// An unreachable store is a server failure, not a missing document.
	repo := &brokenDocumentRepo{stubDocumentRepo: newStubDocumentRepo()}
	r := reviewRouterFor(t, models.RoleAdmin, repo)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/company/documents/doc-1"},
		{http.MethodGet, "/api/company/documents/doc-1/route"},
		{http.MethodPost, "/api/company/documents/doc-1/review"},
	}
	for _, tc := range cases {
		w := doStaff(r, tc.method, tc.path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", tc.method, tc.path)
		assert.NotContains(t, w.Body.String(), "document not found", "%s %s", tc.method, tc.path)
	}
}

func TestViewDocument(t *testing.T) {
	r, _ := setupReviewRouter(t, models.RoleResponsible, submittedDoc("doc-1"))

	w := doStaff(r, http.MethodGet, "/api/company/documents/doc-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"doc-1"`)

	w = doStaff(r, http.MethodGet, "/api/company/documents/ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKanbanGroupsByStage(t *testing.T) {
	a := submittedDoc("doc-1")
	b := submittedDoc("doc-2")
	b.Status = models.StatusCompleted
	r, _ := setupReviewRouter(t, models.RoleAdmin, a, b)

	w := doStaff(r, http.MethodGet, "/api/company/dashboard")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Columns map[models.DocumentStatus][]models.KYCDocument `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Columns[models.StatusSubmitted], 1)
	assert.Len(t, resp.Columns[models.StatusCompleted], 1)
	assert.Empty(t, resp.Columns[models.StatusResponsibleReviewed])
}

func TestExpiringDocumentsEndpoint(t *testing.T) {
	soon := submittedDoc("doc-1")
	soon.ExpiresAt = time.Now().Add(5 * 24 * time.Hour)
	far := submittedDoc("doc-2")
	r, _ := setupReviewRouter(t, models.RoleAdmin, soon, far)

	w := doStaff(r, http.MethodGet, "/api/company/documents/expiring")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		HasData   bool                      `json:"hasData"`
		Documents []models.ExpiringDocument `json:"documents"`
		Badge     string                    `json:"badge"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HasData)
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "doc-1", resp.Documents[0].ID)
	assert.Equal(t, "1 document expiring soon", resp.Badge)
}
