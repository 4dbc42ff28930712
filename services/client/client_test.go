package client

import (
	"errors"
	"testing"

	"kycdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeClientRepo is an in-memory ClientRepository.
type fakeClientRepo struct {
	byCode  map[string]*models.Client
	failure error
	lookups int
}

func (f *fakeClientRepo) GetByID(id string) (*models.Client, error) { return nil, errors.New("unused") }
func (f *fakeClientRepo) GetByCode(code string) (*models.Client, error) {
	f.lookups++
	if f.failure != nil {
		return nil, f.failure
	}
	return f.byCode[code], nil
}
func (f *fakeClientRepo) GetByAgency(agencyID string) ([]models.Client, error) { return nil, nil }
func (f *fakeClientRepo) Create(cl *models.Client) error                       { return nil }
func (f *fakeClientRepo) Update(cl *models.Client) error                       { return nil }
func (f *fakeClientRepo) Delete(id string) error                               { return nil }
func (f *fakeClientRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Client, error) {
	return nil, errors.New("unused")
}

func TestValidateCodeSuccess(t *testing.T) {
	repo := &fakeClientRepo{byCode: map[string]*models.Client{
		"ABC123": {ID: "c1", Code: "ABC123", FullName: "Ada Example", Type: models.ClientTypeNatural, AgencyID: "ag1"},
	}}
	svc := &DefaultClientService{Repo: repo}

	cl, err := svc.ValidateCode("ABC123")
	require.NoError(t, err)
	assert.Equal(t, "c1", cl.ID)
	assert.Equal(t, models.ClientTypeNatural, cl.Type)
	assert.Equal(t, 1, repo.lookups, "exactly one lookup per validation")
}

func TestValidateCodeNotFound(t *testing.T) {
	svc := &DefaultClientService{Repo: &fakeClientRepo{byCode: map[string]*models.Client{}}}

	_, err := svc.ValidateCode("NOPE")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestValidateCodeBlankCode(t *testing.T) {
	repo := &fakeClientRepo{byCode: map[string]*models.Client{}}
	svc := &DefaultClientService{Repo: repo}

	_, err := svc.ValidateCode("   ")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Zero(t, repo.lookups, "blank codes never reach the store")
}

func TestValidateCodeRepoFailure(t *testing.T) {
	svc := &DefaultClientService{Repo: &fakeClientRepo{failure: errors.New("mongo down")}}

	_, err := svc.ValidateCode("ABC123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrClientNotFound, "transport failure is not a not-found")
}

func TestCreateClientTypeInvariant(t *testing.T) {
	svc := &DefaultClientService{Repo: &fakeClientRepo{}}

	// Natural clients must not carry legal-entity collections.
	_, err := svc.CreateClient(&models.Client{
		Type:            models.ClientTypeNatural,
		Representatives: []models.Representative{{Name: "Bob"}},
	})
	assert.ErrorIs(t, err, ErrInvalidClientType)

	_, err = svc.CreateClient(&models.Client{Type: "partnership"})
	assert.ErrorIs(t, err, ErrInvalidClientType)

	created, err := svc.CreateClient(&models.Client{
		Type: models.ClientTypeLegal,
		BeneficialOwners: []models.BeneficialOwner{
			{Name: "Carol", DirectPercent: 60, IndirectPercent: 0},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "an ID is assigned on create")
}
