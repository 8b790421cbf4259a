package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createIncidentOwner(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Password: "not-a-real-hash",
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestIncidentService_Create(t *testing.T) {
	t.Parallel()

	svc, db := newIncidentService(t)
	ctx := context.Background()
	owner := createIncidentOwner(t, db, "reporter")

	incident, err := svc.Create(ctx, &CreateIncidentInput{
		Type:      models.IncidentTypeRedFlag,
		Location:  "-1.23,36.5",
		Comment:   "  bribery at the toll station  ",
		Images:    []string{"img1.jpg"},
		CreatedBy: owner.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, incident.ID)

	assert.Equal(t, models.StatusDraft, incident.Status)
	assert.Equal(t, "bribery at the toll station", incident.Comment)
	assert.Equal(t, fmt.Sprintf("/api/v2/red-flags/%d", incident.ID), incident.URI)

	// The URI is persisted, not just set on the returned value
	stored, err := svc.Get(ctx, incident.ID, models.IncidentTypeRedFlag)
	require.NoError(t, err)
	assert.Equal(t, incident.URI, stored.URI)
}

func TestIncidentService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc, db := newIncidentService(t)
	ctx := context.Background()
	owner := createIncidentOwner(t, db, "reporter")

	_, err := svc.Create(ctx, &CreateIncidentInput{
		Type:      models.IncidentTypeRedFlag,
		Location:  "93,23",
		Comment:   "out of range latitude",
		CreatedBy: owner.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)

	_, err = svc.Create(ctx, &CreateIncidentInput{
		Type:      models.IncidentTypeRedFlag,
		Location:  "-1.23,36.5",
		Comment:   "   ",
		CreatedBy: owner.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidComment)
}

func TestIncidentService_Get_TypeScoped(t *testing.T) {
	t.Parallel()

	svc, db := newIncidentService(t)
	ctx := context.Background()
	owner := createIncidentOwner(t, db, "reporter")

	incident, err := svc.Create(ctx, &CreateIncidentInput{
		Type:      models.IncidentTypeRedFlag,
		Location:  "-1.23,36.5",
		Comment:   "red flag",
		CreatedBy: owner.ID,
	})
	require.NoError(t, err)

	// A red-flag is invisible through the interventions scope
	_, err = svc.Get(ctx, incident.ID, models.IncidentTypeIntervention)
	assert.ErrorIs(t, err, domain.ErrIncidentNotFound)

	_, err = svc.Get(ctx, 999, models.IncidentTypeRedFlag)
	assert.ErrorIs(t, err, domain.ErrIncidentNotFound)
}

func TestIncidentService_UpdateField(t *testing.T) {
	t.Parallel()

	svc, db := newIncidentService(t)
	ctx := context.Background()
	owner := createIncidentOwner(t, db, "reporter")

	incident, err := svc.Create(ctx, &CreateIncidentInput{
		Type:      models.IncidentTypeIntervention,
		Location:  "-1.23,36.5",
		Comment:   "collapsed bridge",
		CreatedBy: owner.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateField(ctx, incident, FieldComment, "  collapsed bridge on A104  "))
	require.NoError(t, svc.UpdateField(ctx, incident, FieldLocation, "0.5,37.0"))
	// Status is normalized to lowercase regardless of input case
	require.NoError(t, svc.UpdateField(ctx, incident, FieldStatus, "Under Investigation"))

	stored, err := svc.Get(ctx, incident.ID, models.IncidentTypeIntervention)
	require.NoError(t, err)
	assert.Equal(t, "collapsed bridge on A104", stored.Comment)
	assert.Equal(t, "0.5,37.0", stored.Location)
	assert.Equal(t, models.StatusUnderInvestigation, stored.Status)
}

func TestIncidentService_UpdateField_Validation(t *testing.T) {
	t.Parallel()

	svc, db := newIncidentService(t)
	ctx := context.Background()
	owner := createIncidentOwner(t, db, "reporter")

	incident, err := svc.Create(ctx, &CreateIncidentInput{
		Type:      models.IncidentTypeRedFlag,
		Location:  "-1.23,36.5",
		Comment:   "red flag",
		CreatedBy: owner.ID,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateField(ctx, incident, FieldLocation, "45,-183"), domain.ErrInvalidLocation)
	assert.ErrorIs(t, svc.UpdateField(ctx, incident, FieldComment, "   "), domain.ErrInvalidComment)
	assert.ErrorIs(t, svc.UpdateField(ctx, incident, FieldStatus, "too little too late"), domain.ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateField(ctx, incident, "type", models.IncidentTypeIntervention), domain.ErrInvalidField)

	// Nothing changed
	stored, err := svc.Get(ctx, incident.ID, models.IncidentTypeRedFlag)
	require.NoError(t, err)
	assert.Equal(t, "-1.23,36.5", stored.Location)
	assert.Equal(t, "red flag", stored.Comment)
	assert.Equal(t, models.StatusDraft, stored.Status)
}

func TestIncidentService_ListByOwner(t *testing.T) {
	t.Parallel()

	svc, db := newIncidentService(t)
	ctx := context.Background()
	owner := createIncidentOwner(t, db, "reporter")
	other := createIncidentOwner(t, db, "someone")

	for _, createdBy := range []uint{owner.ID, owner.ID, other.ID} {
		_, err := svc.Create(ctx, &CreateIncidentInput{
			Type:      models.IncidentTypeRedFlag,
			Location:  "-1.23,36.5",
			Comment:   "red flag",
			CreatedBy: createdBy,
		})
		require.NoError(t, err)
	}

	incidents, err := svc.ListByOwner(ctx, owner.ID, models.IncidentTypeRedFlag)
	require.NoError(t, err)
	assert.Len(t, incidents, 2)

	_, err = svc.ListByOwner(ctx, 999, models.IncidentTypeRedFlag)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestIncidentService_Delete(t *testing.T) {
	t.Parallel()

	svc, db := newIncidentService(t)
	ctx := context.Background()
	owner := createIncidentOwner(t, db, "reporter")

	incident, err := svc.Create(ctx, &CreateIncidentInput{
		Type:      models.IncidentTypeRedFlag,
		Location:  "-1.23,36.5",
		Comment:   "red flag",
		CreatedBy: owner.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, incident.ID))

	_, err = svc.Get(ctx, incident.ID, models.IncidentTypeRedFlag)
	assert.ErrorIs(t, err, domain.ErrIncidentNotFound)
}
