package repository

import (
	"context"
	"io"
	"testing"
	"time"

	"patient-records-service/internal/domain/entity"
	domainRepo "patient-records-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedThreePatients(t *testing.T) domainRepo.PatientRepository {
	t.Helper()

	repo := NewMemoryPatientRepository()
	patients := []entity.Patient{
		{NHSNumber: "NHS001", Name: "John Doe", DateOfBirth: date(1980, 1, 1), GPPractice: "Central GP"},
		{NHSNumber: "NHS002", Name: "Jane Smith", DateOfBirth: date(1990, 2, 2), GPPractice: "West GP"},
		{NHSNumber: "NHS003", Name: "Michael Brown", DateOfBirth: date(1975, 3, 3), GPPractice: "East GP"},
	}
	for i := range patients {
		require.NoError(t, repo.Create(context.Background(), &patients[i]))
	}
	return repo
}

func names(patients []entity.Patient) []string {
	result := make([]string, 0, len(patients))
	for _, p := range patients {
		result = append(result, p.Name)
	}
	return result
}

func TestMemoryRepositoryAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryPatientRepository()

	first := &entity.Patient{NHSNumber: "NHS001", Name: "John Doe"}
	second := &entity.Patient{NHSNumber: "NHS002", Name: "Jane Smith"}
	require.NoError(t, repo.Create(context.Background(), first))
	require.NoError(t, repo.Create(context.Background(), second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestMemoryRepositoryFindByIDAbsence(t *testing.T) {
	repo := NewMemoryPatientRepository()

	patient, err := repo.FindByID(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, patient)
}

func TestSearchSortsByNamePaged(t *testing.T) {
	repo := seedThreePatients(t)

	pageOne, err := repo.Search(context.Background(), entity.PatientSearch{
		SortBy: entity.SortByName, Ascending: true, PageNumber: 1, PageSize: 2,
	}.Normalize())
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Smith", "John Doe"}, names(pageOne))

	pageTwo, err := repo.Search(context.Background(), entity.PatientSearch{
		SortBy: entity.SortByName, Ascending: true, PageNumber: 2, PageSize: 2,
	}.Normalize())
	require.NoError(t, err)
	assert.Equal(t, []string{"Michael Brown"}, names(pageTwo))
}

func TestSearchDescending(t *testing.T) {
	repo := seedThreePatients(t)

	patients, err := repo.Search(context.Background(), entity.PatientSearch{
		SortBy: entity.SortByName, Ascending: false, PageNumber: 1, PageSize: 5,
	}.Normalize())

	require.NoError(t, err)
	assert.Equal(t, []string{"Michael Brown", "John Doe", "Jane Smith"}, names(patients))
}

func TestSearchFiltersByNameCaseInsensitively(t *testing.T) {
	repo := seedThreePatients(t)

	patients, err := repo.Search(context.Background(), entity.PatientSearch{
		Name: "SMITH", SortBy: entity.SortByID, Ascending: true, PageNumber: 1, PageSize: 5,
	}.Normalize())

	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Smith"}, names(patients))
}

func TestSearchBlankFilterReturnsAll(t *testing.T) {
	repo := seedThreePatients(t)

	patients, err := repo.Search(context.Background(), entity.PatientSearch{
		Name: "   ", SortBy: entity.SortByID, Ascending: true, PageNumber: 1, PageSize: 5,
	}.Normalize())

	require.NoError(t, err)
	assert.Len(t, patients, 3)
}

func TestSearchSortsByDateOfBirth(t *testing.T) {
	repo := seedThreePatients(t)

	patients, err := repo.Search(context.Background(), entity.PatientSearch{
		SortBy: entity.SortByDateOfBirth, Ascending: true, PageNumber: 1, PageSize: 5,
	}.Normalize())

	require.NoError(t, err)
	assert.Equal(t, []string{"Michael Brown", "John Doe", "Jane Smith"}, names(patients))
}

func TestSearchBreaksTiesByID(t *testing.T) {
	repo := NewMemoryPatientRepository()
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		patient := &entity.Patient{NHSNumber: "NHS", Name: name, CreatedAt: created}
		require.NoError(t, repo.Create(context.Background(), patient))
	}

	// All created-at values collide, so ordering must fall back to id.
	ascending, err := repo.Search(context.Background(), entity.PatientSearch{
		SortBy: entity.SortByCreatedAt, Ascending: true, PageNumber: 1, PageSize: 5,
	}.Normalize())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(ascending))

	descending, err := repo.Search(context.Background(), entity.PatientSearch{
		SortBy: entity.SortByCreatedAt, Ascending: false, PageNumber: 1, PageSize: 5,
	}.Normalize())
	require.NoError(t, err)
	assert.Equal(t, []string{"Gamma", "Beta", "Alpha"}, names(descending))
}

func TestSearchOutOfRangePageIsEmpty(t *testing.T) {
	repo := seedThreePatients(t)

	patients, err := repo.Search(context.Background(), entity.PatientSearch{
		SortBy: entity.SortByID, Ascending: true, PageNumber: 9, PageSize: 5,
	}.Normalize())

	require.NoError(t, err)
	assert.NotNil(t, patients)
	assert.Empty(t, patients)
}

func TestUpdateReplacesStoredRecord(t *testing.T) {
	repo := seedThreePatients(t)

	patient, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, patient)

	patient.Name = "John Renamed"
	require.NoError(t, repo.Update(context.Background(), patient))

	reloaded, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "John Renamed", reloaded.Name)
}

func TestDeleteIsTerminal(t *testing.T) {
	repo := seedThreePatients(t)

	require.NoError(t, repo.Delete(context.Background(), 2))

	patient, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, patient)

	remaining, err := repo.Search(context.Background(), entity.PatientSearch{}.Normalize())
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestMemoryRepositoryHonorsCancellation(t *testing.T) {
	repo := seedThreePatients(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Search(ctx, entity.PatientSearch{}.Normalize())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeedPopulatesEmptyStoreOnce(t *testing.T) {
	repo := NewMemoryPatientRepository()
	log := newTestLogger()

	require.NoError(t, Seed(context.Background(), repo, log))

	patients, err := repo.Search(context.Background(), entity.PatientSearch{
		PageNumber: 1, PageSize: 50,
	}.Normalize())
	require.NoError(t, err)
	assert.Len(t, patients, 10)

	// Seeding again must not duplicate records.
	require.NoError(t, Seed(context.Background(), repo, log))

	patients, err = repo.Search(context.Background(), entity.PatientSearch{
		PageNumber: 1, PageSize: 50,
	}.Normalize())
	require.NoError(t, err)
	assert.Len(t, patients, 10)
}
