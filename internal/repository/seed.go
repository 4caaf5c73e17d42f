package repository

import (
	"context"
	"time"

	"patient-records-service/internal/domain/entity"
	domainRepo "patient-records-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Seed populates an empty store with sample patients for non-production
// environments. A store that already has records is left untouched.
func Seed(ctx context.Context, repo domainRepo.PatientRepository, log *logrus.Logger) error {
	existing, err := repo.Search(ctx, entity.PatientSearch{}.Normalize())
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	patients := []entity.Patient{
		{NHSNumber: "NHS001", Name: "John Doe", DateOfBirth: date(1980, 1, 1), GPPractice: "Central GP"},
		{NHSNumber: "NHS002", Name: "Jane Smith", DateOfBirth: date(1990, 2, 2), GPPractice: "West GP"},
		{NHSNumber: "NHS003", Name: "Michael Brown", DateOfBirth: date(1975, 3, 3), GPPractice: "East GP"},
		{NHSNumber: "NHS004", Name: "Emily Johnson", DateOfBirth: date(1985, 4, 4), GPPractice: "North GP"},
		{NHSNumber: "NHS005", Name: "Daniel Williams", DateOfBirth: date(1995, 5, 5), GPPractice: "Central GP"},
		{NHSNumber: "NHS006", Name: "Sophia Jones", DateOfBirth: date(2000, 6, 6), GPPractice: "West GP"},
		{NHSNumber: "NHS007", Name: "David Miller", DateOfBirth: date(1970, 7, 7), GPPractice: "East GP"},
		{NHSNumber: "NHS008", Name: "Olivia Davis", DateOfBirth: date(1992, 8, 8), GPPractice: "North GP"},
		{NHSNumber: "NHS009", Name: "James Garcia", DateOfBirth: date(1988, 9, 9), GPPractice: "Central GP"},
		{NHSNumber: "NHS010", Name: "Emma Martinez", DateOfBirth: date(1998, 10, 10), GPPractice: "West GP"},
	}

	for i := range patients {
		patients[i].CreatedAt = now
		patients[i].UpdatedAt = now
		patients[i].IsActive = true
		if err := repo.Create(ctx, &patients[i]); err != nil {
			return err
		}
	}

	log.Infof("Seeded %d sample patients", len(patients))
	return nil
}
