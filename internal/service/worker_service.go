package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/mailer"
	"github.com/kuvica/kuvica-api/internal/mappers"
	"github.com/kuvica/kuvica-api/internal/models"
	"github.com/kuvica/kuvica-api/internal/repository"
	"github.com/kuvica/kuvica-api/internal/utils"
)

type RegisterWorkerInput struct {
	FullName     string
	Email        string
	Password     string
	Phone        string
	Location     string
	ServiceTypes []string
	Availability string
	Municipality *string
	Neighborhood *string
	Profession   *string
	Experience   *int
	BirthDate    *time.Time
	Gender       *string
}

type UpdateWorkerInput struct {
	FullName     *string
	Password     *string
	Phone        *string
	Location     *string
	ServiceTypes []string
	Availability *string
	Municipality *string
	Neighborhood *string
	Profession   *string
	Experience   *int
	BirthDate    *time.Time
	Gender       *string
}

type WorkerService struct {
	repo       repository.WorkerRepository
	ratings    repository.RatingRepository
	mail       mailer.Emitter
	jwtSecret  string
	expiresMin int
}

func NewWorkerService(repo repository.WorkerRepository, ratings repository.RatingRepository, mail mailer.Emitter, jwtSecret string, expiresMin int) *WorkerService {
	return &WorkerService{repo: repo, ratings: ratings, mail: mail, jwtSecret: jwtSecret, expiresMin: expiresMin}
}

// optionalField trims an optional wire value and collapses empties to nil.
func optionalField(p *string) *string {
	if p == nil {
		return nil
	}
	return mappers.OptionalString(strings.TrimSpace(*p))
}

func (s *WorkerService) Register(ctx context.Context, in RegisterWorkerInput) (*mappers.WorkerResponse, error) {
	in.Email = normalizeEmail(in.Email)
	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	code := utils.NewActivationCode()
	worker := &models.Worker{
		FullName:       in.FullName,
		Email:          in.Email,
		Password:       hashed,
		Phone:          in.Phone,
		Location:       in.Location,
		ServiceTypes:   mappers.ServiceTypesToJSON(in.ServiceTypes),
		Availability:   in.Availability,
		Municipality:   optionalField(in.Municipality),
		Neighborhood:   optionalField(in.Neighborhood),
		Profession:     optionalField(in.Profession),
		Experience:     in.Experience,
		BirthDate:      in.BirthDate,
		Gender:         optionalField(in.Gender),
		ActivationCode: &code,
		IsActive:       false,
	}

	if err := s.repo.Create(ctx, worker); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, err
	}

	subject, html := mailer.ActivationEmail(worker.FullName, code)
	s.mail.Emit(worker.Email, subject, html)

	return mappers.ToWorkerResponse(worker), nil
}

func (s *WorkerService) Activate(ctx context.Context, email, code string) error {
	worker, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if worker == nil {
		return apperr.NotFound("worker not found")
	}
	if worker.ActivationCode == nil || *worker.ActivationCode != code {
		return apperr.InvalidCode("invalid activation code")
	}
	return s.repo.Activate(ctx, worker.ID)
}

func (s *WorkerService) Login(ctx context.Context, email, password string) (string, *mappers.WorkerResponse, error) {
	worker, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}
	if worker == nil {
		return "", nil, apperr.InvalidCredentials()
	}
	if !utils.CheckPassword(worker.Password, password) {
		return "", nil, apperr.InvalidCredentials()
	}
	if !worker.IsActive {
		return "", nil, apperr.Forbidden("account not activated")
	}

	token, err := utils.SignJWT(s.jwtSecret, worker.ID.String(), string(models.RoleWorker), s.expiresMin)
	if err != nil {
		return "", nil, err
	}
	return token, mappers.ToWorkerResponse(worker), nil
}

func (s *WorkerService) GetAll(ctx context.Context) ([]mappers.WorkerResponse, error) {
	workers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.ToWorkerResponses(workers), nil
}

func (s *WorkerService) GetByID(ctx context.Context, id uuid.UUID) (*mappers.WorkerResponse, error) {
	worker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperr.NotFound("worker not found")
	}
	return mappers.ToWorkerResponse(worker), nil
}

func (s *WorkerService) GetByEmail(ctx context.Context, email string) (*mappers.WorkerResponse, error) {
	worker, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperr.NotFound("worker not found")
	}
	return mappers.ToWorkerResponse(worker), nil
}

// Profile is the worker plus their live average rating (null when the
// worker has no ratings yet).
func (s *WorkerService) Profile(ctx context.Context, id uuid.UUID) (*mappers.WorkerProfile, error) {
	worker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperr.NotFound("worker not found")
	}
	avg, err := s.ratings.AverageForWorker(ctx, worker.ID)
	if err != nil {
		return nil, err
	}
	return mappers.ToWorkerProfile(worker, avg), nil
}

func (s *WorkerService) Update(ctx context.Context, id uuid.UUID, in UpdateWorkerInput) (*mappers.WorkerResponse, error) {
	worker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperr.NotFound("worker not found")
	}

	if in.FullName != nil {
		worker.FullName = *in.FullName
	}
	if in.Phone != nil {
		worker.Phone = *in.Phone
	}
	if in.Location != nil {
		worker.Location = *in.Location
	}
	if in.ServiceTypes != nil {
		worker.ServiceTypes = mappers.ServiceTypesToJSON(in.ServiceTypes)
	}
	if in.Availability != nil {
		worker.Availability = *in.Availability
	}
	if in.Municipality != nil {
		worker.Municipality = optionalField(in.Municipality)
	}
	if in.Neighborhood != nil {
		worker.Neighborhood = optionalField(in.Neighborhood)
	}
	if in.Profession != nil {
		worker.Profession = optionalField(in.Profession)
	}
	if in.Experience != nil {
		worker.Experience = in.Experience
	}
	if in.BirthDate != nil {
		worker.BirthDate = in.BirthDate
	}
	if in.Gender != nil {
		worker.Gender = optionalField(in.Gender)
	}

	passwordChanged := false
	if in.Password != nil && *in.Password != "" {
		hashed, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		worker.Password = hashed
		passwordChanged = true
	}

	if err := s.repo.Update(ctx, worker); err != nil {
		return nil, err
	}

	if passwordChanged {
		subject, html := mailer.PasswordChangedEmail(worker.FullName)
		s.mail.Emit(worker.Email, subject, html)
	}

	return mappers.ToWorkerResponse(worker), nil
}

func (s *WorkerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *WorkerService) ExpiresMin() int { return s.expiresMin }

func (s *WorkerService) SetAvatar(ctx context.Context, id uuid.UUID, ref *string) (*string, error) {
	worker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperr.NotFound("worker not found")
	}
	if err := s.repo.UpdateAvatar(ctx, id, ref); err != nil {
		return nil, err
	}
	return worker.Avatar, nil
}

// Search filters active workers. Location and serviceType run in SQL; the
// minRating filter runs here, over per-candidate live averages. Workers
// without ratings never pass a minRating filter.
func (s *WorkerService) Search(ctx context.Context, location, serviceType string, minRating *float64) ([]mappers.WorkerSearchResult, error) {
	workers, err := s.repo.Search(ctx, location, serviceType)
	if err != nil {
		return nil, err
	}

	results := make([]mappers.WorkerSearchResult, 0, len(workers))
	for i := range workers {
		avg, err := s.ratings.AverageForWorker(ctx, workers[i].ID)
		if err != nil {
			return nil, err
		}
		if minRating != nil && (avg == nil || *avg < *minRating) {
			continue
		}
		results = append(results, mappers.ToWorkerSearchResult(&workers[i], avg))
	}

	if len(results) == 0 {
		return nil, apperr.NotFound("no workers found")
	}
	return results, nil
}
