package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kuvica/kuvica-api/internal/apperr"
	"github.com/kuvica/kuvica-api/internal/mailer"
	"github.com/kuvica/kuvica-api/internal/mappers"
	"github.com/kuvica/kuvica-api/internal/models"
	"github.com/kuvica/kuvica-api/internal/repository"
	"github.com/kuvica/kuvica-api/internal/utils"
)

type RegisterClientInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	Location string
}

type UpdateClientInput struct {
	FullName *string
	Password *string
	Phone    *string
	Location *string
}

type ClientService struct {
	repo       repository.ClientRepository
	mail       mailer.Emitter
	jwtSecret  string
	expiresMin int
}

func NewClientService(repo repository.ClientRepository, mail mailer.Emitter, jwtSecret string, expiresMin int) *ClientService {
	return &ClientService{repo: repo, mail: mail, jwtSecret: jwtSecret, expiresMin: expiresMin}
}

// normalizeEmail canonicalizes addresses at the service boundary, so
// uniqueness, activation and login are case-insensitive no matter which
// caller reaches the service.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an inactive account and mails out a 6-digit activation
// code. The account commits regardless of mail delivery.
func (s *ClientService) Register(ctx context.Context, in RegisterClientInput) (*mappers.ClientResponse, error) {
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
	client := &models.Client{
		FullName:       in.FullName,
		Email:          in.Email,
		Password:       hashed,
		Phone:          in.Phone,
		Location:       in.Location,
		ActivationCode: &code,
		IsActive:       false,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, err
	}

	subject, html := mailer.ActivationEmail(client.FullName, code)
	s.mail.Emit(client.Email, subject, html)

	return mappers.ToClientResponse(client), nil
}

// Activate flips the account active iff the submitted code matches the
// stored one. The code is cleared on success, so a replay fails.
func (s *ClientService) Activate(ctx context.Context, email, code string) error {
	client, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if client == nil {
		return apperr.NotFound("client not found")
	}
	if client.ActivationCode == nil || *client.ActivationCode != code {
		return apperr.InvalidCode("invalid activation code")
	}
	return s.repo.Activate(ctx, client.ID)
}

// Login never reveals whether the email or the password was wrong.
func (s *ClientService) Login(ctx context.Context, email, password string) (string, *mappers.ClientResponse, error) {
	client, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}
	if client == nil {
		return "", nil, apperr.InvalidCredentials()
	}
	if !utils.CheckPassword(client.Password, password) {
		return "", nil, apperr.InvalidCredentials()
	}
	if !client.IsActive {
		return "", nil, apperr.Forbidden("account not activated")
	}

	token, err := utils.SignJWT(s.jwtSecret, client.ID.String(), string(models.RoleClient), s.expiresMin)
	if err != nil {
		return "", nil, err
	}
	return token, mappers.ToClientResponse(client), nil
}

func (s *ClientService) GetAll(ctx context.Context) ([]mappers.ClientResponse, error) {
	clients, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.ToClientResponses(clients), nil
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*mappers.ClientResponse, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFound("client not found")
	}
	return mappers.ToClientResponse(client), nil
}

func (s *ClientService) GetByEmail(ctx context.Context, email string) (*mappers.ClientResponse, error) {
	client, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFound("client not found")
	}
	return mappers.ToClientResponse(client), nil
}

// Update mutates the profile; a password change is re-hashed and notified
// by email.
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, in UpdateClientInput) (*mappers.ClientResponse, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFound("client not found")
	}

	if in.FullName != nil {
		client.FullName = *in.FullName
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Location != nil {
		client.Location = *in.Location
	}

	passwordChanged := false
	if in.Password != nil && *in.Password != "" {
		hashed, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		client.Password = hashed
		passwordChanged = true
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}

	if passwordChanged {
		subject, html := mailer.PasswordChangedEmail(client.FullName)
		s.mail.Emit(client.Email, subject, html)
	}

	return mappers.ToClientResponse(client), nil
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// EnsureGoogleAccount looks up or creates an active client for a
// Google-verified email. The random password is never used for manual
// login and activation is skipped: Google already proved ownership.
func (s *ClientService) EnsureGoogleAccount(ctx context.Context, email, name string) (*models.Client, error) {
	email = normalizeEmail(email)
	client, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return client, nil
	}

	hashed, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		return nil, err
	}
	client = &models.Client{
		FullName: name,
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) SignToken(clientID uuid.UUID) (string, error) {
	return utils.SignJWT(s.jwtSecret, clientID.String(), string(models.RoleClient), s.expiresMin)
}

// ExpiresMin is the token lifetime, exposed for cookie expiry.
func (s *ClientService) ExpiresMin() int { return s.expiresMin }

// SetAvatar swaps the stored avatar reference and returns the previous one
// so the caller can reclaim the old object.
func (s *ClientService) SetAvatar(ctx context.Context, id uuid.UUID, ref *string) (*string, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFound("client not found")
	}
	if err := s.repo.UpdateAvatar(ctx, id, ref); err != nil {
		return nil, err
	}
	return client.Avatar, nil
}
