package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/projectcredential"
	"github.com/stenobot-io/stenobot/pkg/credentials"
	"github.com/stenobot-io/stenobot/pkg/ids"
)

// CredentialService stores per-project credential blobs. Values roundtrip
// JSON and are sealed with the process-wide key before touching the
// database; a corrupt or foreign-key ciphertext surfaces as
// credentials.ErrDecryptionFailed.
type CredentialService struct {
	client *ent.Client
	box    *credentials.Box
	logger *slog.Logger
}

// NewCredentialService creates a new CredentialService
func NewCredentialService(client *ent.Client, box *credentials.Box, logger *slog.Logger) *CredentialService {
	return &CredentialService{
		client: client,
		box:    box,
		logger: logger.With("service", "credential"),
	}
}

// Set seals value and upserts it under (projectID, kind).
func (s *CredentialService) Set(ctx context.Context, projectID, kind string, value interface{}) error {
	if kind == "" {
		return NewValidationError("credential_kind", "required")
	}
	sealed, err := s.box.Seal(value)
	if err != nil {
		return fmt.Errorf("failed to seal credential: %w", err)
	}

	existing, err := s.client.ProjectCredential.Query().
		Where(
			projectcredential.ProjectID(projectID),
			projectcredential.CredentialKind(kind),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = s.client.ProjectCredential.UpdateOneID(existing.ID).
			SetEncryptedBlob(sealed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update credential: %w", err)
		}
	case ent.IsNotFound(err):
		_, err = s.client.ProjectCredential.Create().
			SetID(ids.New(ids.PrefixBlob)).
			SetProjectID(projectID).
			SetCredentialKind(kind).
			SetEncryptedBlob(sealed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create credential: %w", err)
		}
	default:
		return fmt.Errorf("failed to query credential: %w", err)
	}

	s.logger.InfoContext(ctx, "credential stored", "project_id", projectID, "kind", kind)
	return nil
}

// Get opens the credential stored under (projectID, kind) into out.
func (s *CredentialService) Get(ctx context.Context, projectID, kind string, out interface{}) error {
	cred, err := s.client.ProjectCredential.Query().
		Where(
			projectcredential.ProjectID(projectID),
			projectcredential.CredentialKind(kind),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("credential %s/%s: %w", projectID, kind, ErrNotFound)
		}
		return fmt.Errorf("failed to query credential: %w", err)
	}
	return s.box.Open(cred.EncryptedBlob, out)
}

// Delete removes the credential stored under (projectID, kind). Deleting a
// missing credential is not an error.
func (s *CredentialService) Delete(ctx context.Context, projectID, kind string) error {
	_, err := s.client.ProjectCredential.Delete().
		Where(
			projectcredential.ProjectID(projectID),
			projectcredential.CredentialKind(kind),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
