package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ufvjm/estagiopro/internal/app/models"
	"github.com/ufvjm/estagiopro/internal/app/models/dto"
	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
	"github.com/ufvjm/estagiopro/internal/pkg/auth"
	"github.com/ufvjm/estagiopro/internal/pkg/listing"
)

type fakeOrientadorStore struct {
	rows    map[int64]*models.Orientador
	emails  map[string]bool
	updated *models.Orientador
}

func newFakeOrientadorStore() *fakeOrientadorStore {
	return &fakeOrientadorStore{rows: map[int64]*models.Orientador{}, emails: map[string]bool{}}
}

func (f *fakeOrientadorStore) List(ctx context.Context, filter dto.OrientadorFilter, sort *listing.Sort, page, limit int) ([]models.Orientador, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrientadorStore) GetByID(ctx context.Context, id int64) (*models.Orientador, error) {
	o, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrOrientadorNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrientadorStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.emails[email], nil
}

func (f *fakeOrientadorStore) Create(ctx context.Context, o *models.Orientador) error {
	o.ID = int64(len(f.rows) + 1)
	copied := *o
	f.rows[o.ID] = &copied
	f.emails[o.Email] = true
	return nil
}

func (f *fakeOrientadorStore) Update(ctx context.Context, o *models.Orientador) error {
	copied := *o
	f.updated = &copied
	return nil
}

func (f *fakeOrientadorStore) Delete(ctx context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

type fakeRevoker struct {
	revoked []int64
	err     error
}

func (f *fakeRevoker) RevokeAllTokens(ctx context.Context, orientadorID int64) error {
	f.revoked = append(f.revoked, orientadorID)
	return f.err
}

func TestCreateOrientadorHashesSenha(t *testing.T) {
	store := newFakeOrientadorStore()
	svc := NewOrientadorService(store, &fakeRevoker{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), &dto.CreateOrientadorRequest{
		Nome:  "Maria Alves",
		Email: "maria@ufvjm.edu.br",
		Senha: "senha-forte-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.SenhaHash != "" {
		t.Error("returned account must not carry the credential hash")
	}

	stored := store.rows[created.ID]
	if stored.SenhaHash == "" || stored.SenhaHash == "senha-forte-1" {
		t.Error("stored credential must be a hash, not the plaintext")
	}
	if !auth.CheckPassword(stored.SenhaHash, "senha-forte-1") {
		t.Error("stored hash does not verify the original password")
	}
	if stored.Tipo != models.TipoProfessor {
		t.Errorf("Tipo = %q, want default professor", stored.Tipo)
	}
}

func TestCreateOrientadorRejectsDuplicateEmail(t *testing.T) {
	store := newFakeOrientadorStore()
	store.emails["maria@ufvjm.edu.br"] = true
	svc := NewOrientadorService(store, &fakeRevoker{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), &dto.CreateOrientadorRequest{
		Nome:  "Maria Alves",
		Email: "maria@ufvjm.edu.br",
		Senha: "senha-forte-1",
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestUpdateOrientadorRevokesSessions(t *testing.T) {
	newSenha := "outra-senha-9"
	inativo := string(models.StatusUsuarioInativo)
	ativo := string(models.StatusUsuarioAtivo)
	nome := "Novo Nome"

	tests := []struct {
		name       string
		req        dto.UpdateOrientadorRequest
		wantRevoke bool
	}{
		{"password change", dto.UpdateOrientadorRequest{Senha: &newSenha}, true},
		{"deactivation", dto.UpdateOrientadorRequest{Status: &inativo}, true},
		{"plain profile edit", dto.UpdateOrientadorRequest{Nome: &nome}, false},
		{"reactivation", dto.UpdateOrientadorRequest{Status: &ativo}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeOrientadorStore()
			store.rows[7] = &models.Orientador{
				ID:     7,
				Nome:   "Maria Alves",
				Email:  "maria@ufvjm.edu.br",
				Tipo:   models.TipoProfessor,
				Status: models.StatusUsuarioAtivo,
			}
			revoker := &fakeRevoker{}
			svc := NewOrientadorService(store, revoker, zerolog.Nop())

			if _, err := svc.Update(context.Background(), 7, &tt.req); err != nil {
				t.Fatalf("Update: %v", err)
			}

			if tt.wantRevoke && len(revoker.revoked) != 1 {
				t.Errorf("expected sessions revoked, got %v", revoker.revoked)
			}
			if !tt.wantRevoke && len(revoker.revoked) != 0 {
				t.Errorf("unexpected session revocation: %v", revoker.revoked)
			}
		})
	}
}

func TestUpdateOrientadorRevokeFailureIsNotFatal(t *testing.T) {
	newSenha := "outra-senha-9"
	store := newFakeOrientadorStore()
	store.rows[7] = &models.Orientador{ID: 7, Nome: "Maria", Email: "m@ufvjm.edu.br", Status: models.StatusUsuarioAtivo}
	revoker := &fakeRevoker{err: errors.New("store down")}
	svc := NewOrientadorService(store, revoker, zerolog.Nop())

	updated, err := svc.Update(context.Background(), 7, &dto.UpdateOrientadorRequest{Senha: &newSenha})
	if err != nil {
		t.Fatalf("Update must succeed despite a revoke failure, got %v", err)
	}
	if updated.SenhaHash != "" {
		t.Error("returned account must not carry the credential hash")
	}
}
