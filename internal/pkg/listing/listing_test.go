package listing

import (
	"errors"
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"

	"github.com/ufvjm/estagiopro/internal/pkg/apperrors"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", Asc, false},
		{"asc", Asc, false},
		{"ASC", Asc, false},
		{"desc", Desc, false},
		{"DESC", Desc, false},
		{"sideways", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDirection(%q) = (%q, %v)", tt.in, got, err)
		}
		if err != nil && !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("ParseDirection(%q) error should wrap ErrValidationFailed", tt.in)
		}
	}
}

func TestFieldsOrderBy(t *testing.T) {
	fields := Fields{
		"nome":        "nome",
		"data_inicio": "e.data_inicio",
	}

	t.Run("nil spec uses default", func(t *testing.T) {
		clause, err := fields.OrderBy(nil, "nome ASC")
		if err != nil || clause != "nome ASC" {
			t.Errorf("got (%q, %v)", clause, err)
		}
	})

	t.Run("asc and desc resolve columns", func(t *testing.T) {
		asc, err := fields.OrderBy(&Sort{Field: "data_inicio", Direction: Asc}, "")
		if err != nil || asc != "e.data_inicio ASC" {
			t.Errorf("got (%q, %v)", asc, err)
		}
		desc, err := fields.OrderBy(&Sort{Field: "data_inicio", Direction: Desc}, "")
		if err != nil || desc != "e.data_inicio DESC" {
			t.Errorf("got (%q, %v)", desc, err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := fields.OrderBy(&Sort{Field: "senha", Direction: Asc}, "")
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("err = %v, want validation failure", err)
		}
	})
}

func TestSearchClause(t *testing.T) {
	sql, args, err := SearchClause("silva", []string{"nome", "email", "matricula"}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if strings.Count(sql, "ILIKE") != 3 {
		t.Errorf("sql = %q, want three ILIKE terms", sql)
	}
	if !strings.Contains(sql, " OR ") {
		t.Errorf("sql = %q, want OR disjunction", sql)
	}
	for _, a := range args {
		if a != "%silva%" {
			t.Errorf("arg = %v, want %%silva%%", a)
		}
	}
}

func TestApplySearch(t *testing.T) {
	base := squirrel.Select("*").From("estudantes").PlaceholderFormat(squirrel.Dollar)

	t.Run("blank term is a no-op", func(t *testing.T) {
		sql, _, err := ApplySearch(base, "  ", []string{"nome"}).ToSql()
		if err != nil {
			t.Fatalf("ToSql: %v", err)
		}
		if strings.Contains(sql, "ILIKE") {
			t.Errorf("sql = %q, want no search clause", sql)
		}
	})

	t.Run("term adds disjunction conjunctively", func(t *testing.T) {
		q := base.Where(squirrel.Eq{"status": "Ativo"})
		sql, args, err := ApplySearch(q, "ana", []string{"nome", "email"}).ToSql()
		if err != nil {
			t.Fatalf("ToSql: %v", err)
		}
		if !strings.Contains(sql, "status = $1") || !strings.Contains(sql, "ILIKE") {
			t.Errorf("sql = %q", sql)
		}
		if len(args) != 3 {
			t.Errorf("args = %v, want status plus two patterns", args)
		}
	})
}
