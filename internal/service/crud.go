package service

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/dto"
	"warehouse/internal/repository"

	"gorm.io/gorm"
)

// CRUDService is the operation set every resource controller exposes.
// Update replaces all writable fields with req; callers that want partial
// semantics merge the stored state into req first.
type CRUDService[Req, Resp any] interface {
	List(ctx context.Context, page int) (*dto.PageResult[Resp], error)
	Get(ctx context.Context, id uint) (*Resp, error)
	Create(ctx context.Context, req Req) (*Resp, error)
	Update(ctx context.Context, id uint, req Req) (*Resp, error)
	Delete(ctx context.Context, id uint) error
}

// binding maps one entity between its row and wire forms.
type binding[T, Req, Resp any] struct {
	name    string
	apply   func(req Req, e *T)
	respond func(e *T) Resp
	// refs lists the foreign keys carried by req; nil ids are skipped.
	refs func(req Req) []reference
}

type reference struct {
	field  string
	id     *uint
	exists func(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

func ref[T any](field string, id *uint, repo repository.Repository[T]) reference {
	return reference{
		field: field,
		id:    id,
		exists: func(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
			return repo.WithTx(tx).Exists(ctx, id)
		},
	}
}

type crudService[T, Req, Resp any] struct {
	repo repository.Repository[T]
	tx   repository.Transactor
	b    binding[T, Req, Resp]
}

func newCRUDService[T, Req, Resp any](repo repository.Repository[T], tx repository.Transactor, b binding[T, Req, Resp]) *crudService[T, Req, Resp] {
	return &crudService[T, Req, Resp]{repo: repo, tx: tx, b: b}
}

func (s *crudService[T, Req, Resp]) List(ctx context.Context, page int) (*dto.PageResult[Resp], error) {
	res, err := paginate(ctx, page, s.repo.List, s.b.respond)
	if err != nil {
		return nil, s.wrap("list", err)
	}
	return res, nil
}

func (s *crudService[T, Req, Resp]) Get(ctx context.Context, id uint) (*Resp, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrap("get", err)
	}
	resp := s.b.respond(e)
	return &resp, nil
}

func (s *crudService[T, Req, Resp]) Create(ctx context.Context, req Req) (*Resp, error) {
	var e T
	s.b.apply(req, &e)

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.checkRefs(ctx, tx, req); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Create(ctx, &e)
	})
	if err != nil {
		return nil, s.wrap("create", err)
	}
	resp := s.b.respond(&e)
	return &resp, nil
}

func (s *crudService[T, Req, Resp]) Update(ctx context.Context, id uint, req Req) (*Resp, error) {
	var updated *T
	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		e, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.checkRefs(ctx, tx, req); err != nil {
			return err
		}
		s.b.apply(req, e)
		if err := repo.Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, s.wrap("update", err)
	}
	resp := s.b.respond(updated)
	return &resp, nil
}

func (s *crudService[T, Req, Resp]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.wrap("delete", err)
	}
	return nil
}

// checkRefs reports every foreign key in req that does not resolve.
func (s *crudService[T, Req, Resp]) checkRefs(ctx context.Context, tx *gorm.DB, req Req) error {
	if s.b.refs == nil {
		return nil
	}
	verr := &ValidationError{}
	for _, r := range s.b.refs(req) {
		if r.id == nil {
			continue
		}
		ok, err := r.exists(ctx, tx, *r.id)
		if err != nil {
			return fmt.Errorf("check %s: %w", r.field, err)
		}
		if !ok {
			verr.Add(r.field, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *r.id))
		}
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// wrap translates storage errors into the service error taxonomy.
func (s *crudService[T, Req, Resp]) wrap(op string, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, ErrInvalidPage):
		return ErrInvalidPage
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s %s: %w", op, s.b.name, ErrNotFound)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s %s: %w", op, s.b.name, ErrIntegrity)
	default:
		return fmt.Errorf("%s %s: %w", op, s.b.name, err)
	}
}

// paginate loads page (1-based) of PageSize rows. Page 1 of an empty table is
// valid; any other page past the end is ErrInvalidPage.
func paginate[T, R any](ctx context.Context, page int, fetch func(ctx context.Context, offset, limit int) ([]T, int64, error), respond func(*T) R) (*dto.PageResult[R], error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	rows, total, err := fetch(ctx, (page-1)*dto.PageSize, dto.PageSize)
	if err != nil {
		return nil, err
	}

	numPages := int((total + dto.PageSize - 1) / dto.PageSize)
	if numPages == 0 {
		numPages = 1
	}
	if page > numPages {
		return nil, ErrInvalidPage
	}

	results := make([]R, 0, len(rows))
	for i := range rows {
		results = append(results, respond(&rows[i]))
	}
	return &dto.PageResult[R]{
		Results:  results,
		Count:    total,
		Page:     page,
		NumPages: numPages,
	}, nil
}

func ptr[T any](v T) *T { return &v }

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
