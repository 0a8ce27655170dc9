package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hoangfish/HotelSystemFull/infras/otel"
	"github.com/hoangfish/HotelSystemFull/infras/postgres"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/model"
	"github.com/hoangfish/HotelSystemFull/shared/constant"
	gDto "github.com/hoangfish/HotelSystemFull/shared/dto"
	"github.com/hoangfish/HotelSystemFull/shared/logger"
	gRepo "github.com/hoangfish/HotelSystemFull/shared/repository"
	"github.com/hoangfish/HotelSystemFull/shared/timezone"
)

type Admin interface {
	Insert(ctx context.Context, model model.Admin) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Admin, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetMirror(ctx context.Context) (model.Admin, error)
	UpdateGuestList(ctx context.Context, id string, list model.SnapshotList) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Admin]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Admin](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetMirror returns the mirror aggregate, the oldest admin row. A zero ID
// means no admin has been registered yet.
func (repo *repositoryImpl) GetMirror(ctx context.Context) (model.Admin, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetMirror")
	defer scope.End()

	var admin model.Admin

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY created_at ASC LIMIT 1", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err := repo.db.Read.GetContext(ctx, &admin, query)
	if errors.Is(err, sql.ErrNoRows) {
		return admin, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return admin, fmt.Errorf("failed to get mirror aggregate: %w", err)
	}

	return admin, nil
}

func (repo *repositoryImpl) UpdateGuestList(ctx context.Context, id string, list model.SnapshotList) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateGuestList")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET %s = :guest_list, modified_at = :modified_at WHERE %s = :id", model.TableName, model.FieldGuestList, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	value, err := list.Value()
	if err != nil {
		return fmt.Errorf("failed to encode guest snapshot list: %w", err)
	}

	_, err = repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"id":          id,
		"guest_list":  value,
		"modified_at": timezone.Now(),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update guest snapshot list: %w", err)
	}

	return nil
}
