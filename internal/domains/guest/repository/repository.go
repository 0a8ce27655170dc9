package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hoangfish/HotelSystemFull/infras/otel"
	"github.com/hoangfish/HotelSystemFull/infras/postgres"
	"github.com/hoangfish/HotelSystemFull/internal/domains/guest/model"
	"github.com/hoangfish/HotelSystemFull/shared/constant"
	gDto "github.com/hoangfish/HotelSystemFull/shared/dto"
	"github.com/hoangfish/HotelSystemFull/shared/failure"
	"github.com/hoangfish/HotelSystemFull/shared/logger"
	gRepo "github.com/hoangfish/HotelSystemFull/shared/repository"
	"github.com/hoangfish/HotelSystemFull/shared/timezone"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByBookingCode(ctx context.Context, bookingCode string) (model.Guest, error)
	UpdateBookings(ctx context.Context, id string, version int, bookings model.BookingList) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByBookingCode finds the guest whose booking list contains the given
// booking code, using a JSONB containment match.
func (repo *repositoryImpl) GetByBookingCode(ctx context.Context, bookingCode string) (model.Guest, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetByBookingCode")
	defer scope.End()

	var guest model.Guest

	match, err := json.Marshal([]map[string]string{{"bookingCode": bookingCode}})
	if err != nil {
		return guest, fmt.Errorf("failed to marshal booking code match: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s @> CAST(:match AS JSONB)", model.TableName, model.FieldBookings)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return guest, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &guest, map[string]any{"match": string(match)})
	if errors.Is(err, sql.ErrNoRows) {
		return guest, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return guest, fmt.Errorf("failed to get guest by booking code: %w", err)
	}

	return guest, nil
}

// UpdateBookings replaces a guest's booking list behind an optimistic lock.
// The write only lands when the row still carries the version the caller
// read, otherwise a conflict is returned and the caller must retry.
func (repo *repositoryImpl) UpdateBookings(ctx context.Context, id string, version int, bookings model.BookingList) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateBookings")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :bookings, %s = %s + 1, modified_at = :modified_at WHERE %s = :id AND %s = :version",
		model.TableName, model.FieldBookings, model.FieldVersion, model.FieldVersion, model.FieldID, model.FieldVersion,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	value, err := bookings.Value()
	if err != nil {
		return fmt.Errorf("failed to encode booking list: %w", err)
	}

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"id":          id,
		"version":     version,
		"bookings":    value,
		"modified_at": timezone.Now(),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update booking list: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("booking list was modified concurrently") // nolint:wrapcheck
	}

	return nil
}
