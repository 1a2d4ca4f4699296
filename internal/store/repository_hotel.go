package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/models"
)

// hotelRepository is the PostgreSQL-backed implementation of
// [HotelRepository]. Inserts and partial updates are built with squirrel;
// plain lookups use the prepared query constants.
type hotelRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHotelRepository constructs a [HotelRepository] backed by the provided
// database connection and logger.
func NewHotelRepository(db *DB, logger *logger.Logger) HotelRepository {
	logger.Debug().Msg("creating hotel repository")
	return &hotelRepository{
		db:     db,
		logger: logger,
	}
}

func scanHotel(row interface{ Scan(dest ...any) error }) (models.Hotel, error) {
	var h models.Hotel
	err := row.Scan(
		&h.HotelID, &h.Name, &h.Address, &h.Currency, &h.Price,
		&h.Images, &h.ContactInfo, &h.Status,
		&h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// CreateHotel persists a new hotel record and returns it with
// server-assigned fields. Duplicate name → [ErrHotelAlreadyExists].
func (r *hotelRepository) CreateHotel(ctx context.Context, hotel models.Hotel) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("hotels").
		PlaceholderFormat(sq.Dollar).
		Columns("name", "address", "devise", "price", "images", "contact_info", "status").
		Values(hotel.Name, hotel.Address, hotel.Currency, hotel.Price, hotel.Images, hotel.ContactInfo, hotel.Status).
		Suffix("RETURNING " + hotelColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.CreateHotel").Msg("error: building insert query")
		return models.Hotel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	created, err := scanHotel(row)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Hotel{}, ErrHotelAlreadyExists
		}

		log.Err(err).Str("func", "*hotelRepository.CreateHotel").Msg("error: scanning created hotel")
		return models.Hotel{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindHotelByID retrieves a hotel by primary key.
// Missing row → [ErrNoHotelWasFound].
func (r *hotelRepository) FindHotelByID(ctx context.Context, hotelID int64) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findHotelByID, hotelID)

	foundHotel, err := scanHotel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Hotel{}, ErrNoHotelWasFound
		}

		log.Err(err).Str("func", "*hotelRepository.FindHotelByID").Msg("error: scanning found hotel")
		return models.Hotel{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundHotel, nil
}

// ListHotels returns all hotel records ordered by ID.
func (r *hotelRepository) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listHotels)
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.ListHotels").Msg("error: querying hotels")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var hotels []models.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			log.Err(err).Str("func", "*hotelRepository.ListHotels").Msg("error: scanning hotel row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		hotels = append(hotels, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return hotels, nil
}

// UpdateHotel applies a partial update and returns the refreshed record.
// The SET list is built dynamically with squirrel; nil fields stay
// untouched. Missing row → [ErrNoHotelWasFound]; renaming onto an existing
// name → [ErrHotelAlreadyExists].
func (r *hotelRepository) UpdateHotel(ctx context.Context, hotelID int64, update models.HotelUpdate) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return models.Hotel{}, ErrNothingToUpdate
	}

	builder := sq.Update("hotels").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"hotel_id": hotelID}).
		Suffix("RETURNING " + hotelColumns)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Address != nil {
		builder = builder.Set("address", *update.Address)
	}
	if update.Currency != nil {
		builder = builder.Set("devise", *update.Currency)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Images != nil {
		builder = builder.Set("images", *update.Images)
	}
	if update.ContactInfo != nil {
		builder = builder.Set("contact_info", *update.ContactInfo)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.UpdateHotel").Msg("error: building update query")
		return models.Hotel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanHotel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Hotel{}, ErrNoHotelWasFound
		}

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Hotel{}, ErrHotelAlreadyExists
		}

		log.Err(err).Str("func", "*hotelRepository.UpdateHotel").Msg("error: scanning updated hotel")
		return models.Hotel{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteHotel removes a hotel record. Missing row → [ErrNoHotelWasFound].
func (r *hotelRepository) DeleteHotel(ctx context.Context, hotelID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteHotel, hotelID)
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.DeleteHotel").Msg("error: deleting hotel")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoHotelWasFound
	}

	return nil
}
