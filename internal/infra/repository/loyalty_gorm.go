package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type LoyaltyGormRepository struct {
	db *gorm.DB
}

func NewLoyaltyGormRepository(db *gorm.DB) *LoyaltyGormRepository {
	return &LoyaltyGormRepository{db: db}
}

func (r *LoyaltyGormRepository) Balance(
	ctx context.Context,
	userID uint,
) (int, error) {

	var account models.LoyaltyAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&account).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return account.Points, nil
}

// RedeemAndBook debits the points and books the redeemed slot in one
// transaction. The account row is locked for the duration, so two
// concurrent redemptions by the same user serialize and the second one sees
// the already-debited balance.
func (r *LoyaltyGormRepository) RedeemAndBook(
	ctx context.Context,
	userID uint,
	cost int,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var account models.LoyaltyAccount
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&account).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeInsufficientPoints)
			}
			return err
		}

		if account.Points < cost {
			return httperr.ErrBusiness(httperr.CodeInsufficientPoints)
		}

		if err := tx.
			Model(&account).
			Update("points", gorm.Expr("points - ?", cost)).Error; err != nil {
			return err
		}

		// Same locked exact-slot re-check as a paid booking; the
		// redeemed appointment consumes a real slot.
		var held []uint
		if err := findSlotHolders(tx, ap.BarberID, ap.Date, &held).Error; err != nil {
			return err
		}

		if len(held) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		entry := models.LoyaltyTransaction{
			Reference:     uuid.NewString(),
			UserID:        userID,
			Delta:         -cost,
			AppointmentID: &ap.ID,
			Reason:        domain.ReasonFreeServiceRedeemed,
		}
		return tx.Create(&entry).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}
	return err
}

// creditPoints upserts the account and appends the ledger entry. Runs
// inside the caller's transaction.
func creditPoints(tx *gorm.DB, userID uint, points int, appointmentID *uint) error {

	var account models.LoyaltyAccount
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&account).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		account = models.LoyaltyAccount{UserID: userID, Points: points}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err := tx.
			Model(&account).
			Update("points", gorm.Expr("points + ?", points)).Error; err != nil {
			return err
		}
	}

	entry := models.LoyaltyTransaction{
		Reference:     uuid.NewString(),
		UserID:        userID,
		Delta:         points,
		AppointmentID: appointmentID,
		Reason:        domain.ReasonAppointmentCompleted,
	}
	return tx.Create(&entry).Error
}

// Compile-time check
var _ domain.Repository = (*LoyaltyGormRepository)(nil)
