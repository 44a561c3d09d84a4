package repository

import "github.com/venue-booking-portal/internal/domain"

// BookingRepository - хранилище демонстрационных заявок (только чтение)
type BookingRepository interface {
	// List возвращает все заявки в исходном порядке
	List() []domain.Booking

	// GetByID ищет заявку без учёта регистра
	GetByID(id string) (*domain.Booking, bool)

	// GetDetail возвращает заявку с этапами согласования, документами и перепиской
	GetDetail(id string) (*domain.BookingDetail, bool)
}
