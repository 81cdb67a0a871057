package availabilityRepo

import "mindhaven/models"

// AvailabilityRepository persists the recurring weekly availability
// configuration owned by each psychologist. The scheduling engine only ever
// reads it; writes go through the settings endpoints.
type AvailabilityRepository interface {
	Upsert(schedule *models.AvailabilitySchedule) error
	Get(psychologistID string) (*models.AvailabilitySchedule, error)
}
