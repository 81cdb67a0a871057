package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mindhaven/config"
	appointmentRepo "mindhaven/database/repository/appointment"
	availabilityRepo "mindhaven/database/repository/availability"
	"mindhaven/models"
	"mindhaven/services/scheduling"
	"mindhaven/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const slotCacheTTL = 2 * time.Minute

// DefaultAppointmentService is the production implementation. Cache is
// optional; a nil client disables slot caching entirely.
type DefaultAppointmentService struct {
	ApptRepo  appointmentRepo.AppointmentRepository
	AvailRepo availabilityRepo.AvailabilityRepository
	Cache     *redis.Client
}

// GetAvailableSlots expands the psychologist's weekly availability over
// [from, to], removes windows already held by non-terminal appointments, and
// returns what is left. Results are served from the slot cache when a fresh
// copy exists.
func (s *DefaultAppointmentService) GetAvailableSlots(psychologistID string, from, to time.Time, durationMinutes int) ([]models.CandidateSlot, error) {
	from, to = from.UTC(), to.UTC()

	cacheKey, err := s.slotCacheKey(psychologistID, from, to, durationMinutes)
	if err == nil && cacheKey != "" {
		if cached, hit := s.readSlotCache(cacheKey); hit {
			return cached, nil
		}
	}

	schedule, err := s.AvailRepo.Get(psychologistID)
	if err != nil {
		return nil, err
	}

	candidates := scheduling.ExpandAvailability(schedule.Days, from, to, durationMinutes)
	if len(candidates) == 0 {
		return nil, nil
	}

	existing, err := s.ApptRepo.ListForPsychologist(psychologistID, from, to.AddDate(0, 0, 1), true)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing appointments: %w", err)
	}
	available := scheduling.FilterAvailable(candidates, existing)

	if cacheKey != "" {
		s.writeSlotCache(cacheKey, available)
	}
	return available, nil
}

// BookAppointment runs the conflict validator as a fast pre-check and then
// lets the repository's unique index arbitrate the final commit, so two
// racing requests for one window can never both succeed.
func (s *DefaultAppointmentService) BookAppointment(req models.BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()
	start, end := req.Start.UTC(), req.End.UTC()

	schedule, err := s.AvailRepo.Get(req.PsychologistID)
	if err != nil {
		return nil, err
	}

	// The grid for validation is the configured one: expanding with a
	// non-positive duration makes each day fall back to its own session
	// duration.
	candidates := scheduling.ExpandAvailability(schedule.Days, start, start, 0)
	existing, err := s.ApptRepo.ListForPsychologist(req.PsychologistID, truncateToDay(start), truncateToDay(start).AddDate(0, 0, 1), true)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing appointments: %w", err)
	}

	window := models.BookingWindow{Start: start, End: end}
	if err := scheduling.ValidateBooking(window, candidates, existing); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	appt := &models.Appointment{
		ID:             uuid.New().String(),
		PsychologistID: req.PsychologistID,
		ClientID:       req.ClientID,
		Start:          start,
		End:            end,
		Status:         models.StatusBooked,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.ApptRepo.Create(appt); err != nil {
		return nil, err
	}

	s.bumpSlotCache(req.PsychologistID)
	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("psychologistID", appt.PsychologistID),
		zap.Time("start", appt.Start))
	return appt, nil
}

// GetAppointment retrieves a single appointment.
func (s *DefaultAppointmentService) GetAppointment(appointmentID string) (*models.Appointment, error) {
	return s.ApptRepo.GetByID(appointmentID)
}

// TransitionAppointment runs the state machine on the stored appointment and
// commits the result with a compare-and-set on the prior status. A racing
// transition that commits first leaves this one stale, and the stale commit
// fails with illegalTransition instead of overwriting.
func (s *DefaultAppointmentService) TransitionAppointment(appointmentID string, target models.AppointmentStatus, now time.Time) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}

	updated, err := scheduling.Transition(*appt, target, now.UTC())
	if err != nil {
		return nil, err
	}
	if err := s.ApptRepo.UpdateStatus(appointmentID, appt.Status, updated.Status, updated.UpdatedAt); err != nil {
		return nil, err
	}

	// Terminal statuses free the window for new bookings.
	if updated.Status.Terminal() {
		s.bumpSlotCache(appt.PsychologistID)
	}
	return &updated, nil
}

// SetWeeklyAvailability validates and stores a psychologist's weekly
// configuration (the settings collaborator of the scheduling engine).
func (s *DefaultAppointmentService) SetWeeklyAvailability(psychologistID string, days []models.WeeklyAvailability) (*models.AvailabilitySchedule, error) {
	for i := range days {
		d := &days[i]
		if d.Available && d.SessionDuration == 0 {
			d.SessionDuration = config.AppConfig.DefaultSessionMinutes
		}
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return nil, fmt.Errorf("dayOfWeek must be between 0 and 6, got %d", d.DayOfWeek)
		}
		if !d.Available {
			continue
		}
		start, err := scheduling.BindClock(time.Time{}, d.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := scheduling.BindClock(time.Time{}, d.EndTime)
		if err != nil {
			return nil, err
		}
		if !start.Before(end) {
			return nil, fmt.Errorf("startTime %s must be before endTime %s", d.StartTime, d.EndTime)
		}
		if d.SessionDuration <= 0 {
			return nil, fmt.Errorf("sessionDuration must be positive, got %d", d.SessionDuration)
		}
	}

	schedule := &models.AvailabilitySchedule{
		PsychologistID: psychologistID,
		Days:           days,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.AvailRepo.Upsert(schedule); err != nil {
		return nil, err
	}
	s.bumpSlotCache(psychologistID)
	return schedule, nil
}

// GetWeeklyAvailability returns the stored weekly configuration.
func (s *DefaultAppointmentService) GetWeeklyAvailability(psychologistID string) (*models.AvailabilitySchedule, error) {
	return s.AvailRepo.Get(psychologistID)
}

// SweepMissed moves every "booked" appointment whose window has elapsed into
// "missed". Losing a status race to a concurrent cancel is expected and
// skipped, not an error.
func (s *DefaultAppointmentService) SweepMissed(now time.Time) (int, error) {
	logger := utils.GetLogger()
	now = now.UTC()

	overdue, err := s.ApptRepo.ListOverdueBooked(now)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, appt := range overdue {
		updated, err := scheduling.Transition(appt, models.StatusMissed, now)
		if err != nil {
			continue
		}
		if err := s.ApptRepo.UpdateStatus(appt.ID, appt.Status, updated.Status, updated.UpdatedAt); err != nil {
			if scheduling.IsCode(err, scheduling.CodeIllegalTransition) {
				continue
			}
			logger.Warn("failed to mark appointment missed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			continue
		}
		swept++
	}
	return swept, nil
}

// --- slot cache -------------------------------------------------------------

// Slot responses are cached per psychologist under a namespace version; any
// write that can change availability bumps the version instead of hunting
// down individual keys.
func (s *DefaultAppointmentService) slotCacheKey(psychologistID string, from, to time.Time, durationMinutes int) (string, error) {
	if s.Cache == nil {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ver, err := s.Cache.Get(ctx, "slots:ver:"+psychologistID).Result()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("slots:%s:%s:%d:%d:%d", psychologistID, ver, from.Unix(), to.Unix(), durationMinutes), nil
}

func (s *DefaultAppointmentService) readSlotCache(key string) ([]models.CandidateSlot, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.CandidateSlot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultAppointmentService) writeSlotCache(key string, slots []models.CandidateSlot) {
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = s.Cache.Set(ctx, key, data, slotCacheTTL).Err()
}

func (s *DefaultAppointmentService) bumpSlotCache(psychologistID string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Cache.Incr(ctx, "slots:ver:"+psychologistID).Err(); err != nil {
		utils.GetLogger().Warn("failed to bump slot cache version",
			zap.String("psychologistID", psychologistID), zap.Error(err))
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
