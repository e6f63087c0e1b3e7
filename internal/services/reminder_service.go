package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"carwash-backend/internal/config"
	"carwash-backend/internal/logger"
	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/timeutil"
)

// ReminderService sends SMS reminders for tomorrow's appointments. The
// scheduler fires every day at 18:00 local time; sending is gated by the
// appointment_reminders_enabled system setting so it can be toggled without
// a restart.
type ReminderService struct {
	appointmentRepo *repositories.AppointmentRepository
	settingRepo     *repositories.SystemSettingRepository
	client          *twilio.RestClient
	fromNumber      string
	cron            *cron.Cron
}

func NewReminderService(
	cfg *config.Config,
	appointmentRepo *repositories.AppointmentRepository,
	settingRepo *repositories.SystemSettingRepository,
) *ReminderService {
	var client *twilio.RestClient
	if cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.Twilio.AccountSID,
			Password: cfg.Twilio.AuthToken,
		})
	}
	return &ReminderService{
		appointmentRepo: appointmentRepo,
		settingRepo:     settingRepo,
		client:          client,
		fromNumber:      cfg.Twilio.FromNumber,
	}
}

func (s *ReminderService) StartScheduler() {
	if s.client == nil {
		logger.L().Info("reminder scheduler disabled: twilio not configured")
		return
	}
	s.cron = cron.New()
	_, err := s.cron.AddFunc("0 18 * * *", func() {
		s.SendTomorrowReminders(context.Background())
	})
	if err != nil {
		logger.L().Error("failed to schedule reminders", zap.Error(err))
		return
	}
	s.cron.Start()
	logger.L().Info("reminder scheduler started")
}

func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendTomorrowReminders messages every scheduled or confirmed appointment on
// tomorrow's date that has a phone number.
func (s *ReminderService) SendTomorrowReminders(ctx context.Context) {
	if s.settingRepo.GetValue(ctx, models.SettingRemindersOn, "false") != "true" {
		return
	}

	tomorrow := timeutil.Now().AddDate(0, 0, 1).Format(timeutil.DateLayout)
	appointments, err := s.appointmentRepo.ListByDate(ctx, tomorrow)
	if err != nil {
		logger.L().Error("reminders: failed to list appointments", zap.Error(err))
		return
	}

	business := s.settingRepo.GetValue(ctx, models.SettingBusinessName, "Lava Rapido")
	sent := 0
	for _, appt := range appointments {
		if appt.Status != models.AppointmentScheduled && appt.Status != models.AppointmentConfirmed {
			continue
		}
		if appt.ClientPhone == "" {
			continue
		}

		body := fmt.Sprintf("%s: lembrete do seu agendamento amanha (%s) as %s.",
			business, appt.Date, appt.Time)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(appt.ClientPhone)
		params.SetFrom(s.fromNumber)
		params.SetBody(body)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			logger.L().Warn("reminders: failed to send",
				zap.String("appointment_id", appt.ID),
				zap.Error(err))
			continue
		}
		sent++
	}

	logger.L().Info("reminders sent",
		zap.String("date", tomorrow),
		zap.Int("count", sent))
}
