package availability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/suchimauz/slot-appointment-service/internal/config"
	"github.com/suchimauz/slot-appointment-service/internal/core/domain"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
)

type AvailabilityAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewAvailabilityAdapter(cfg *config.Config, logger out.LoggerPort) *AvailabilityAdapter {
	return &AvailabilityAdapter{
		client:   &http.Client{Timeout: cfg.Availability.Timeout},
		baseURL:  strings.TrimRight(cfg.Availability.URL, "/"),
		username: cfg.Availability.Username,
		password: cfg.Availability.Password,
		logger:   logger,
	}
}

func (a *AvailabilityAdapter) GetWeeklyAvailability(ctx context.Context, weekKey string) (*domain.Schedule, error) {
	a.logger.Info("availability.weekly.fetch", out.LogFields{
		"weekKey": weekKey,
	})

	url := fmt.Sprintf("%s/GetWeeklyAvailability/%s", a.baseURL, nurl.PathEscape(weekKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("availability.weekly.fetch_failed", out.LogFields{
			"weekKey": weekKey,
			"error":   err.Error(),
		})
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("availability.weekly.fetch_failed", out.LogFields{
			"weekKey": weekKey,
			"error":   err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	// 5xx - сбой сервиса, остальные неуспешные ответы считаем отсутствием расписания
	if resp.StatusCode >= http.StatusInternalServerError {
		a.logger.Error("availability.weekly.fetch_failed", out.LogFields{
			"weekKey": weekKey,
			"status":  resp.StatusCode,
		})
		return nil, fmt.Errorf("availability service responded with status code: %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.logger.Warn("availability.weekly.unexpected_status", out.LogFields{
			"weekKey": weekKey,
			"status":  resp.StatusCode,
		})
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		a.logger.Error("availability.weekly.read_response_failed", out.LogFields{
			"weekKey": weekKey,
			"error":   err.Error(),
		})
		return nil, err
	}

	if isEmptyJSON(body) {
		a.logger.Warn("availability.weekly.empty_response", out.LogFields{
			"weekKey": weekKey,
		})
		return nil, nil
	}

	var schedule scheduleResponse
	if err := json.Unmarshal(body, &schedule); err != nil {
		a.logger.Error("availability.weekly.decode_response_failed", out.LogFields{
			"weekKey": weekKey,
			"error":   err.Error(),
		})
		return nil, err
	}

	result := schedule.toDomain()

	a.logger.Debug("availability.weekly.fetch_success", out.LogFields{
		"weekKey":    weekKey,
		"facilityId": result.Facility.FacilityID,
	})

	return result, nil
}

func (a *AvailabilityAdapter) TakeSlot(ctx context.Context, appointment domain.Appointment) (bool, error) {
	a.logger.Info("availability.take_slot.submit", out.LogFields{
		"facilityId": appointment.FacilityID,
		"start":      appointment.Start,
	})

	payload, err := json.Marshal(appointment)
	if err != nil {
		a.logger.Error("availability.take_slot.encode_failed", out.LogFields{
			"error": err.Error(),
		})
		return false, err
	}

	url := fmt.Sprintf("%s/TakeSlot", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		a.logger.Error("availability.take_slot.failed", out.LogFields{
			"error": err.Error(),
		})
		return false, err
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("availability.take_slot.failed", out.LogFields{
			"facilityId": appointment.FacilityID,
			"start":      appointment.Start,
			"error":      err.Error(),
		})
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.logger.Warn("availability.take_slot.rejected", out.LogFields{
			"facilityId": appointment.FacilityID,
			"start":      appointment.Start,
			"status":     resp.StatusCode,
		})
		return false, nil
	}

	return true, nil
}

func isEmptyJSON(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return true
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return false
	}

	return len(fields) == 0
}
