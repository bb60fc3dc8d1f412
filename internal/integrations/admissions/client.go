package admissions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с сервисом приема (AdmissionsService)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AdmissionsService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListEligibleApplicants получает список заявителей, допущенных к собеседованию.
// При указании programID список фильтруется по программе.
func (c *Client) ListEligibleApplicants(ctx context.Context, programID *int64) ([]Applicant, error) {
	url := fmt.Sprintf("%s/internal/applicants/eligible", c.baseURL)
	if programID != nil {
		url = fmt.Sprintf("%s?program_id=%d", url, *programID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var applicants []Applicant
	if err := json.NewDecoder(resp.Body).Decode(&applicants); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return applicants, nil
}

// GetApplicant получает заявителя по ID.
// Сервис приема отдает по этому адресу только заявителей, прошедших
// отбор по критериям допуска; для остальных возвращается 404.
func (c *Client) GetApplicant(ctx context.Context, applicantID int64) (*Applicant, error) {
	url := fmt.Sprintf("%s/internal/applicants/%d", c.baseURL, applicantID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrApplicantNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var applicant Applicant
	if err := json.NewDecoder(resp.Body).Decode(&applicant); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &applicant, nil
}

// IsEligible проверяет, допущен ли заявитель к собеседованию по программе.
// Наличие заявителя в сервисе приема означает пройденный отбор (см. GetApplicant),
// поэтому проверка сводится к существованию и совпадению программы.
// Заявитель, не найденный в сервисе приема, считается недопущенным.
func (c *Client) IsEligible(ctx context.Context, applicantID int64, programID *int64) (bool, error) {
	applicant, err := c.GetApplicant(ctx, applicantID)
	if err != nil {
		if err == ErrApplicantNotFound {
			c.log.Info("Applicant %d not found in admissions service, treating as not eligible", applicantID)
			return false, nil
		}
		return false, err
	}

	if programID != nil && (applicant.ProgramID == nil || *applicant.ProgramID != *programID) {
		return false, nil
	}

	return true, nil
}
