package pipedrive

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type personSearchResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Items []struct {
			Item struct {
				ID int `json:"id"`
			} `json:"item"`
		} `json:"items"`
	} `json:"data"`
}

type entityResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID int `json:"id"`
	} `json:"data"`
}

type pipedriveClient struct {
	httpClient *resty.Client
	Log        *zap.Logger
}

func NewPipedriveClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PipedriveClient {
	client := resty.New().
		SetBaseURL(internalConfig.Pipedrive.BaseUrl).
		SetTimeout(15 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetQueryParam("api_token", internalConfig.Pipedrive.APIToken).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &pipedriveClient{
		httpClient: client,
		Log:        logger,
	}
}

func (c *pipedriveClient) SearchPersonByName(ctx context.Context, term string) (string, error) {
	var response personSearchResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("term", term).
		SetQueryParam("fields", "name").
		SetQueryParam("exact_match", "true").
		SetResult(&response).
		Get("persons/search")
	if err != nil {
		return "", fmt.Errorf("pipedrive person search: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("pipedrive person search returned %d", resp.StatusCode())
	}
	if len(response.Data.Items) == 0 {
		return "", nil
	}
	return strconv.Itoa(response.Data.Items[0].Item.ID), nil
}

func (c *pipedriveClient) CreatePerson(ctx context.Context, name, email, phone string) (string, error) {
	body := map[string]interface{}{"name": name}
	if email != "" {
		body["email"] = []string{email}
	}
	if phone != "" {
		body["phone"] = []string{phone}
	}

	var response entityResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&response).
		Post("persons")
	if err != nil {
		return "", fmt.Errorf("pipedrive create person: %w", err)
	}
	if resp.IsError() || !response.Success {
		return "", fmt.Errorf("pipedrive create person returned %d", resp.StatusCode())
	}
	return strconv.Itoa(response.Data.ID), nil
}

func (c *pipedriveClient) CreateDeal(ctx context.Context, personID, title string, value float64) (string, error) {
	body := map[string]interface{}{
		"title":     title,
		"person_id": personID,
		"value":     value,
		"currency":  "BRL",
	}

	var response entityResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&response).
		Post("deals")
	if err != nil {
		return "", fmt.Errorf("pipedrive create deal: %w", err)
	}
	if resp.IsError() || !response.Success {
		return "", fmt.Errorf("pipedrive create deal returned %d", resp.StatusCode())
	}
	return strconv.Itoa(response.Data.ID), nil
}

func (c *pipedriveClient) UpdateDealValue(ctx context.Context, dealID string, value float64) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"value": value}).
		Put(fmt.Sprintf("deals/%s", dealID))
	if err != nil {
		return fmt.Errorf("pipedrive update deal: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("pipedrive update deal returned %d", resp.StatusCode())
	}
	return nil
}

func (c *pipedriveClient) CreateActivity(ctx context.Context, dealID, subject, note string) error {
	body := map[string]interface{}{
		"deal_id": dealID,
		"subject": subject,
		"note":    note,
		"type":    "task",
		"done":    1,
	}
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post("activities")
	if err != nil {
		return fmt.Errorf("pipedrive create activity: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("pipedrive create activity returned %d", resp.StatusCode())
	}
	return nil
}
