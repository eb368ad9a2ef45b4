package queueservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	basePath = "/QueueService.svc"

	// Имена endpoint-групп WCF-сервиса
	preRegEndpoint       = "json_pre_reg_https"
	welcomePointEndpoint = "json_wellcome_point_https"

	// Фиксированные параметры API: язык интерфейса и признак
	// предварительной записи. Передаются на каждый вызов, где применимы.
	languageID  = 1
	preliminary = 1
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент QueueService API (электронная очередь ЦНАП).
// Все операции - GET с query-параметрами; ответ приходит в JSON-конверте
// с единственным полем "d", внутри которого лежит полезная нагрузка.
type Client struct {
	baseURL          string
	organisationGuid string
	httpClient       *http.Client
	log              Logger
}

// NewClient создает новый экземпляр клиента QueueService
func NewClient(baseURL, organisationGuid string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:          baseURL,
		organisationGuid: organisationGuid,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// envelope конверт ответа QueueService
type envelope struct {
	D json.RawMessage `json:"d"`
}

// GetServiceCenters возвращает полный список сервисных центров организации.
// Фильтрацию по allow-list выполняет вызывающая сторона.
func (c *Client) GetServiceCenters(ctx context.Context) ([]ServiceCenter, error) {
	query := fmt.Sprintf("%s/getServiceCenterList?organisationGuid={%s}",
		preRegEndpoint, c.organisationGuid)

	payload, err := c.get(ctx, query)
	if err != nil {
		c.log.Error("GetServiceCenters: request failed: %v", err)
		return nil, err
	}

	return unmarshalList[ServiceCenter](c.log, "GetServiceCenters", payload), nil
}

// GetGroups возвращает группы услуг верхнего уровня для сервисного центра
func (c *Client) GetGroups(ctx context.Context, serviceCenterID int64) ([]ServiceGroup, error) {
	query := fmt.Sprintf("%s/getGroupsByCenterId?organisationGuid={%s}&serviceCenterId=%d&parentGroupId=0&languageId=%d&preliminary=%d",
		welcomePointEndpoint, c.organisationGuid, serviceCenterID, languageID, preliminary)

	payload, err := c.get(ctx, query)
	if err != nil {
		c.log.Error("GetGroups: request failed for center=%d: %v", serviceCenterID, err)
		return nil, err
	}

	return unmarshalList[ServiceGroup](c.log, "GetGroups", payload), nil
}

// GetServices возвращает услуги указанной группы
func (c *Client) GetServices(ctx context.Context, serviceCenterID, groupID int64) ([]Service, error) {
	query := fmt.Sprintf("%s/getServicesByCenterId?organisationGuid={%s}&serviceCenterId=%d&groupId=%d&languageId=%d&preliminary=%d",
		welcomePointEndpoint, c.organisationGuid, serviceCenterID, groupID, languageID, preliminary)

	payload, err := c.get(ctx, query)
	if err != nil {
		c.log.Error("GetServices: request failed for center=%d, group=%d: %v", serviceCenterID, groupID, err)
		return nil, err
	}

	return unmarshalList[Service](c.log, "GetServices", payload), nil
}

// GetAllServices возвращает все услуги центра без разбивки по группам
func (c *Client) GetAllServices(ctx context.Context, serviceCenterID int64) ([]Service, error) {
	query := fmt.Sprintf("%s/GetServiceList?organisationGuid={%s}&serviceCenterId=%d",
		preRegEndpoint, c.organisationGuid, serviceCenterID)

	payload, err := c.get(ctx, query)
	if err != nil {
		c.log.Error("GetAllServices: request failed for center=%d: %v", serviceCenterID, err)
		return nil, err
	}

	return unmarshalList[Service](c.log, "GetAllServices", payload), nil
}

// GetAvailableDates возвращает даты, на которые открыта запись по услуге
func (c *Client) GetAvailableDates(ctx context.Context, serviceCenterID, serviceID int64) ([]AvailableDate, error) {
	query := fmt.Sprintf("%s/GetDayList?organisationGuid={%s}&serviceCenterId=%d&serviceId=%d",
		preRegEndpoint, c.organisationGuid, serviceCenterID, serviceID)

	payload, err := c.get(ctx, query)
	if err != nil {
		c.log.Error("GetAvailableDates: request failed for center=%d, service=%d: %v", serviceCenterID, serviceID, err)
		return nil, err
	}

	return unmarshalList[AvailableDate](c.log, "GetAvailableDates", payload), nil
}

// GetAvailableTimes возвращает слоты времени на указанную дату.
// Дата должна быть уже в формате API (YYYY-MM-DD).
func (c *Client) GetAvailableTimes(ctx context.Context, serviceCenterID, serviceID int64, date string) ([]AvailableTime, error) {
	query := fmt.Sprintf("%s/GetTimeList?organisationGuid={%s}&serviceCenterId=%d&serviceId=%d&date=%s",
		preRegEndpoint, c.organisationGuid, serviceCenterID, serviceID, url.QueryEscape(date))

	payload, err := c.get(ctx, query)
	if err != nil {
		c.log.Error("GetAvailableTimes: request failed for center=%d, service=%d, date=%s: %v",
			serviceCenterID, serviceID, date, err)
		return nil, err
	}

	return unmarshalList[AvailableTime](c.log, "GetAvailableTimes", payload), nil
}

// RegisterCustomer регистрирует заявителя на выбранный слот.
// Опциональные параметры (email, customerInfo) не отправляются вовсе,
// если значения пустые - API различает отсутствующий и пустой параметр.
func (c *Client) RegisterCustomer(ctx context.Context, params RegisterCustomerParams) (*RegistrationResponse, error) {
	query := fmt.Sprintf("%s/RegCustomerEx?organisationGuid={%s}&serviceCenterId=%d&serviceId=%d&name=%s&phone=%s",
		preRegEndpoint, c.organisationGuid, params.ServiceCenterID, params.ServiceID,
		url.QueryEscape(params.Name), url.QueryEscape(params.Phone))

	if params.Email != "" {
		query += "&email=" + url.QueryEscape(params.Email)
	}
	if params.CompanyName != "" {
		query += "&customerInfo=" + url.QueryEscape(params.CompanyName)
	}

	query += "&date=" + url.QueryEscape(params.Date+" "+params.Time+":00")

	payload, err := c.get(ctx, query)
	if err != nil {
		c.log.Error("RegisterCustomer: request failed for center=%d, service=%d: %v",
			params.ServiceCenterID, params.ServiceID, err)
		return nil, err
	}

	var result RegistrationResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		c.log.Error("RegisterCustomer: failed to decode response: %v", err)
		return nil, fmt.Errorf("%w: failed to decode registration response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// GetReceipt возвращает HTML-фрагмент чека по заказу.
// Отсутствие чека - пробел в отображении, а не фатальная ошибка флоу,
// поэтому при любой неудаче возвращается пустая строка вместо ошибки.
func (c *Client) GetReceipt(ctx context.Context, organisationGuid string, serviceCenterID int64, orderGuid string) string {
	query := fmt.Sprintf("%s/GetReceipt?organisationGuid={%s}&serviceCenterId=%d&orderGuid={%s}",
		preRegEndpoint, organisationGuid, serviceCenterID, orderGuid)

	payload, err := c.get(ctx, query)
	if err != nil {
		c.log.Error("GetReceipt: request failed for center=%d, order=%s: %v", serviceCenterID, orderGuid, err)
		return ""
	}

	var markup string
	if err := json.Unmarshal(payload, &markup); err != nil {
		c.log.Error("GetReceipt: failed to decode response: %v", err)
		return ""
	}

	return markup
}

// get выполняет GET-запрос и снимает конверт "d" с ответа
func (c *Client) get(ctx context.Context, query string) (json.RawMessage, error) {
	requestURL := c.baseURL + basePath + "/" + query

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrRequestFailed, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode envelope: %v", ErrInvalidResponse, err)
	}

	return env.D, nil
}

// unmarshalList разбирает полезную нагрузку конверта как список.
// Отсутствующая или не-списочная нагрузка логируется и превращается
// в пустой список: флоу продолжается с нулем элементов, а не падает.
func unmarshalList[T any](log Logger, operation string, payload json.RawMessage) []T {
	if len(payload) == 0 || string(payload) == "null" {
		log.Warn("%s: payload is missing, treating as empty list", operation)
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Warn("%s: payload is not a list (%v), treating as empty list", operation, err)
		return []T{}
	}

	return items
}
