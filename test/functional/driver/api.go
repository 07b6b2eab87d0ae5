package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) ListSinks(acceptLanguage string) (*http.Response, error) {
	return d.get("/v1/sinks", nil, acceptLanguage)
}

func (d *APIDriver) GetForm(sinkType string, query url.Values, acceptLanguage string) (*http.Response, error) {
	return d.get(fmt.Sprintf("/v1/sinks/%s/form", sinkType), query, acceptLanguage)
}

func (d *APIDriver) GetFieldColumns(sinkType string, query url.Values) (*http.Response, error) {
	return d.get(fmt.Sprintf("/v1/sinks/%s/fields", sinkType), query, "")
}

func (d *APIDriver) GetTableColumns(sinkType string, acceptLanguage string) (*http.Response, error) {
	return d.get(fmt.Sprintf("/v1/sinks/%s/table-columns", sinkType), nil, acceptLanguage)
}

func (d *APIDriver) ResolveRow(sinkType string, body map[string]any) (*http.Response, error) {
	return d.post(fmt.Sprintf("/v1/sinks/%s/fields/resolve", sinkType), body)
}

func (d *APIDriver) ValidateConfig(sinkType string, body map[string]any) (*http.Response, error) {
	return d.post(fmt.Sprintf("/v1/sinks/%s/validate", sinkType), body)
}

func (d *APIDriver) get(path string, query url.Values, acceptLanguage string) (*http.Response, error) {
	target := d.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	return d.client.Do(req)
}

func (d *APIDriver) post(path string, body map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return d.client.Post(d.baseURL+path, "application/json", bytes.NewBuffer(reqBody))
}
