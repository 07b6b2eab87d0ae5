package steps

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func (fc *FeatureContext) theSinkType(sinkType string) error {
	fc.sinkType = sinkType
	return nil
}

func (fc *FeatureContext) thePreferredLanguage(language string) error {
	fc.acceptLanguage = language
	return nil
}

func (fc *FeatureContext) anEntityBeingEditedWithStatus(status int) error {
	fc.query.Set("editing", "true")
	fc.query.Set("status", strconv.Itoa(status))
	return nil
}

func (fc *FeatureContext) anEntityBeingCreated() error {
	fc.query.Set("editing", "false")
	fc.query.Del("status")
	return nil
}

func (fc *FeatureContext) aFieldListRowWithSetTo(field, value string) error {
	fc.row[field] = value
	return nil
}

func (fc *FeatureContext) theConfigValueIs(field, value string) error {
	fc.values[field] = value
	return nil
}

func (fc *FeatureContext) iListTheSinks() error {
	response, err := fc.apiDriver.ListSinks(fc.acceptLanguage)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iRequestTheFormInMode(mode string) error {
	query := cloneQuery(fc.query)
	query.Set("mode", mode)

	response, err := fc.apiDriver.GetForm(fc.sinkType, query, fc.acceptLanguage)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iRequestTheFieldListColumns() error {
	response, err := fc.apiDriver.GetFieldColumns(fc.sinkType, fc.query)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iRequestTheTableColumns() error {
	response, err := fc.apiDriver.GetTableColumns(fc.sinkType, fc.acceptLanguage)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iResolveTheRow(age string) error {
	body := map[string]any{
		"row":     fc.row,
		"index":   0,
		"is_new":  age == "new",
		"editing": fc.query.Get("editing") == "true",
	}
	if status := fc.query.Get("status"); status != "" {
		n, err := strconv.Atoi(status)
		if err != nil {
			return err
		}
		body["status"] = n
	}

	response, err := fc.apiDriver.ResolveRow(fc.sinkType, body)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iValidateTheConfig() error {
	response, err := fc.apiDriver.ValidateConfig(fc.sinkType, map[string]any{
		"values":  fc.values,
		"editing": fc.query.Get("editing") == "true",
	})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theSinkListShouldContainLabelled(sinkType, label string) error {
	fc.decodeResponse()

	for _, sink := range fc.list("sinks") {
		if sink["type"] == sinkType {
			fc.require.Equal(label, sink["label"])
			return nil
		}
	}
	return fmt.Errorf("sink %s not listed", sinkType)
}

func (fc *FeatureContext) theFormItemsShouldBe(names string) error {
	fc.decodeResponse()

	fc.require.Equal(splitNames(names), fc.names("items", "name"))
	return nil
}

func (fc *FeatureContext) theFormItemShouldBe(name, state string) error {
	item := fc.find("items", "name", name)
	props := item["props"].(map[string]any)
	fc.require.Equal(state == "disabled", props["disabled"], "field %s", name)
	return nil
}

func (fc *FeatureContext) theFormItemShouldBeLabelled(name, label string) error {
	item := fc.find("items", "name", name)
	fc.require.Equal(label, item["label"])
	return nil
}

func (fc *FeatureContext) theColumnsShouldBe(names string) error {
	fc.decodeResponse()

	fc.require.Equal(splitNames(names), fc.names("columns", "data_index"))
	return nil
}

func (fc *FeatureContext) theCellShouldBe(dataIndex, state string) error {
	cell := fc.cell(dataIndex)
	props := cell["props"].(map[string]any)
	fc.require.Equal(state == "disabled", props["disabled"], "cell %s", dataIndex)
	return nil
}

func (fc *FeatureContext) theCellShouldBeShown(dataIndex, state string) error {
	cell := fc.cell(dataIndex)
	fc.require.Equal(state == "visible", cell["visible"], "cell %s", dataIndex)
	return nil
}

func (fc *FeatureContext) theRowShouldBeDeletable(not string) error {
	fc.decodeResponse()
	fc.require.Equal(not == "", fc.responseData["deletable"])
	return nil
}

func (fc *FeatureContext) theConfigShouldBe(state string) error {
	fc.decodeResponse()

	fc.require.Equal(state == "valid", fc.responseData["valid"])
	return nil
}

func (fc *FeatureContext) thereShouldBeAnErrorFor(field string) error {
	for _, e := range fc.list("errors") {
		if e["field"] == field {
			fc.require.NotEmpty(e["message"])
			return nil
		}
	}
	return fmt.Errorf("no error reported for %s", field)
}

func (fc *FeatureContext) cell(dataIndex string) map[string]any {
	fc.decodeResponse()
	return fc.find("cells", "data_index", dataIndex)
}

func (fc *FeatureContext) list(key string) []map[string]any {
	fc.decodeResponse()
	raw, ok := fc.responseData[key].([]any)
	fc.require.True(ok, "%s should be a list", key)

	result := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		result = append(result, r.(map[string]any))
	}
	return result
}

func (fc *FeatureContext) names(key, field string) []string {
	result := []string{}
	for _, item := range fc.list(key) {
		result = append(result, item[field].(string))
	}
	return result
}

func (fc *FeatureContext) find(key, field, value string) map[string]any {
	for _, item := range fc.list(key) {
		if item[field] == value {
			return item
		}
	}
	fc.require.Failf("not found", "%s with %s=%s", key, field, value)
	return nil
}

func splitNames(names string) []string {
	result := []string{}
	for _, n := range strings.Split(names, ",") {
		result = append(result, strings.TrimSpace(n))
	}
	return result
}

func cloneQuery(query url.Values) url.Values {
	result := make(url.Values, len(query))
	for k, v := range query {
		result[k] = append([]string(nil), v...)
	}
	return result
}
