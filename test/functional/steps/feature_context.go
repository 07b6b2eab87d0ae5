package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"sink-schema-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver      *driver.APIDriver
	response       *http.Response
	responseData   map[string]any
	sinkType       string
	acceptLanguage string
	query          url.Values
	row            map[string]any
	values         map[string]any
	require        *require.Assertions
	t              godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)
	ctx.Then(`^the response should contain version information$`, fc.theResponseShouldContainVersionInformation)

	// Sink schema steps
	ctx.Given(`^the sink type "([^"]*)"$`, fc.theSinkType)
	ctx.Given(`^the preferred language "([^"]*)"$`, fc.thePreferredLanguage)
	ctx.Given(`^an entity being edited with status (\d+)$`, fc.anEntityBeingEditedWithStatus)
	ctx.Given(`^an entity being created$`, fc.anEntityBeingCreated)
	ctx.Given(`^a field list row with "([^"]*)" set to "([^"]*)"$`, fc.aFieldListRowWithSetTo)
	ctx.Given(`^the config value "([^"]*)" is "([^"]*)"$`, fc.theConfigValueIs)
	ctx.When(`^I list the sinks$`, fc.iListTheSinks)
	ctx.When(`^I request the form in "([^"]*)" mode$`, fc.iRequestTheFormInMode)
	ctx.When(`^I request the field list columns$`, fc.iRequestTheFieldListColumns)
	ctx.When(`^I request the table columns$`, fc.iRequestTheTableColumns)
	ctx.When(`^I resolve the (new|existing) row$`, fc.iResolveTheRow)
	ctx.When(`^I validate the config$`, fc.iValidateTheConfig)
	ctx.Then(`^the sink list should contain "([^"]*)" labelled "([^"]*)"$`, fc.theSinkListShouldContainLabelled)
	ctx.Then(`^the form items should be "([^"]*)"$`, fc.theFormItemsShouldBe)
	ctx.Then(`^the form item "([^"]*)" should be (disabled|enabled)$`, fc.theFormItemShouldBe)
	ctx.Then(`^the form item "([^"]*)" should be labelled "([^"]*)"$`, fc.theFormItemShouldBeLabelled)
	ctx.Then(`^the columns should be "([^"]*)"$`, fc.theColumnsShouldBe)
	ctx.Then(`^the cell "([^"]*)" should be (disabled|enabled)$`, fc.theCellShouldBe)
	ctx.Then(`^the cell "([^"]*)" should be (visible|hidden)$`, fc.theCellShouldBeShown)
	ctx.Then(`^the row should (not )?be deletable$`, fc.theRowShouldBeDeletable)
	ctx.Then(`^the config should be (valid|invalid)$`, fc.theConfigShouldBe)
	ctx.Then(`^there should be an error for "([^"]*)"$`, fc.thereShouldBeAnErrorFor)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.sinkType = ""
	fc.acceptLanguage = ""
	fc.query = url.Values{}
	fc.row = map[string]any{}
	fc.values = map[string]any{}
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

// decodeResponse reads the response body once; later calls reuse the decoded data.
func (fc *FeatureContext) decodeResponse() {
	if fc.responseData != nil {
		return
	}
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
	fc.responseData = data
}
