package steps

// Healthz endpoint step implementations

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.apiDriver.GetHealthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	fc.decodeResponse()

	status, ok := fc.responseData["status"].(string)
	fc.require.True(ok, "status should be a string")
	fc.require.Equal("success", status)
	fc.require.Contains(fc.responseData, "node_id")

	return nil
}

func (fc *FeatureContext) theResponseShouldContainVersionInformation() error {
	version, ok := fc.responseData["version"].(string)
	fc.require.True(ok, "version should be a string")
	fc.require.NotEmpty(version)

	return nil
}
